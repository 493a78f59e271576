package entry

import "time"

// SubmitEntryRequest mendukung dua mode input yang dipakai paralel oleh caller:
// image mode (Image terisi, UpiID kosong) dan explicit-id mode (UpiID terisi).
type SubmitEntryRequest struct {
	LinkID     string
	EmployeeID string
	Name       string
	Amount     float64
	UpiID      string
	Image      []byte
}

type SubmitEntryResponse struct {
	Message string `json:"message"`
	EntryID string `json:"entryId"`
	UpiID   string `json:"upiId"`
}

type EntryResponse struct {
	ID         string    `json:"id"`
	LinkID     string    `json:"linkId"`
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	UpiID      string    `json:"upiId"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"createdAt"`
}

type EntriesByLinkRequest struct {
	LinkID string `json:"linkId" binding:"required,uuid"`
}

type EntriesByEmployeeRequest struct {
	EmployeeID string `json:"employeeId" binding:"required,uuid"`
}
