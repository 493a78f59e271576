package report

import (
	"go-paylink/internal/entry"
	"go-paylink/internal/link"
)

type LinksByEmployeeRequest struct {
	EmployeeID string `json:"employeeId" binding:"required,uuid"`
	Page       int    `json:"page" binding:"omitempty,min=1"`
	Limit      int    `json:"limit" binding:"omitempty,min=1"`
}

type LinksByEmployeeResponse struct {
	Links []link.LinkResponse `json:"links"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Pages int                 `json:"pages"`
}

type EntriesByEmployeeAndLinkRequest struct {
	EmployeeID string `json:"employeeId" binding:"required,uuid"`
	LinkID     string `json:"linkId" binding:"required,uuid"`
	Page       int    `json:"page" binding:"omitempty,min=1"`
	Limit      int    `json:"limit" binding:"omitempty,min=1"`
}

type EntriesByEmployeeAndLinkResponse struct {
	Entries     []entry.EntryResponse `json:"entries"`
	Total       int64                 `json:"total"`
	TotalAmount float64               `json:"totalAmount"`
	IsLatest    bool                  `json:"isLatest"`
	Page        int                   `json:"page"`
	Pages       int                   `json:"pages"`
}

type LinkSummaryRequest struct {
	LinkID string `json:"linkId" binding:"required,uuid"`
}

type LinkSummaryResponse struct {
	Title      string                     `json:"title"`
	Rows       []entry.EmployeeSummaryRow `json:"rows"`
	GrandTotal float64                    `json:"grandTotal"`
}
