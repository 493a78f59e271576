package entry

import (
	"time"

	"github.com/google/uuid"
)

// Entry bersifat immutable setelah dibuat; tidak ada update/delete.
// Unique index (link_id, upi_id) adalah penjaga final invariant
// satu submission per UPI id per link, termasuk saat ada dua writer concurrent.
type Entry struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	LinkID uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_entries_link_upi"`
	// EmployeeID mereferensikan stable id milik employee, bukan row id
	EmployeeID uuid.UUID `gorm:"type:uuid;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	UpiID      string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_entries_link_upi"`
	Amount     float64   `gorm:"not null"`
	CreatedAt  time.Time
}

// EmployeeSummaryRow adalah satu baris hasil group-by employee untuk satu link
type EmployeeSummaryRow struct {
	EmployeeID    string  `json:"employeeId"`
	Name          string  `json:"name"`
	EntryCount    int64   `json:"entryCount"`
	EmployeeTotal float64 `json:"employeeTotal"`
}
