package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// EmployeeID adalah identifier stabil yang dipakai entries sebagai
	// reference key; tidak sama dengan row id supaya tahan storage migration.
	EmployeeID uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_employees_employee_id"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex:uq_employees_email;not null"`
	Password   string    `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
