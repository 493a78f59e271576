package admin

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// AdminID adalah identifier stabil yang direferensikan links (created_by)
	AdminID   uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_admins_admin_id"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:uq_admins_email;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
