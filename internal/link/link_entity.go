package link

import (
	"time"

	"github.com/google/uuid"
)

type Link struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null;default:'Entry Form'"`
	CreatedBy uuid.UUID `gorm:"type:uuid;index"` // stable admin id
	CreatedAt time.Time
}
