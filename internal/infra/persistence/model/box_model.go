package model

import (
	"time"

	"github.com/google/uuid"
)

// BoxModel mirrors the 'boxes' table. LabelCode is the short code embedded
// in printed QR labels and must stay unique across all boxes.
type BoxModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Description string     `gorm:"type:text"`
	StorageID   *uuid.UUID `gorm:"type:uuid;index"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	LabelCode   string     `gorm:"type:varchar(64);unique;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BoxModel) TableName() string {
	return "boxes"
}
