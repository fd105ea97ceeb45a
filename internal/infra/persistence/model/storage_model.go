package model

import (
	"time"

	"github.com/google/uuid"
)

// StorageModel mirrors the 'storages' table.
type StorageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Address   string    `gorm:"type:text"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Boxes []BoxModel `gorm:"foreignKey:StorageID"`
}

// TableName explicitly sets the table name for GORM.
func (StorageModel) TableName() string {
	return "storages"
}
