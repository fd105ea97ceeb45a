// Package model holds the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	Name          string    `gorm:"type:varchar(100);not null"`
	PasswordHash  string    `gorm:"type:varchar(255)"`
	Provider      string    `gorm:"type:varchar(20);not null;default:'local'"`
	Role          string    `gorm:"type:varchar(20);not null;default:'user'"`
	Picture       string    `gorm:"type:text"`
	PrintSettings datatypes.JSON
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Storages []StorageModel `gorm:"foreignKey:OwnerID"`
	Boxes    []BoxModel     `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
