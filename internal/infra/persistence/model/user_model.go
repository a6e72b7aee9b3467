// Package model contains the GORM table mappings for the persistence layer.
package model

import "time"

// UserModel mirrors the 'users' table for end-client identities.
type UserModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName       string `gorm:"type:varchar(100)"`
	HashedPassword string `gorm:"type:varchar(255);not null"`
	Disabled       bool   `gorm:"not null;default:false"`
	Role           string `gorm:"type:varchar(20);not null;default:'client'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
