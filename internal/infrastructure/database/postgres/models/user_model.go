package models

import (
	"time"
)

// UserModel represents the database model for User
type UserModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Username       string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	HashedPassword string    `gorm:"type:varchar(255);not null"`
	FullName       *string   `gorm:"type:varchar(255)"`
	IsActive       bool      `gorm:"default:true;not null"`
	IsSuperuser    bool      `gorm:"default:false;not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
