package model

import "time"

// User represents an authenticated user in the system.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Salt         string     `json:"-" gorm:"size:64;not null"`
	Role         string     `json:"role" gorm:"size:50;default:'user'"`
	Active       bool       `json:"active" gorm:"default:true"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}
