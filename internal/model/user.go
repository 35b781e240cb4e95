package model

import "time"

// User represents a customer identity record. PasswordHash is set only for
// users created through registration; rows created through the open /users
// endpoint carry an empty hash and cannot log in.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string    `json:"-" gorm:"size:255"` // Never expose in JSON
	Phone        string    `json:"phone,omitempty" gorm:"size:20"`
	CreatedAt    time.Time `json:"created_at"`
}
