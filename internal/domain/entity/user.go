package entity

import (
	"time"
)

const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

type User struct {
	ID           int64  `json:"id" firestore:"id"`
	Email        string `json:"email" firestore:"email"`
	PasswordHash string `json:"-" firestore:"passwordHash"`
	FirstName    string `json:"first_name" firestore:"firstName"`
	LastName     string `json:"last_name" firestore:"lastName"`
	PhoneNumber  string `json:"phone_number,omitempty" firestore:"phoneNumber,omitempty"`
	University   string `json:"university,omitempty" firestore:"university,omitempty"`
	Role         string `json:"role" firestore:"role"`
	IsActive     bool   `json:"is_active" firestore:"isActive"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
