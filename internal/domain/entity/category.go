package entity

import (
	"time"
)

type Category struct {
	ID   int64  `json:"id" firestore:"id"`
	Name string `json:"name" firestore:"name"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
