package client

import (
	"time"
)

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductImage struct {
	ImageID    string    `json:"imageId"`
	ImageURL   string    `json:"imageUrl"`
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Seller mirrors the backend's seller block, including its misspelled
// fistName key.
type Seller struct {
	ID        int64  `json:"id"`
	FirstName string `json:"fistName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type Product struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	CategoryID    int64          `json:"categoryId"`
	CategoryName  string         `json:"categoryName"`
	Quantity      int            `json:"quantity"`
	Condition     string         `json:"condition"`
	IsAvailable   bool           `json:"isAvailable"`
	Seller        *Seller        `json:"seller"`
	CreatedAt     time.Time      `json:"createdAt"`
	ProductImages []ProductImage `json:"productImages"`
	PrimaryImage  string         `json:"primaryImage"`
}

// PagedProducts is the Spring-style page envelope the backend emits.
type PagedProducts struct {
	Content       []Product `json:"content"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	Number        int       `json:"number"`
	Size          int       `json:"size"`
}

type CreateProductRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity,omitempty"`
	Condition   string  `json:"condition,omitempty"`
	CategoryID  int64   `json:"categoryId,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

type SignupRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	University string `json:"university"`
}

type AuthResponse struct {
	Token     string `json:"token"`
	UserID    int64  `json:"userId"`
	Type      string `json:"type"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type User struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	University  string `json:"university"`
	IsActive    bool   `json:"isActive"`
	Role        string `json:"role"`
}
