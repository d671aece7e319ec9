package entity

import (
	"time"
)

// Conditions a seller can declare for a listing.
const (
	ConditionNew     = "NEW"
	ConditionLikeNew = "LIKE_NEW"
	ConditionGood    = "GOOD"
	ConditionFair    = "FAIR"
	ConditionPoor    = "POOR"
)

type ProductImage struct {
	ID           string    `json:"id" firestore:"id"`
	URL          string    `json:"url" firestore:"url"`
	ObjectName   string    `json:"object_name" firestore:"objectName"`
	Filename     string    `json:"filename" firestore:"filename"`
	FileType     string    `json:"file_type" firestore:"fileType"`
	FileSize     int64     `json:"file_size" firestore:"fileSize"`
	Primary      bool      `json:"primary" firestore:"primary"`
	DisplayOrder int       `json:"display_order" firestore:"displayOrder"`
	UploadedAt   time.Time `json:"uploaded_at" firestore:"uploadedAt"`
}

type Product struct {
	ID           int64          `json:"id" firestore:"id"`
	Title        string         `json:"title" firestore:"title"`
	Description  string         `json:"description" firestore:"description"`
	Price        float64        `json:"price" firestore:"price"`
	CategoryID   int64          `json:"category_id,omitempty" firestore:"categoryId,omitempty"`
	CategoryName string         `json:"category_name,omitempty" firestore:"categoryName,omitempty"`
	Quantity     int            `json:"quantity" firestore:"quantity"`
	Condition    string         `json:"condition,omitempty" firestore:"condition,omitempty"`
	IsAvailable  bool           `json:"is_available" firestore:"isAvailable"`
	SellerID     int64          `json:"seller_id" firestore:"sellerId"`
	Images       []ProductImage `json:"images" firestore:"images"`

	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
	// No omitempty on the firestore tag: a live product must store an
	// explicit null so the deletedAt == nil query filters can match it.
	DeletedAt *time.Time `json:"deleted_at,omitempty" firestore:"deletedAt"`
}

// PrimaryImageURL returns the URL of the image marked primary, falling back to
// the first image in display order. Empty when the product has no images.
func (p *Product) PrimaryImageURL() string {
	for _, img := range p.Images {
		if img.Primary {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}
