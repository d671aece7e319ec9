package repository

import (
	"context"

	"dormigo/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, id int64) error
	// List returns available, non-deleted products, newest first.
	List(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error)
	// SearchByTitle filters available products by a case-insensitive title match.
	SearchByTitle(ctx context.Context, query string, limit, offset int) ([]*entity.Product, int64, error)
	ListBySellerID(ctx context.Context, sellerID int64, limit, offset int) ([]*entity.Product, int64, error)
}
