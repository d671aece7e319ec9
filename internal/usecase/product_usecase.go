package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"dormigo/internal/domain/entity"
	"dormigo/internal/domain/repository"
	"dormigo/internal/domain/service"
	"dormigo/pkg/errors"
)

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	fileService  service.FileUploadService
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	fileService service.FileUploadService,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		fileService:  fileService,
	}
}

type CreateProductInput struct {
	Title       string
	Description string
	Price       float64
	Quantity    int
	Condition   string
	CategoryID  int64
	IsAvailable *bool
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, sellerID int64, input CreateProductInput) (*entity.Product, error) {
	seller, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, errors.BadRequest("Invalid seller", err)
	}

	if input.Price < 0 {
		return nil, errors.BadRequest("Price must not be negative", nil)
	}

	var categoryName string
	if input.CategoryID != 0 {
		category, err := uc.categoryRepo.GetByID(ctx, input.CategoryID)
		if err != nil {
			return nil, errors.BadRequest("Invalid category", err)
		}
		categoryName = category.Name
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	now := time.Now()
	product := &entity.Product{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		CategoryID:   input.CategoryID,
		CategoryName: categoryName,
		Quantity:     quantity,
		Condition:    input.Condition,
		IsAvailable:  available,
		SellerID:     seller.ID,
		Images:       []entity.ProductImage{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, page, size int) ([]*entity.Product, int64, error) {
	offset := page * size
	if offset < 0 {
		offset = 0
	}
	return uc.productRepo.List(ctx, size, offset)
}

func (uc *ProductUseCase) SearchProducts(ctx context.Context, query string, page, size int) ([]*entity.Product, int64, error) {
	offset := page * size
	if offset < 0 {
		offset = 0
	}
	return uc.productRepo.SearchByTitle(ctx, query, size, offset)
}

func (uc *ProductUseCase) ListBySellerID(ctx context.Context, sellerID int64, page, size int) ([]*entity.Product, int64, error) {
	if _, err := uc.userRepo.GetByID(ctx, sellerID); err != nil {
		return nil, 0, errors.BadRequest("Invalid seller", err)
	}
	return uc.productRepo.ListBySellerID(ctx, sellerID, size, page*size)
}

// AttachImage uploads one image for a product owned by sellerID. The first
// image of a product always becomes primary; an explicit primary flag
// reassigns it.
func (uc *ProductUseCase) AttachImage(ctx context.Context, productID, sellerID int64, file io.Reader, filename, fileType string, primary bool) (*entity.ProductImage, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.SellerID != sellerID {
		return nil, errors.Forbidden("You don't have permission to modify this product", nil)
	}

	folder := fmt.Sprintf("products/%d", productID)
	result, err := uc.fileService.UploadFile(ctx, file, fileType, folder)
	if err != nil {
		return nil, errors.Internal("Failed to upload image", err)
	}

	image := entity.ProductImage{
		ID:           uuid.New().String(),
		URL:          result.URL,
		ObjectName:   result.ObjectName,
		Filename:     filename,
		FileType:     fileType,
		FileSize:     result.Size,
		Primary:      primary || len(product.Images) == 0,
		DisplayOrder: len(product.Images),
		UploadedAt:   time.Now(),
	}

	if image.Primary {
		for i := range product.Images {
			product.Images[i].Primary = false
		}
	}

	product.Images = append(product.Images, image)

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return &image, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id, sellerID int64) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if product.SellerID != sellerID {
		return errors.Forbidden("You don't have permission to delete this product", nil)
	}

	return uc.productRepo.SoftDelete(ctx, id)
}
