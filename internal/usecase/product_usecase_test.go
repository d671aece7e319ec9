package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dormigo/internal/domain/entity"
	"dormigo/pkg/errors"
)

type productFixture struct {
	uc       *ProductUseCase
	products *fakeProductRepo
	files    *fakeFileService
	sellerID int64
	catID    int64
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()

	users := newFakeUserRepo()
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	files := &fakeFileService{}

	seller := &entity.User{
		Email:     "seller@campus.edu",
		FirstName: "Ravi",
		LastName:  "Menon",
		Role:      entity.RoleStudent,
		IsActive:  true,
	}
	require.NoError(t, users.Create(context.Background(), seller))

	category := &entity.Category{Name: "books", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, categories.Create(context.Background(), category))

	return &productFixture{
		uc:       NewProductUseCase(products, categories, users, files),
		products: products,
		files:    files,
		sellerID: seller.ID,
		catID:    category.ID,
	}
}

func TestCreateProductDefaults(t *testing.T) {
	f := newProductFixture(t)

	product, err := f.uc.CreateProduct(context.Background(), f.sellerID, CreateProductInput{
		Title:       "Calculus Textbook",
		Description: "Barely used",
		Price:       250,
		Condition:   entity.ConditionLikeNew,
		CategoryID:  f.catID,
	})
	require.NoError(t, err)

	assert.NotZero(t, product.ID)
	assert.Equal(t, 1, product.Quantity)
	assert.True(t, product.IsAvailable)
	assert.Equal(t, "books", product.CategoryName)
	assert.Equal(t, f.sellerID, product.SellerID)
	assert.Empty(t, product.Images)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.uc.CreateProduct(context.Background(), f.sellerID, CreateProductInput{
		Title: "Free Stuff",
		Price: -1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateProductRejectsUnknownSeller(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.uc.CreateProduct(context.Background(), 999, CreateProductInput{
		Title: "Ghost Listing",
		Price: 10,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestAttachImageFirstBecomesPrimary(t *testing.T) {
	f := newProductFixture(t)

	product, err := f.uc.CreateProduct(context.Background(), f.sellerID, CreateProductInput{
		Title: "Desk Lamp", Price: 750, CategoryID: f.catID,
	})
	require.NoError(t, err)

	first, err := f.uc.AttachImage(context.Background(), product.ID, f.sellerID,
		strings.NewReader("jpeg-bytes"), "lamp-front.jpg", "image/jpeg", false)
	require.NoError(t, err)
	assert.True(t, first.Primary, "first image is promoted to primary")
	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, first.URL)

	second, err := f.uc.AttachImage(context.Background(), product.ID, f.sellerID,
		strings.NewReader("more-jpeg-bytes"), "lamp-side.jpg", "image/jpeg", false)
	require.NoError(t, err)
	assert.False(t, second.Primary)

	stored, err := f.uc.GetProductByID(context.Background(), product.ID)
	require.NoError(t, err)
	require.Len(t, stored.Images, 2)
	assert.Equal(t, first.URL, stored.PrimaryImageURL())
}

func TestAttachImageExplicitPrimaryReassigns(t *testing.T) {
	f := newProductFixture(t)

	product, err := f.uc.CreateProduct(context.Background(), f.sellerID, CreateProductInput{
		Title: "Mini Fridge", Price: 3200, CategoryID: f.catID,
	})
	require.NoError(t, err)

	_, err = f.uc.AttachImage(context.Background(), product.ID, f.sellerID,
		strings.NewReader("a"), "a.jpg", "image/jpeg", false)
	require.NoError(t, err)

	replacement, err := f.uc.AttachImage(context.Background(), product.ID, f.sellerID,
		strings.NewReader("b"), "b.jpg", "image/jpeg", true)
	require.NoError(t, err)

	stored, err := f.uc.GetProductByID(context.Background(), product.ID)
	require.NoError(t, err)

	var primaries int
	for _, img := range stored.Images {
		if img.Primary {
			primaries++
		}
	}
	assert.Equal(t, 1, primaries, "exactly one primary image")
	assert.Equal(t, replacement.URL, stored.PrimaryImageURL())
}

func TestAttachImageRequiresOwnership(t *testing.T) {
	f := newProductFixture(t)

	product, err := f.uc.CreateProduct(context.Background(), f.sellerID, CreateProductInput{
		Title: "Bike", Price: 2600, CategoryID: f.catID,
	})
	require.NoError(t, err)

	_, err = f.uc.AttachImage(context.Background(), product.ID, f.sellerID+1,
		strings.NewReader("x"), "x.jpg", "image/jpeg", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Zero(t, f.files.uploads, "nothing is uploaded when ownership fails")
}

func TestSearchProductsMatchesTitleSubstring(t *testing.T) {
	f := newProductFixture(t)

	for _, title := range []string{"Calculus Textbook", "Gaming Laptop", "Laptop Stand"} {
		_, err := f.uc.CreateProduct(context.Background(), f.sellerID, CreateProductInput{
			Title: title, Price: 100, CategoryID: f.catID,
		})
		require.NoError(t, err)
	}

	results, total, err := f.uc.SearchProducts(context.Background(), "laptop", 0, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, results, 2)
}

func TestDeleteProductHidesListing(t *testing.T) {
	f := newProductFixture(t)

	product, err := f.uc.CreateProduct(context.Background(), f.sellerID, CreateProductInput{
		Title: "Microwave", Price: 3200, CategoryID: f.catID,
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteProduct(context.Background(), product.ID, f.sellerID))

	_, err = f.uc.GetProductByID(context.Background(), product.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	_, total, err := f.uc.ListProducts(context.Background(), 0, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestDeleteProductRequiresOwnership(t *testing.T) {
	f := newProductFixture(t)

	product, err := f.uc.CreateProduct(context.Background(), f.sellerID, CreateProductInput{
		Title: "Coffee Maker", Price: 3500, CategoryID: f.catID,
	})
	require.NoError(t, err)

	err = f.uc.DeleteProduct(context.Background(), product.ID, f.sellerID+1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
