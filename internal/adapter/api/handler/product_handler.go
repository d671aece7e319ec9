package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"dormigo/internal/domain/entity"
	"dormigo/internal/usecase"
	"dormigo/pkg/errors"
	"dormigo/pkg/logger"
	"dormigo/pkg/response"
	"dormigo/pkg/utils"
)

const maxImageSize = 5 * 1024 * 1024

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
	userUseCase    *usecase.UserUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase, userUseCase *usecase.UserUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		userUseCase:    userUseCase,
	}
}

type createProductRequest struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"omitempty,gte=1"`
	Condition   string  `json:"condition" validate:"omitempty,oneof=NEW LIKE_NEW GOOD FAIR POOR"`
	CategoryID  int64   `json:"categoryId" validate:"omitempty,gte=1"`
	IsAvailable *bool   `json:"isAvailable"`
}

// sellerResponse keeps the misspelled fistName key; the deployed mobile and
// web clients read it, so it cannot be corrected server-side.
type sellerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"fistName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type productImageResponse struct {
	ImageID    string    `json:"imageId"`
	ImageURL   string    `json:"imageUrl"`
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type productResponse struct {
	ID            int64                  `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description,omitempty"`
	Price         float64                `json:"price"`
	CategoryID    int64                  `json:"categoryId,omitempty"`
	CategoryName  string                 `json:"categoryName,omitempty"`
	Quantity      int                    `json:"quantity"`
	Condition     string                 `json:"condition,omitempty"`
	IsAvailable   bool                   `json:"isAvailable"`
	Seller        *sellerResponse        `json:"seller,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	ProductImages []productImageResponse `json:"productImages"`
	PrimaryImage  string                 `json:"primaryImage,omitempty"`
}

func toProductImageResponse(img entity.ProductImage) productImageResponse {
	return productImageResponse{
		ImageID:    img.ID,
		ImageURL:   img.URL,
		FileName:   img.Filename,
		FileType:   img.FileType,
		FileSize:   img.FileSize,
		UploadedAt: img.UploadedAt,
	}
}

func (h *ProductHandler) toProductResponse(ctx context.Context, product *entity.Product, sellers map[int64]*sellerResponse) productResponse {
	seller, cached := sellers[product.SellerID]
	if !cached {
		if user, err := h.userUseCase.GetProfile(ctx, product.SellerID); err == nil {
			seller = &sellerResponse{
				ID:        user.ID,
				FirstName: user.FirstName,
				LastName:  user.LastName,
				Email:     user.Email,
			}
		} else {
			logger.Warn("Seller %d lookup failed for product %d: %v", product.SellerID, product.ID, err)
		}
		sellers[product.SellerID] = seller
	}

	images := make([]productImageResponse, 0, len(product.Images))
	for _, img := range product.Images {
		images = append(images, toProductImageResponse(img))
	}

	return productResponse{
		ID:            product.ID,
		Title:         product.Title,
		Description:   product.Description,
		Price:         product.Price,
		CategoryID:    product.CategoryID,
		CategoryName:  product.CategoryName,
		Quantity:      product.Quantity,
		Condition:     product.Condition,
		IsAvailable:   product.IsAvailable,
		Seller:        seller,
		CreatedAt:     product.CreatedAt,
		ProductImages: images,
		PrimaryImage:  product.PrimaryImageURL(),
	}
}

func (h *ProductHandler) toProductResponses(ctx context.Context, products []*entity.Product) []productResponse {
	sellers := make(map[int64]*sellerResponse)
	out := make([]productResponse, 0, len(products))
	for _, product := range products {
		out = append(out, h.toProductResponse(ctx, product, sellers))
	}
	return out
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	uid := c.Get("uid").(int64)

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), uid, usecase.CreateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Condition:   req.Condition,
		CategoryID:  req.CategoryID,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return response.Error(c, err)
	}

	sellers := make(map[int64]*sellerResponse)
	return c.JSON(http.StatusCreated, h.toProductResponse(c.Request().Context(), product, sellers))
}

func (h *ProductHandler) ListPublicProducts(c echo.Context) error {
	params := utils.GetPageParams(c)

	products, total, err := h.productUseCase.ListProducts(c.Request().Context(), params.Page, params.Size)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, h.toProductResponses(c.Request().Context(), products), total, params.Page, params.Size)
}

func (h *ProductHandler) SearchPublicProducts(c echo.Context) error {
	query := c.QueryParam("query")
	params := utils.GetPageParams(c)

	products, total, err := h.productUseCase.SearchProducts(c.Request().Context(), query, params.Page, params.Size)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, h.toProductResponses(c.Request().Context(), products), total, params.Page, params.Size)
}

func (h *ProductHandler) GetPublicProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid product id", err))
	}

	product, err := h.productUseCase.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	sellers := make(map[int64]*sellerResponse)
	return response.Success(c, h.toProductResponse(c.Request().Context(), product, sellers))
}

func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	uid := c.Get("uid").(int64)
	params := utils.GetPageParams(c)

	products, total, err := h.productUseCase.ListBySellerID(c.Request().Context(), uid, params.Page, params.Size)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, h.toProductResponses(c.Request().Context(), products), total, params.Page, params.Size)
}

func (h *ProductHandler) UploadProductImage(c echo.Context) error {
	uid := c.Get("uid").(int64)

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid product id", err))
	}

	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid image file", err))
	}

	if file.Size > maxImageSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("Image exceeds maximum allowed size (%dMB)", maxImageSize/(1024*1024)), nil))
	}

	primary := false
	if v := c.FormValue("primary"); v != "" {
		primary, _ = strconv.ParseBool(v)
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read image file", err))
	}
	defer src.Close()

	// Sniff the actual bytes rather than trusting the part's Content-Type.
	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read image file", err))
	}
	if !mtype.Is("image/jpeg") && !mtype.Is("image/png") && !mtype.Is("image/gif") && !mtype.Is("image/webp") {
		return response.Error(c, errors.BadRequest("File is not a supported image type", nil))
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return response.Error(c, errors.Internal("Unable to read image file", err))
	}

	image, err := h.productUseCase.AttachImage(c.Request().Context(), productID, uid, src, file.Filename, mtype.String(), primary)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusCreated, toProductImageResponse(*image))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	uid := c.Get("uid").(int64)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid product id", err))
	}

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), id, uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Product deleted"})
}
