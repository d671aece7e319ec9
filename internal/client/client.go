package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"dormigo/internal/browse"
)

// placeholderImage stands in for listings that have no uploaded image yet.
const placeholderImage = "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=400&h=300&fit=crop"

const defaultTimeout = 15 * time.Second

// TokenSource supplies the current bearer token, or "" when logged out.
// When empty, the Authorization header is omitted entirely.
type TokenSource func() string

// APIError is a structured non-2xx response from the backend, as opposed to
// a connectivity failure where the server was never reached.
type APIError struct {
	Status  int
	Message string
	Body    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	http   *resty.Client
	tokens TokenSource
}

func New(baseURL string, tokens TokenSource) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:   http,
		tokens: tokens,
	}
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if c.tokens != nil {
		if token := c.tokens(); token != "" {
			req.SetAuthToken(token)
		}
	}
	return req
}

// apiError converts a non-2xx response into an APIError, pulling the message
// out of the JSON body when it parses and falling back to the raw text.
func apiError(resp *resty.Response) error {
	body := string(resp.Body())

	var parsed struct {
		Message string `json:"message"`
	}
	message := strings.TrimSpace(body)
	if err := json.Unmarshal(resp.Body(), &parsed); err == nil && parsed.Message != "" {
		message = parsed.Message
	}
	if message == "" {
		message = resp.Status()
	}

	return &APIError{
		Status:  resp.StatusCode(),
		Message: message,
		Body:    body,
	}
}

func (c *Client) Products(ctx context.Context, page, size int) (*PagedProducts, error) {
	var result PagedProducts
	resp, err := c.request(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("size", strconv.Itoa(size)).
		SetResult(&result).
		Get("/api/products/public/all")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result, nil
}

func (c *Client) SearchProducts(ctx context.Context, query string, page, size int) (*PagedProducts, error) {
	var result PagedProducts
	resp, err := c.request(ctx).
		SetQueryParam("query", query).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("size", strconv.Itoa(size)).
		SetResult(&result).
		Get("/api/products/public/search")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result, nil
}

func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	var result Product
	resp, err := c.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/products")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result, nil
}

func (c *Client) UploadProductImage(ctx context.Context, productID int64, filename string, file io.Reader, primary bool) (*ProductImage, error) {
	var result ProductImage
	resp, err := c.request(ctx).
		SetFileReader("image", filename, file).
		SetFormData(map[string]string{"primary": strconv.FormatBool(primary)}).
		SetResult(&result).
		Post(fmt.Sprintf("/api/products/%d/images", productID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result, nil
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var result []Category
	resp, err := c.request(ctx).
		SetResult(&result).
		Get("/api/category/public/all")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return result, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var result AuthResponse
	resp, err := c.request(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result, nil
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	var result User
	resp, err := c.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/signup")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result, nil
}

// ToListing maps a backend product onto the browse read model. Backend
// records carry no campus, so Campus stays empty.
func (p Product) ToListing() browse.Listing {
	image := p.PrimaryImage
	if image == "" && len(p.ProductImages) > 0 {
		image = p.ProductImages[0].ImageURL
	}
	if image == "" {
		image = placeholderImage
	}

	condition := p.Condition
	if condition == "" {
		condition = "Unknown"
	}

	category := p.CategoryName
	if category == "" {
		category = "Other"
	}

	return browse.Listing{
		ID:        p.ID,
		Title:     p.Title,
		Condition: condition,
		Price:     p.Price,
		Image:     image,
		Category:  category,
	}
}

// Listings satisfies browse.Loader.
func (c *Client) Listings(ctx context.Context, page, size int) ([]browse.Listing, error) {
	paged, err := c.Products(ctx, page, size)
	if err != nil {
		return nil, err
	}

	listings := make([]browse.Listing, 0, len(paged.Content))
	for _, product := range paged.Content {
		listings = append(listings, product.ToListing())
	}
	return listings, nil
}
