package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsParsesPagedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/public/all", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("size"))
		assert.Empty(t, r.Header.Get("Authorization"), "public call carries no token")

		json.NewEncoder(w).Encode(PagedProducts{
			Content: []Product{
				{ID: 1, Title: "Desk Lamp", Price: 750, CategoryName: "furniture"},
			},
			TotalElements: 1,
			TotalPages:    1,
			Number:        0,
			Size:          20,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, func() string { return "" })

	paged, err := c.Products(context.Background(), 0, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, paged.TotalElements)
	require.Len(t, paged.Content, 1)
	assert.Equal(t, "Desk Lamp", paged.Content[0].Title)
}

func TestBearerTokenAttachedWhenPresent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Product{ID: 5, Title: "Bike"})
	}))
	defer srv.Close()

	c := New(srv.URL, func() string { return "token-abc" })

	product, err := c.CreateProduct(context.Background(), CreateProductRequest{Title: "Bike", Price: 2600, Quantity: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 5, product.ID)
}

func TestStructuredErrorParsesMessageField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Email already exists","status":409}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)

	_, err := c.Signup(context.Background(), SignupRequest{Email: "dup@campus.edu"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Email already exists", apiErr.Message)
	assert.Contains(t, apiErr.Body, "Email already exists")
}

func TestUnparseableErrorFallsBackToRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)

	_, err := c.Categories(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}

func TestUploadProductImageSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/42/images", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "true", r.FormValue("primary"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "front.png", header.Filename)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ProductImage{ImageID: "img-1", ImageURL: "https://cdn/img-1.png"})
	}))
	defer srv.Close()

	c := New(srv.URL, func() string { return "tok" })

	img, err := c.UploadProductImage(context.Background(), 42, "front.png", strings.NewReader("png-bytes"), true)
	require.NoError(t, err)
	assert.Equal(t, "img-1", img.ImageID)
}

func TestLoginReturnsAuthResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "asha@campus.edu", body["email"])

		json.NewEncoder(w).Encode(AuthResponse{
			Token: "jwt-token", UserID: 7, Type: "Bearer",
			FirstName: "Asha", LastName: "Nair", Email: "asha@campus.edu", Role: "STUDENT",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)

	auth, err := c.Login(context.Background(), "asha@campus.edu", "Str0ng@pass")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", auth.Token)
	assert.Equal(t, "Bearer", auth.Type)
	assert.EqualValues(t, 7, auth.UserID)
}

func TestToListingFallbacks(t *testing.T) {
	withPrimary := Product{ID: 1, Title: "Lamp", PrimaryImage: "https://cdn/primary.png", Condition: "GOOD", CategoryName: "furniture"}
	assert.Equal(t, "https://cdn/primary.png", withPrimary.ToListing().Image)

	withImages := Product{ID: 2, Title: "Bike", ProductImages: []ProductImage{{ImageURL: "https://cdn/first.png"}}}
	assert.Equal(t, "https://cdn/first.png", withImages.ToListing().Image)

	bare := Product{ID: 3, Title: "Fridge"}
	listing := bare.ToListing()
	assert.Equal(t, placeholderImage, listing.Image)
	assert.Equal(t, "Unknown", listing.Condition)
	assert.Equal(t, "Other", listing.Category)
	assert.Empty(t, listing.Campus, "backend records carry no campus")
}
