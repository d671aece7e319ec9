package draft

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"dormigo/internal/client"
)

var (
	// ErrInvalid signals that validation failed and nothing was sent;
	// the field errors are on the draft.
	ErrInvalid = errors.New("draft has validation errors")

	// ErrNotImage rejects staged files whose sniffed content is not an image.
	ErrNotImage = errors.New("file is not an image")
)

// Conditions a seller can pick from, matching the backend enumeration.
var Conditions = []string{"NEW", "LIKE_NEW", "GOOD", "FAIR", "POOR"}

// Campuses mirrors the fixed campus enumeration of the browse filters.
var Campuses = []string{"Onakoor", "Warriom Road", "Pune"}

// StagedImage is a locally held file selected for upload, not yet persisted.
type StagedImage struct {
	ID          string
	Name        string
	ContentType string
	Size        int64

	data    []byte
	preview Preview
}

// PreviewPath points at the local preview resource.
func (s *StagedImage) PreviewPath() string {
	if s.preview == nil {
		return ""
	}
	return s.preview.Path()
}

func (s *StagedImage) release() {
	if s.preview != nil {
		s.preview.Release()
		s.preview = nil
	}
}

// SubmissionAPI is the slice of the backend client the submit flow needs.
type SubmissionAPI interface {
	CreateProduct(ctx context.Context, req client.CreateProductRequest) (*client.Product, error)
	UploadProductImage(ctx context.Context, productID int64, filename string, file io.Reader, primary bool) (*client.ProductImage, error)
}

// Listing is the draft for the sell form: scalar fields plus an ordered
// staged image sequence. The draft exclusively owns every staged preview
// handle until it is released on one of three paths: user removal,
// successful upload of that image, or reset.
type Listing struct {
	Title       string
	PriceText   string
	Description string
	CategoryID  int64
	Condition   string
	Campus      string

	// AcceptTrades is collected in the form but not part of the create
	// request; the backend has no field for it.
	AcceptTrades bool

	images   []*StagedImage
	errors   FieldErrors
	previews PreviewFactory

	mu       sync.Mutex
	inFlight bool
}

func NewListing() *Listing {
	return NewListingWithPreviews(TempFilePreview)
}

func NewListingWithPreviews(previews PreviewFactory) *Listing {
	return &Listing{
		errors:   FieldErrors{},
		previews: previews,
	}
}

func (d *Listing) Errors() FieldErrors {
	return d.errors
}

func (d *Listing) clearError(field string) {
	delete(d.errors, field)
}

func (d *Listing) SetTitle(v string)       { d.Title = v; d.clearError("title") }
func (d *Listing) SetPriceText(v string)   { d.PriceText = v; d.clearError("price") }
func (d *Listing) SetDescription(v string) { d.Description = v; d.clearError("description") }
func (d *Listing) SetCategoryID(v int64)   { d.CategoryID = v; d.clearError("categoryId") }
func (d *Listing) SetCondition(v string)   { d.Condition = v; d.clearError("condition") }
func (d *Listing) SetCampus(v string)      { d.Campus = v; d.clearError("campus") }
func (d *Listing) SetAcceptTrades(v bool)  { d.AcceptTrades = v }

// Stage reads and sniffs a candidate file, accepting only image content.
// Drag-and-drop and the file picker both funnel through here.
func (d *Listing) Stage(name string, r io.Reader) (*StagedImage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, ErrNotImage
	}

	preview, err := d.previews(name, data)
	if err != nil {
		return nil, err
	}

	img := &StagedImage{
		ID:          uuid.New().String(),
		Name:        name,
		ContentType: mtype.String(),
		Size:        int64(len(data)),
		data:        data,
		preview:     preview,
	}
	d.images = append(d.images, img)
	return img, nil
}

// Unstage removes a staged image and releases its preview synchronously.
func (d *Listing) Unstage(id string) bool {
	for i, img := range d.images {
		if img.ID == id {
			img.release()
			d.images = append(d.images[:i], d.images[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Listing) Images() []*StagedImage {
	return d.images
}

// Validate runs every field check and records the full error set. Price must
// parse as a non-negative number.
func (d *Listing) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(d.Title) == "" {
		errs["title"] = "Title is required"
	}

	switch price, err := strconv.ParseFloat(strings.TrimSpace(d.PriceText), 64); {
	case strings.TrimSpace(d.PriceText) == "":
		errs["price"] = "Price is required"
	case err != nil:
		errs["price"] = "Price must be a number"
	case price < 0:
		errs["price"] = "Price must not be negative"
	}

	if strings.TrimSpace(d.Description) == "" {
		errs["description"] = "Description is required"
	}

	if d.Condition == "" {
		errs["condition"] = "Condition is required"
	}

	if d.Campus == "" {
		errs["campus"] = "Campus is required"
	}

	d.errors = errs
	return errs
}

// InFlight reports whether a submission is currently running; the submit
// control stays disabled while it is.
func (d *Listing) InFlight() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inFlight
}

// Submit runs the two-phase submission: one create request, then one upload
// per staged image in staged order with only the first marked primary.
// Re-entry while in flight is a no-op. Any failure halts the sequence where
// it is; already-created backend state stays as-is and the fields are kept
// so the user can resubmit.
func (d *Listing) Submit(ctx context.Context, api SubmissionAPI) error {
	d.mu.Lock()
	if d.inFlight {
		d.mu.Unlock()
		return nil
	}
	d.inFlight = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.inFlight = false
		d.mu.Unlock()
	}()

	if errs := d.Validate(); !errs.Empty() {
		return ErrInvalid
	}

	price, _ := strconv.ParseFloat(strings.TrimSpace(d.PriceText), 64)

	available := true
	req := client.CreateProductRequest{
		Title:       d.Title,
		Description: d.Description,
		Price:       price,
		Quantity:    1,
		Condition:   d.Condition,
		CategoryID:  d.CategoryID,
		IsAvailable: &available,
	}

	product, err := api.CreateProduct(ctx, req)
	if err != nil {
		return err
	}

	for i, img := range d.images {
		if _, err := api.UploadProductImage(ctx, product.ID, img.Name, bytes.NewReader(img.data), i == 0); err != nil {
			return err
		}
		img.release()
	}

	d.Reset()
	return nil
}

// Reset returns the draft to its empty initial state, releasing any preview
// handles still owned.
func (d *Listing) Reset() {
	for _, img := range d.images {
		img.release()
	}

	d.Title = ""
	d.PriceText = ""
	d.Description = ""
	d.CategoryID = 0
	d.Condition = ""
	d.Campus = ""
	d.AcceptTrades = false
	d.images = nil
	d.errors = FieldErrors{}
}
