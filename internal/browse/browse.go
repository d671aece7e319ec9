package browse

import (
	"context"
	"strings"
)

// Listing is the read model rendered in the browse grid. Campus is empty for
// backend-sourced records and set only on locally seeded sample data.
type Listing struct {
	ID        int64
	Title     string
	Condition string
	Price     float64
	Image     string
	Category  string
	Campus    string
}

// Loader fetches one page of listings from the remote collaborator.
type Loader interface {
	Listings(ctx context.Context, page, size int) ([]Listing, error)
}

// PriceRange bounds are inclusive on both ends.
type PriceRange struct {
	Min float64
	Max float64
}

const (
	// FilterAll is the wildcard value for the category and campus filters.
	FilterAll = "all"

	// DefaultPriceMax is the upper bound of the unfiltered price range.
	DefaultPriceMax = 10000

	loadPage = 0
	loadSize = 20
)

// CategoryOptions and CampusOptions are the fixed filter enumerations.
var (
	CategoryOptions = []string{"books", "furniture", "electronics", "appliances", "transportation", "decor"}
	CampusOptions   = []string{"Onakoor", "Warriom Road", "Pune"}

	// PricePresets are the selectable price brackets, ending with the
	// unfiltered default.
	PricePresets = []PriceRange{
		{0, 250},
		{250, 500},
		{500, 1000},
		{1000, 10000},
		{0, DefaultPriceMax},
	}
)

// View holds a working set of listings and independent filter criteria, and
// recomputes the visible subset on demand.
type View struct {
	items      []Listing
	seeded     bool
	searchTerm string
	category   string
	campus     string
	priceRange PriceRange
	favorites  map[int64]struct{}
	loadErr    error
}

// NewView creates a filter view. When seed is non-empty the remote load is
// skipped entirely and the seed becomes the working set.
func NewView(seed []Listing) *View {
	return &View{
		items:      seed,
		seeded:     len(seed) > 0,
		category:   FilterAll,
		campus:     FilterAll,
		priceRange: PriceRange{0, DefaultPriceMax},
		favorites:  make(map[int64]struct{}),
	}
}

// Load fetches the working set once (page 0, fixed size). It never retries;
// a failed load records the error and leaves the current items in place. A
// resolved load overwrites items wholesale, regardless of filter changes made
// while it was in flight.
func (v *View) Load(ctx context.Context, loader Loader) error {
	if v.seeded {
		return nil
	}

	listings, err := loader.Listings(ctx, loadPage, loadSize)
	if err != nil {
		v.loadErr = err
		return err
	}

	v.ReplaceItems(listings)
	return nil
}

// ReplaceItems installs a freshly loaded working set, last write wins.
func (v *View) ReplaceItems(listings []Listing) {
	v.items = listings
	v.loadErr = nil
}

// FailLoad records a load error without touching the working set.
func (v *View) FailLoad(err error) {
	v.loadErr = err
}

func (v *View) LoadErr() error {
	return v.loadErr
}

func (v *View) Items() []Listing {
	return v.items
}

func (v *View) SetSearchTerm(term string) {
	v.searchTerm = term
}

func (v *View) SearchTerm() string {
	return v.searchTerm
}

func (v *View) SetCategory(category string) {
	v.category = category
}

func (v *View) Category() string {
	return v.category
}

func (v *View) SetCampus(campus string) {
	v.campus = campus
}

func (v *View) Campus() string {
	return v.campus
}

func (v *View) SetPriceRange(min, max float64) {
	v.priceRange = PriceRange{Min: min, Max: max}
}

func (v *View) PriceRangeSelected() PriceRange {
	return v.priceRange
}

// VisibleListings returns the subset of items satisfying every filter. The
// combined filter is the AND of four independent predicates; a listing with
// no campus is never excluded by a campus filter, since backend records omit
// campus.
func (v *View) VisibleListings() []Listing {
	visible := make([]Listing, 0, len(v.items))
	term := strings.ToLower(v.searchTerm)

	for _, item := range v.items {
		if !strings.Contains(strings.ToLower(item.Title), term) {
			continue
		}
		if v.category != FilterAll && item.Category != v.category {
			continue
		}
		if v.campus != FilterAll && item.Campus != "" && item.Campus != v.campus {
			continue
		}
		if item.Price < v.priceRange.Min || item.Price > v.priceRange.Max {
			continue
		}
		visible = append(visible, item)
	}

	return visible
}

// ToggleFavorite flips membership of id in the favorites set. Favorites are
// purely local and never affect visibility.
func (v *View) ToggleFavorite(id int64) {
	if _, ok := v.favorites[id]; ok {
		delete(v.favorites, id)
	} else {
		v.favorites[id] = struct{}{}
	}
}

func (v *View) IsFavorite(id int64) bool {
	_, ok := v.favorites[id]
	return ok
}

func (v *View) FavoriteCount() int {
	return len(v.favorites)
}
