package browse

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	listings []Listing
	err      error
	calls    int
}

func (l *stubLoader) Listings(context.Context, int, int) ([]Listing, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return l.listings, nil
}

func titles(listings []Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.Title)
	}
	return out
}

func TestVisibleListingsIsConjunctionOfPredicates(t *testing.T) {
	v := NewView(SampleListings())

	v.SetSearchTerm("m")
	v.SetCategory("appliances")
	v.SetCampus("Warriom Road")
	v.SetPriceRange(0, 3200)

	visible := v.VisibleListings()
	assert.ElementsMatch(t, []string{"Mini Fridge", "Microwave"}, titles(visible))

	// Same criteria applied in a different order yields the same subset.
	v2 := NewView(SampleListings())
	v2.SetPriceRange(0, 3200)
	v2.SetCampus("Warriom Road")
	v2.SetCategory("appliances")
	v2.SetSearchTerm("m")
	assert.Equal(t, titles(visible), titles(v2.VisibleListings()))
}

func TestSearchTermMatchesTitleSubstring(t *testing.T) {
	v := NewView(SampleListings())
	v.SetSearchTerm("lamp")

	visible := v.VisibleListings()
	assert.Equal(t, []string{"Desk Lamp"}, titles(visible))
	assert.NotContains(t, titles(visible), "Coffee Maker")
}

func TestPriceRangeBoundsAreInclusive(t *testing.T) {
	v := NewView(SampleListings())
	v.SetPriceRange(0, 250)

	visible := titles(v.VisibleListings())
	assert.Contains(t, visible, "Textbook: Calculus 101") // price exactly 250
	assert.NotContains(t, visible, "Mini Fridge")         // price 3200
}

func TestCampusFilterNeverHidesCampuslessListings(t *testing.T) {
	v := NewView([]Listing{
		{ID: 1, Title: "Backend Sourced", Price: 100, Category: "books"},
		{ID: 2, Title: "Pune Listing", Price: 100, Category: "books", Campus: "Pune"},
		{ID: 3, Title: "Onakoor Listing", Price: 100, Category: "books", Campus: "Onakoor"},
	})
	v.SetCampus("Pune")

	visible := titles(v.VisibleListings())
	assert.Contains(t, visible, "Backend Sourced")
	assert.Contains(t, visible, "Pune Listing")
	assert.NotContains(t, visible, "Onakoor Listing")
}

func TestVisibleListingsIsIdempotent(t *testing.T) {
	v := NewView(SampleListings())
	v.SetSearchTerm("e")
	v.SetPriceRange(0, 5000)

	first := v.VisibleListings()
	second := v.VisibleListings()
	assert.Equal(t, first, second)
}

func TestToggleFavoriteIsItsOwnInverse(t *testing.T) {
	v := NewView(SampleListings())

	assert.False(t, v.IsFavorite(2))
	v.ToggleFavorite(2)
	assert.True(t, v.IsFavorite(2))
	v.ToggleFavorite(2)
	assert.False(t, v.IsFavorite(2))
	assert.Zero(t, v.FavoriteCount())
}

func TestFavoritesDoNotAffectVisibility(t *testing.T) {
	v := NewView(SampleListings())
	before := len(v.VisibleListings())

	v.ToggleFavorite(1)
	v.ToggleFavorite(2)

	assert.Len(t, v.VisibleListings(), before)
}

func TestLoadSkippedWhenSeeded(t *testing.T) {
	loader := &stubLoader{listings: []Listing{{ID: 99, Title: "Remote"}}}
	v := NewView(SampleListings())

	require.NoError(t, v.Load(context.Background(), loader))
	assert.Zero(t, loader.calls)
	assert.Len(t, v.Items(), 8)
}

func TestLoadReplacesItemsWholesale(t *testing.T) {
	loader := &stubLoader{listings: []Listing{
		{ID: 10, Title: "Remote Couch", Price: 900, Category: "furniture"},
	}}
	v := NewView(nil)

	require.NoError(t, v.Load(context.Background(), loader))
	assert.Equal(t, []string{"Remote Couch"}, titles(v.Items()))
	assert.Equal(t, 1, loader.calls)
}

func TestLoadFailureRecordsErrorWithoutRetry(t *testing.T) {
	loader := &stubLoader{err: errors.New("connection refused")}
	v := NewView(nil)

	err := v.Load(context.Background(), loader)
	require.Error(t, err)
	assert.Equal(t, 1, loader.calls)
	assert.Error(t, v.LoadErr())
	assert.Empty(t, v.Items())
}

func TestLateLoadResultStillWins(t *testing.T) {
	v := NewView(nil)

	// Filter changes made while a load is in flight do not block the
	// resolved load from overwriting the working set.
	v.SetSearchTerm("lamp")
	v.ReplaceItems([]Listing{{ID: 1, Title: "Desk Lamp", Price: 750}})

	assert.Len(t, v.Items(), 1)
	assert.Equal(t, []string{"Desk Lamp"}, titles(v.VisibleListings()))
}

func TestEmptyResultIsDistinctFromUnfiltered(t *testing.T) {
	v := NewView(SampleListings())
	v.SetSearchTerm("zzz-no-such-listing")

	assert.NotEmpty(t, v.Items())
	assert.Empty(t, v.VisibleListings())
}
