package state

import (
	"time"

	"showcase/internal/domain"
	"showcase/internal/logic"
	uilogic "showcase/internal/ui/logic"
)

// StatusKind selects how the status line is coloured
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// AppState contains all the application state
type AppState struct {
	// Product data
	Store   logic.ProductStore // catalog order, as loaded
	Visible []domain.Product   // filtered and sorted, as shown on the strip

	// Load state
	Loading   bool
	Source    string
	Stale     bool // list came from the cache after a failed fetch
	FetchedAt time.Time

	// Presentation
	Color       domain.ColorKey
	SortMode    uilogic.SortMode
	FilterQuery string

	// UI state
	ShowHelp         bool
	HelpScrollOffset int
	StatusMessage    string
	StatusKind       StatusKind
}

// NewAppState creates a new application state
func NewAppState(store logic.ProductStore, color domain.ColorKey) *AppState {
	return &AppState{
		Store:   store,
		Visible: make([]domain.Product, 0),
		Color:   domain.VariantFor(color).Key,
	}
}

// SetProducts replaces the catalog and recomputes the visible list
func (s *AppState) SetProducts(products []domain.Product) {
	s.Store.ReplaceProducts(products)
	s.Recompute()
}

// Recompute applies the filter and the sort mode to the catalog
func (s *AppState) Recompute() {
	visible := uilogic.FilterProducts(s.Store.GetAllProducts(), s.FilterQuery)
	uilogic.SortProducts(visible, s.SortMode)
	s.Visible = visible
}

// SetFilter applies a new filter query
func (s *AppState) SetFilter(query string) {
	s.FilterQuery = query
	s.Recompute()
}

// CycleSort moves to the next sort mode
func (s *AppState) CycleSort() {
	s.SortMode = s.SortMode.Next()
	s.Recompute()
}

// SetColor selects the active colour variant; unknown keys are ignored
func (s *AppState) SetColor(key domain.ColorKey) bool {
	v := domain.VariantFor(key)
	if v.Key != key || s.Color == key {
		return false
	}
	s.Color = key
	return true
}

// NextColor returns the variant after the active one, wrapping around
func (s *AppState) NextColor() domain.ColorKey {
	for i, v := range domain.ColorVariants {
		if v.Key == s.Color {
			return domain.ColorVariants[(i+1)%len(domain.ColorVariants)].Key
		}
	}
	return domain.ColorVariants[0].Key
}

// ProductAt returns the visible product at index
func (s *AppState) ProductAt(index int) (domain.Product, bool) {
	if index < 0 || index >= len(s.Visible) {
		return domain.Product{}, false
	}
	return s.Visible[index], true
}

// SetStatus sets the status line
func (s *AppState) SetStatus(kind StatusKind, msg string) {
	s.StatusKind = kind
	s.StatusMessage = msg
}
