package workflow

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
	"github.com/narwhalmedia/tracker/pkg/interfaces"
)

// ViewState is the UI state record of the catalog screen.
type ViewState struct {
	Items          []domain.MediaItem
	SearchTerm     string
	ActiveCategory domain.Category
	Loading        bool
	Err            error
}

// CatalogView owns the list and filter state and the modal.
type CatalogView struct {
	mu      sync.Mutex
	catalog Catalog
	modal   *Modal
	state   ViewState
	logger  interfaces.Logger
}

// NewCatalogView creates an empty view. The modal refreshes the view
// after each successful submission.
func NewCatalogView(catalog Catalog, lookup Lookup, logger interfaces.Logger) *CatalogView {
	v := &CatalogView{
		catalog: catalog,
		state: ViewState{
			Items:          []domain.MediaItem{},
			ActiveCategory: domain.CategoryAll,
		},
		logger: logger,
	}
	v.modal = NewModal(catalog, lookup, func(ctx context.Context) {
		_ = v.Refresh(ctx)
	})
	return v
}

// Refresh refetches the full list. On failure the previous items are kept
// and the error is recorded in the state.
// A slower earlier fetch can still overwrite a newer one.
func (v *CatalogView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.state.Loading = true
	v.mu.Unlock()

	items, err := v.catalog.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Loading = false
	if err != nil {
		v.state.Err = err
		v.logger.Warn("Failed to refresh catalog", interfaces.Error(err))
		return err
	}
	v.state.Items = items
	v.state.Err = nil
	v.logger.Debug("Catalog refreshed", interfaces.Int("items", len(items)))
	return nil
}

// SetSearchTerm updates the title filter.
func (v *CatalogView) SetSearchTerm(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.SearchTerm = term
}

// SetCategory updates the category tab.
func (v *CatalogView) SetCategory(c domain.Category) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.ActiveCategory = c
}

// ResetFilters clears the search term and selects All.
func (v *CatalogView) ResetFilters() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.SearchTerm = ""
	v.state.ActiveCategory = domain.CategoryAll
}

// State returns a copy of the UI state.
func (v *CatalogView) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	s.Items = append([]domain.MediaItem(nil), v.state.Items...)
	return s
}

// Visible returns the filtered list.
func (v *CatalogView) Visible() []domain.MediaItem {
	v.mu.Lock()
	defer v.mu.Unlock()
	return domain.Visible(v.state.Items, v.state.SearchTerm, v.state.ActiveCategory)
}

// IsEmpty reports whether the current filters hide everything.
func (v *CatalogView) IsEmpty() bool {
	return len(v.Visible()) == 0
}

// AddNew opens the modal in create mode.
func (v *CatalogView) AddNew() error {
	return v.modal.OpenCreate()
}

// Edit opens the modal on the listed item with id.
func (v *CatalogView) Edit(id uuid.UUID) error {
	v.mu.Lock()
	var (
		item  domain.MediaItem
		found bool
	)
	for _, it := range v.state.Items {
		if it.ID == id {
			item, found = it, true
			break
		}
	}
	v.mu.Unlock()

	if !found {
		return domain.ErrMediaNotFound
	}
	return v.modal.OpenEdit(item)
}

// Delete removes the item and refetches the list.
func (v *CatalogView) Delete(ctx context.Context, id uuid.UUID) error {
	if err := v.catalog.Delete(ctx, id); err != nil {
		v.mu.Lock()
		v.state.Err = err
		v.mu.Unlock()
		return err
	}
	return v.Refresh(ctx)
}

// Modal returns the create/edit modal.
func (v *CatalogView) Modal() *Modal {
	return v.modal
}
