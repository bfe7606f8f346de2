package workflow

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
	"github.com/narwhalmedia/tracker/pkg/errors"
)

// State of the modal.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateSubmitting:
		return "submitting"
	default:
		return "closed"
	}
}

// Mode tells whether the modal creates a new item or edits one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Modal is the create/edit form. It holds a transient draft and only
// calls the catalog on Submit.
type Modal struct {
	mu        sync.Mutex
	catalog   Catalog
	lookup    Lookup
	onSuccess func(ctx context.Context)

	state   State
	mode    Mode
	editID  uuid.UUID
	draft   domain.Draft
	results []domain.Candidate
	notice  string
	err     error

	// bumped by reset; search results from an older session are dropped
	session uint64
}

// NewModal creates a closed modal. onSuccess runs after every successful
// submission; lookup may be nil.
func NewModal(catalog Catalog, lookup Lookup, onSuccess func(ctx context.Context)) *Modal {
	return &Modal{
		catalog:   catalog,
		lookup:    lookup,
		onSuccess: onSuccess,
	}
}

// OpenCreate opens an empty form.
func (m *Modal) OpenCreate() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateClosed {
		return ErrModalOpen
	}
	m.reset()
	m.state = StateOpen
	m.mode = ModeCreate
	m.draft = domain.DefaultDraft()
	return nil
}

// OpenEdit opens the form on a copy of item.
func (m *Modal) OpenEdit(item domain.MediaItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateClosed {
		return ErrModalOpen
	}
	m.reset()
	m.state = StateOpen
	m.mode = ModeEdit
	m.editID = item.ID
	m.draft = domain.DraftFromItem(item)
	return nil
}

// EditDraft applies fn to the local draft.
func (m *Modal) EditDraft(fn func(d *domain.Draft)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireOpen(); err != nil {
		return err
	}
	fn(&m.draft)
	return nil
}

// Search fills the results panel. A provider failure is not returned;
// it becomes the notice and the panel is emptied.
func (m *Modal) Search(ctx context.Context, query string) error {
	m.mu.Lock()
	if err := m.requireLookup(); err != nil {
		m.mu.Unlock()
		return err
	}
	lookup, session := m.lookup, m.session
	m.mu.Unlock()

	candidates, err := lookup.Search(ctx, query)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session != session || m.state != StateOpen {
		// closed or reopened while the search was in flight
		return nil
	}
	if err != nil {
		m.results = nil
		m.notice = errors.MessageOf(err)
		return nil
	}
	m.results = candidates
	m.notice = ""
	if len(candidates) == 0 {
		m.notice = "No results found"
	}
	return nil
}

// SelectCandidate prefills the draft from result i and hides the panel.
func (m *Modal) SelectCandidate(i int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireLookup(); err != nil {
		return err
	}
	if i < 0 || i >= len(m.results) {
		return ErrNoSuchCandidate
	}
	m.draft = domain.ApplyCandidate(m.draft, m.results[i])
	m.results = nil
	m.notice = ""
	return nil
}

// Submit persists the draft. On success the modal closes and the refresh
// callback fires; on failure the modal stays open with the draft intact.
func (m *Modal) Submit(ctx context.Context) (*domain.MediaItem, error) {
	m.mu.Lock()
	switch m.state {
	case StateSubmitting:
		m.mu.Unlock()
		return nil, ErrSubmitInProgress
	case StateClosed:
		m.mu.Unlock()
		return nil, ErrModalClosed
	}
	m.state = StateSubmitting
	m.err = nil
	mode, id, draft := m.mode, m.editID, m.draft
	m.mu.Unlock()

	var (
		item *domain.MediaItem
		err  error
	)
	if mode == ModeEdit {
		item, err = m.catalog.Update(ctx, id, draft)
	} else {
		item, err = m.catalog.Create(ctx, draft)
	}

	m.mu.Lock()
	if err != nil {
		m.state = StateOpen
		m.err = err
		m.mu.Unlock()
		return nil, err
	}
	m.state = StateClosed
	m.reset()
	m.mu.Unlock()

	if m.onSuccess != nil {
		m.onSuccess(ctx)
	}
	return item, nil
}

// Cancel discards the draft without calling the catalog.
func (m *Modal) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateSubmitting:
		return ErrSubmitInProgress
	case StateOpen:
		m.state = StateClosed
		m.reset()
	}
	return nil
}

// State returns the current state.
func (m *Modal) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Mode returns the mode of the open form.
func (m *Modal) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// Draft returns a copy of the draft.
func (m *Modal) Draft() domain.Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

// Results returns the lookup results panel; empty when hidden.
func (m *Modal) Results() []domain.Candidate {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Candidate(nil), m.results...)
}

// Notice returns the last lookup notice.
func (m *Modal) Notice() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notice
}

// Err returns the error of the last failed submission.
func (m *Modal) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// LookupEnabled reports whether Search is allowed right now.
func (m *Modal) LookupEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requireLookup() == nil
}

func (m *Modal) requireOpen() error {
	switch m.state {
	case StateSubmitting:
		return ErrSubmitInProgress
	case StateClosed:
		return ErrModalClosed
	}
	return nil
}

func (m *Modal) requireLookup() error {
	if err := m.requireOpen(); err != nil {
		return err
	}
	if m.mode != ModeCreate || m.lookup == nil {
		return ErrLookupDisabled
	}
	return nil
}

func (m *Modal) reset() {
	m.session++
	m.editID = uuid.Nil
	m.draft = domain.Draft{}
	m.results = nil
	m.notice = ""
	m.err = nil
}
