package workflow_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
	"github.com/narwhalmedia/tracker/internal/catalog/workflow"
	"github.com/narwhalmedia/tracker/pkg/errors"
	"github.com/narwhalmedia/tracker/test/testutil"
)

func TestModal_CreateFlowWithLookup(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)
	lookup := new(MockLookup)
	refreshed := 0
	m := workflow.NewModal(catalog, lookup, func(context.Context) { refreshed++ })

	require.NoError(t, m.OpenCreate())
	assert.Equal(t, workflow.StateOpen, m.State())
	assert.Equal(t, workflow.ModeCreate, m.Mode())
	assert.Equal(t, domain.DefaultDraft(), m.Draft())
	assert.True(t, m.LookupEnabled())

	require.NoError(t, m.EditDraft(func(d *domain.Draft) {
		d.Status = domain.StatusInProgress
		d.Progress = 40
	}))

	lookup.On("Search", ctx, "dune").Return([]domain.Candidate{
		{Title: "Dune: Part Two", PosterURL: "https://image.tmdb.org/t/p/w500/p.jpg", AverageRating: 8.46},
	}, nil).Once()
	require.NoError(t, m.Search(ctx, "dune"))
	require.Len(t, m.Results(), 1)

	require.NoError(t, m.SelectCandidate(0))
	assert.Empty(t, m.Results())

	want := domain.Draft{
		Title:    "Dune: Part Two",
		Type:     domain.MediaTypeMovie,
		Status:   domain.StatusInProgress,
		Rating:   8.5,
		Progress: 40,
		ImageURL: "https://image.tmdb.org/t/p/w500/p.jpg",
	}
	assert.Equal(t, want, m.Draft())

	stored := testutil.CreateTestMediaItem("Dune: Part Two", domain.MediaTypeMovie, 0)
	catalog.On("Create", ctx, want).Return(stored, nil).Once()

	item, err := m.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, item)
	assert.Equal(t, workflow.StateClosed, m.State())
	assert.Equal(t, 1, refreshed)

	catalog.AssertExpectations(t)
	lookup.AssertExpectations(t)
}

func TestModal_LookupFailureBecomesNotice(t *testing.T) {
	ctx := context.Background()
	lookup := new(MockLookup)
	m := workflow.NewModal(new(MockCatalog), lookup, nil)
	require.NoError(t, m.OpenCreate())

	lookup.On("Search", ctx, "dune").Return([]domain.Candidate{{Title: "Dune"}}, nil).Once()
	require.NoError(t, m.Search(ctx, "dune"))
	require.Len(t, m.Results(), 1)

	lookup.On("Search", ctx, "dune 2").Return(nil, errors.Lookup("metadata lookup failed", stderrors.New("timeout"))).Once()
	require.NoError(t, m.Search(ctx, "dune 2"))
	assert.Empty(t, m.Results())
	assert.Contains(t, m.Notice(), "metadata lookup failed")
	assert.Equal(t, workflow.StateOpen, m.State())
}

func TestModal_NoResultsNotice(t *testing.T) {
	ctx := context.Background()
	lookup := new(MockLookup)
	m := workflow.NewModal(new(MockCatalog), lookup, nil)
	require.NoError(t, m.OpenCreate())

	lookup.On("Search", ctx, "qwertyuiop").Return([]domain.Candidate{}, nil).Once()
	require.NoError(t, m.Search(ctx, "qwertyuiop"))
	assert.Empty(t, m.Results())
	assert.NotEmpty(t, m.Notice())
}

func TestModal_EditModeDisablesLookup(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)
	lookup := new(MockLookup)
	m := workflow.NewModal(catalog, lookup, nil)

	item := testutil.CreateTestMediaItem("Hades", domain.MediaTypeGame, 0)
	require.NoError(t, m.OpenEdit(*item))
	assert.Equal(t, workflow.ModeEdit, m.Mode())
	assert.Equal(t, domain.DraftFromItem(*item), m.Draft())
	assert.False(t, m.LookupEnabled())
	assert.ErrorIs(t, m.Search(ctx, "hades"), workflow.ErrLookupDisabled)
	assert.ErrorIs(t, m.SelectCandidate(0), workflow.ErrLookupDisabled)

	require.NoError(t, m.EditDraft(func(d *domain.Draft) { d.Status = domain.StatusCompleted }))
	edited := domain.DraftFromItem(*item)
	edited.Status = domain.StatusCompleted

	updated := *item
	updated.Status = domain.StatusCompleted
	catalog.On("Update", ctx, item.ID, edited).Return(&updated, nil).Once()

	got, err := m.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)
	lookup.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	catalog.AssertExpectations(t)
}

func TestModal_SubmitFailureKeepsDraft(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)
	refreshed := false
	m := workflow.NewModal(catalog, nil, func(context.Context) { refreshed = true })
	require.NoError(t, m.OpenCreate())
	require.NoError(t, m.EditDraft(func(d *domain.Draft) { d.Title = "" }))

	draft := m.Draft()
	catalog.On("Create", ctx, draft).Return(nil, errors.Validation("title is required")).Once()

	_, err := m.Submit(ctx)
	require.Error(t, err)
	assert.Equal(t, workflow.StateOpen, m.State())
	assert.Equal(t, draft, m.Draft())
	assert.Equal(t, "title is required", errors.MessageOf(m.Err()))
	assert.False(t, refreshed)
	assert.False(t, m.LookupEnabled(), "no lookup configured")
}

func TestModal_SecondSubmitRejected(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)
	m := workflow.NewModal(catalog, nil, nil)
	require.NoError(t, m.OpenCreate())
	require.NoError(t, m.EditDraft(func(d *domain.Draft) { d.Title = "Dune" }))

	release := make(chan time.Time)
	stored := testutil.CreateTestMediaItem("Dune", domain.MediaTypeMovie, 0)
	catalog.On("Create", ctx, mock.Anything).WaitUntil(release).Return(stored, nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := m.Submit(ctx)
		done <- err
	}()

	require.Eventually(t, func() bool { return m.State() == workflow.StateSubmitting }, time.Second, time.Millisecond)

	_, err := m.Submit(ctx)
	assert.ErrorIs(t, err, workflow.ErrSubmitInProgress)
	assert.ErrorIs(t, m.Cancel(), workflow.ErrSubmitInProgress)
	assert.ErrorIs(t, m.EditDraft(func(*domain.Draft) {}), workflow.ErrSubmitInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, workflow.StateClosed, m.State())
	catalog.AssertNumberOfCalls(t, "Create", 1)
}

func TestModal_CancelAndReopen(t *testing.T) {
	catalog := new(MockCatalog)
	m := workflow.NewModal(catalog, nil, nil)

	require.NoError(t, m.OpenCreate())
	assert.ErrorIs(t, m.OpenCreate(), workflow.ErrModalOpen)
	require.NoError(t, m.EditDraft(func(d *domain.Draft) { d.Title = "scratch" }))
	require.NoError(t, m.Cancel())
	assert.Equal(t, workflow.StateClosed, m.State())

	_, err := m.Submit(context.Background())
	assert.ErrorIs(t, err, workflow.ErrModalClosed)

	item := domain.MediaItem{ID: uuid.New(), Title: "Dune", Type: domain.MediaTypeBook, Status: domain.StatusToDo}
	require.NoError(t, m.OpenEdit(item))
	assert.Equal(t, "Dune", m.Draft().Title)
	require.NoError(t, m.Cancel())

	require.NoError(t, m.OpenCreate())
	assert.Equal(t, domain.DefaultDraft(), m.Draft())

	catalog.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	catalog.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestModal_SelectCandidateOutOfRange(t *testing.T) {
	m := workflow.NewModal(new(MockCatalog), new(MockLookup), nil)
	require.NoError(t, m.OpenCreate())
	assert.ErrorIs(t, m.SelectCandidate(0), workflow.ErrNoSuchCandidate)
}

func TestModal_SearchFromClosedSessionIsDropped(t *testing.T) {
	ctx := context.Background()
	lookup := new(MockLookup)
	m := workflow.NewModal(new(MockCatalog), lookup, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	lookup.On("Search", ctx, "old").Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return([]domain.Candidate{{Title: "Stale old"}}, nil).Once()

	require.NoError(t, m.OpenCreate())
	done := make(chan error, 1)
	go func() { done <- m.Search(ctx, "old") }()
	<-started

	require.NoError(t, m.Cancel())
	require.NoError(t, m.OpenCreate())
	close(release)
	require.NoError(t, <-done)

	assert.Empty(t, m.Results())
	assert.Empty(t, m.Notice())
	assert.ErrorIs(t, m.SelectCandidate(0), workflow.ErrNoSuchCandidate)
	assert.Equal(t, domain.DefaultDraft(), m.Draft())
	lookup.AssertExpectations(t)
}

func TestModal_FailedSearchFromClosedSessionIsDropped(t *testing.T) {
	ctx := context.Background()
	lookup := new(MockLookup)
	m := workflow.NewModal(new(MockCatalog), lookup, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	lookup.On("Search", ctx, "old").Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(nil, errors.Lookup("search failed", stderrors.New("timeout"))).Once()

	require.NoError(t, m.OpenCreate())
	done := make(chan error, 1)
	go func() { done <- m.Search(ctx, "old") }()
	<-started

	require.NoError(t, m.Cancel())
	require.NoError(t, m.OpenCreate())
	close(release)
	require.NoError(t, <-done)

	assert.Empty(t, m.Notice())
	assert.Equal(t, workflow.StateOpen, m.State())
}
