package service_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
	"github.com/narwhalmedia/tracker/internal/catalog/service"
	"github.com/narwhalmedia/tracker/pkg/errors"
	"github.com/narwhalmedia/tracker/pkg/logger"
	"github.com/narwhalmedia/tracker/pkg/utils"
)

func TestLookupService_EmptyQuerySkipsProvider(t *testing.T) {
	provider := new(MockProvider)
	svc := service.NewLookupService(provider, nil, 0, logger.NewNoop())

	got, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	provider.AssertNotCalled(t, "SearchMovies")
}

func TestLookupService_Unconfigured(t *testing.T) {
	svc := service.NewLookupService(nil, nil, 0, logger.NewNoop())
	assert.False(t, svc.Enabled())

	_, err := svc.Search(context.Background(), "dune")
	assert.True(t, errors.IsUnavailable(err))
}

func TestLookupService_CachesPerQuery(t *testing.T) {
	ctx := context.Background()
	cache := utils.NewInMemoryCache(0)
	defer cache.Close()

	candidates := []domain.Candidate{{Title: "Dune", AverageRating: 7.8, ReleaseYear: 2021}}
	provider := new(MockProvider)
	provider.On("SearchMovies", ctx, "Dune").Return(candidates, nil).Once()

	svc := service.NewLookupService(provider, cache, time.Minute, logger.NewNoop())

	first, err := svc.Search(ctx, "Dune")
	require.NoError(t, err)
	second, err := svc.Search(ctx, " dune ")
	require.NoError(t, err)

	assert.Equal(t, candidates, first)
	assert.Equal(t, candidates, second)
	provider.AssertNumberOfCalls(t, "SearchMovies", 1)
}

func TestLookupService_FailureBecomesLookupError(t *testing.T) {
	ctx := context.Background()
	provider := new(MockProvider)
	provider.On("SearchMovies", ctx, "dune").Return(nil, stderrors.New("connection refused"))

	svc := service.NewLookupService(provider, nil, 0, logger.NewNoop())
	_, err := svc.Search(ctx, "dune")

	assert.True(t, errors.IsLookup(err))
	assert.Contains(t, errors.MessageOf(err), "connection refused")
}

func TestLookupService_NoMatchesIsEmptyList(t *testing.T) {
	ctx := context.Background()
	provider := new(MockProvider)
	provider.On("SearchMovies", ctx, "zzzz").Return(nil, nil)

	svc := service.NewLookupService(provider, nil, 0, logger.NewNoop())
	got, err := svc.Search(ctx, "zzzz")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLookupService_CacheStoresOnlySuccesses(t *testing.T) {
	ctx := context.Background()
	miss := stderrors.New("miss")
	candidates := []domain.Candidate{{Title: "Dune", AverageRating: 7.8}}

	cache := new(MockCache)
	cache.On("Get", ctx, "lookup:dune").Return(nil, miss).Twice()
	cache.On("Set", ctx, "lookup:dune", candidates, 5*time.Minute).Return(nil).Once()

	provider := new(MockProvider)
	provider.On("SearchMovies", ctx, "Dune").Return(nil, stderrors.New("timeout")).Once()
	provider.On("SearchMovies", ctx, "Dune").Return(candidates, nil).Once()

	svc := service.NewLookupService(provider, cache, 5*time.Minute, logger.NewNoop())

	_, err := svc.Search(ctx, "Dune")
	assert.True(t, errors.IsLookup(err))
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	got, err := svc.Search(ctx, "Dune")
	require.NoError(t, err)
	assert.Equal(t, candidates, got)

	cache.AssertExpectations(t)
	provider.AssertExpectations(t)
}
