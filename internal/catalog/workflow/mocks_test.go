package workflow_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
)

// MockCatalog is a mock implementation of workflow.Catalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) List(ctx context.Context) ([]domain.MediaItem, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]domain.MediaItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalog) Create(ctx context.Context, draft domain.Draft) (*domain.MediaItem, error) {
	args := m.Called(ctx, draft)
	if item, ok := args.Get(0).(*domain.MediaItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalog) Update(ctx context.Context, id uuid.UUID, draft domain.Draft) (*domain.MediaItem, error) {
	args := m.Called(ctx, id, draft)
	if item, ok := args.Get(0).(*domain.MediaItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalog) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLookup is a mock implementation of workflow.Lookup
type MockLookup struct {
	mock.Mock
}

func (m *MockLookup) Search(ctx context.Context, query string) ([]domain.Candidate, error) {
	args := m.Called(ctx, query)
	if c, ok := args.Get(0).([]domain.Candidate); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
