package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
)

// MockMediaStore is a mock for the media store
type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Create(ctx context.Context, item *domain.MediaItem) error {
	args := m.Called(ctx, item)
	if args.Error(0) == nil && item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockMediaStore) Get(ctx context.Context, id uuid.UUID) (*domain.MediaItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	item := *args.Get(0).(*domain.MediaItem)
	return &item, args.Error(1)
}

func (m *MockMediaStore) List(ctx context.Context) ([]domain.MediaItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *MockMediaStore) Update(ctx context.Context, item *domain.MediaItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMediaStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMediaStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMediaStore) Close() error {
	return nil
}

// MockProvider is a mock metadata provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) SearchMovies(ctx context.Context, query string) ([]domain.Candidate, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

// MockCache is a mock lookup cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (interface{}, error) {
	args := m.Called(ctx, key)
	return args.Get(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
