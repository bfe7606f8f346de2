package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
	"github.com/narwhalmedia/tracker/internal/catalog/repository"
	"github.com/narwhalmedia/tracker/pkg/interfaces"
	"github.com/narwhalmedia/tracker/pkg/metrics"
)

// MediaService handles catalog business logic
type MediaService struct {
	store    repository.MediaStore
	eventBus interfaces.EventBus
	clock    Clock
	logger   interfaces.Logger
}

// NewMediaService creates a new media service
func NewMediaService(
	store repository.MediaStore,
	eventBus interfaces.EventBus,
	clock Clock,
	logger interfaces.Logger,
) *MediaService {
	if clock == nil {
		clock = NewMonotonicClock(nil)
	}
	return &MediaService{
		store:    store,
		eventBus: eventBus,
		clock:    clock,
		logger:   logger,
	}
}

// List returns every item, newest first
func (s *MediaService) List(ctx context.Context) ([]domain.MediaItem, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list media", interfaces.Error(err))
		return nil, err
	}
	return items, nil
}

// Get returns a single item
func (s *MediaService) Get(ctx context.Context, id uuid.UUID) (*domain.MediaItem, error) {
	return s.store.Get(ctx, id)
}

// Create validates and stores a new item
func (s *MediaService) Create(ctx context.Context, draft domain.Draft) (*domain.MediaItem, error) {
	item, err := domain.NewMediaItem(draft)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.store.Create(ctx, item); err != nil {
		s.logger.Error("Failed to create media", interfaces.Error(err))
		return nil, err
	}

	s.eventBus.PublishAsync(ctx, domain.NewMediaCreatedEvent(*item))
	metrics.RecordMutation("create")

	s.logger.Info("Media created",
		interfaces.String("id", item.ID.String()),
		interfaces.String("title", item.Title),
		interfaces.String("type", string(item.Type)))

	return item, nil
}

// Update replaces every mutable field of an item
func (s *MediaService) Update(ctx context.Context, id uuid.UUID, draft domain.Draft) (*domain.MediaItem, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	item, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := item.Replace(draft); err != nil {
		return nil, err
	}

	return s.save(ctx, item, false)
}

// Patch changes only the fields set in patch
func (s *MediaService) Patch(ctx context.Context, id uuid.UUID, patch domain.MediaPatch) (*domain.MediaItem, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyPatch
	}

	item, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := item.Replace(patch.Merge(*item)); err != nil {
		return nil, err
	}

	return s.save(ctx, item, true)
}

func (s *MediaService) save(ctx context.Context, item *domain.MediaItem, partial bool) (*domain.MediaItem, error) {
	item.UpdatedAt = after(s.clock.Now(), item.UpdatedAt)

	if err := s.store.Update(ctx, item); err != nil {
		s.logger.Error("Failed to update media",
			interfaces.String("id", item.ID.String()),
			interfaces.Error(err))
		return nil, err
	}

	s.eventBus.PublishAsync(ctx, domain.NewMediaUpdatedEvent(*item, partial))
	if partial {
		metrics.RecordMutation("patch")
	} else {
		metrics.RecordMutation("update")
	}

	s.logger.Info("Media updated",
		interfaces.String("id", item.ID.String()),
		interfaces.Bool("partial", partial))

	return item, nil
}

// Delete permanently removes an item
func (s *MediaService) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete media",
			interfaces.String("id", id.String()),
			interfaces.Error(err))
		return err
	}

	s.eventBus.PublishAsync(ctx, domain.NewMediaDeletedEvent(*item))
	metrics.RecordMutation("delete")

	s.logger.Info("Media deleted",
		interfaces.String("id", id.String()),
		interfaces.String("title", item.Title))

	return nil
}

// Ping reports whether the store is reachable
func (s *MediaService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
