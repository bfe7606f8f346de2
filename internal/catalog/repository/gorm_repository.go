package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
	"github.com/narwhalmedia/tracker/pkg/database"
	pkgerrors "github.com/narwhalmedia/tracker/pkg/errors"
	"github.com/narwhalmedia/tracker/pkg/repository"
)

var _ MediaStore = (*GormRepository)(nil)

// GormRepository implements MediaStore on SQLite or PostgreSQL.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM repository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Create creates a new media item.
func (r *GormRepository) Create(ctx context.Context, item *domain.MediaItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return repository.Create(ctx, r.db, toModel(item))
}

// Get retrieves a media item by ID.
func (r *GormRepository) Get(ctx context.Context, id uuid.UUID) (*domain.MediaItem, error) {
	m, err := repository.FindByID[MediaItem](ctx, r.db, id)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, domain.ErrMediaNotFound
		}
		return nil, err
	}
	item := m.toDomain()
	return &item, nil
}

// List lists all media items, newest first.
func (r *GormRepository) List(ctx context.Context) ([]domain.MediaItem, error) {
	models, err := repository.List[MediaItem](ctx, r.db, "created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}

	items := make([]domain.MediaItem, len(models))
	for i, m := range models {
		items[i] = m.toDomain()
	}
	return items, nil
}

// Update replaces a media item.
func (r *GormRepository) Update(ctx context.Context, item *domain.MediaItem) error {
	err := repository.Replace(ctx, r.db, item.ID, toModel(item))
	if pkgerrors.IsNotFound(err) {
		return domain.ErrMediaNotFound
	}
	return err
}

// Delete deletes a media item.
func (r *GormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repository.Delete[MediaItem](ctx, r.db, id)
	if pkgerrors.IsNotFound(err) {
		return domain.ErrMediaNotFound
	}
	return err
}

// Ping checks the connection.
func (r *GormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return pkgerrors.Store("failed to get sql handle", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return pkgerrors.Store("database unreachable", err)
	}
	return nil
}

// Close closes the connection pool.
func (r *GormRepository) Close() error {
	return database.Close(r.db)
}
