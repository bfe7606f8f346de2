package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
	pkgerrors "github.com/narwhalmedia/tracker/pkg/errors"
)

var errDuplicateID = errors.New("duplicate key")

// MediaBucket holds one JSON document per item, keyed by id.
const MediaBucket = "media"

var _ MediaStore = (*BoltRepository)(nil)

// BoltRepository implements MediaStore on an embedded bbolt file.
type BoltRepository struct {
	db *bbolt.DB
}

// NewBoltRepository wraps an open bbolt database. The media bucket must exist.
func NewBoltRepository(db *bbolt.DB) *BoltRepository {
	return &BoltRepository{db: db}
}

func (r *BoltRepository) put(tx *bbolt.Tx, item *domain.MediaItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return pkgerrors.Store("failed to encode media item", err)
	}
	if err := tx.Bucket([]byte(MediaBucket)).Put([]byte(item.ID.String()), data); err != nil {
		return pkgerrors.Store("failed to write media item", err)
	}
	return nil
}

// Create stores a new item.
func (r *BoltRepository) Create(ctx context.Context, item *domain.MediaItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return r.update(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(MediaBucket)).Get([]byte(item.ID.String())) != nil {
			return pkgerrors.Store("media item already exists", errDuplicateID)
		}
		return r.put(tx, item)
	})
}

// Get loads one item.
func (r *BoltRepository) Get(ctx context.Context, id uuid.UUID) (*domain.MediaItem, error) {
	var item domain.MediaItem
	err := r.view(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(MediaBucket)).Get([]byte(id.String()))
		if data == nil {
			return domain.ErrMediaNotFound
		}
		if err := json.Unmarshal(data, &item); err != nil {
			return pkgerrors.Store("failed to decode media item", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns all items, newest first.
func (r *BoltRepository) List(ctx context.Context) ([]domain.MediaItem, error) {
	items := make([]domain.MediaItem, 0)
	err := r.view(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(MediaBucket)).ForEach(func(k, v []byte) error {
			var item domain.MediaItem
			if err := json.Unmarshal(v, &item); err != nil {
				return pkgerrors.Store("failed to decode media item", err)
			}
			items = append(items, item)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID.String() > items[j].ID.String()
	})
	return items, nil
}

// Update overwrites an existing item.
func (r *BoltRepository) Update(ctx context.Context, item *domain.MediaItem) error {
	return r.update(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(MediaBucket)).Get([]byte(item.ID.String())) == nil {
			return domain.ErrMediaNotFound
		}
		return r.put(tx, item)
	})
}

// Delete removes an item.
func (r *BoltRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(MediaBucket))
		key := []byte(id.String())
		if b.Get(key) == nil {
			return domain.ErrMediaNotFound
		}
		if err := b.Delete(key); err != nil {
			return pkgerrors.Store("failed to delete media item", err)
		}
		return nil
	})
}

// Ping verifies the file is still open.
func (r *BoltRepository) Ping(ctx context.Context) error {
	return r.view(func(tx *bbolt.Tx) error { return nil })
}

// Close closes the bbolt file.
func (r *BoltRepository) Close() error {
	return r.db.Close()
}

func (r *BoltRepository) view(fn func(tx *bbolt.Tx) error) error {
	err := r.db.View(fn)
	return storeErr(err)
}

func (r *BoltRepository) update(fn func(tx *bbolt.Tx) error) error {
	err := r.db.Update(fn)
	return storeErr(err)
}

// storeErr keeps typed errors and wraps bbolt's own failures.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	var appErr *pkgerrors.AppError
	if pkgerrors.As(err, &appErr) {
		return err
	}
	return pkgerrors.Store("bolt transaction failed", err)
}
