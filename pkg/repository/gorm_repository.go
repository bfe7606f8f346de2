package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	pkgerrors "github.com/narwhalmedia/tracker/pkg/errors"
)

// Create creates a new entity in the database.
func Create[T any](ctx context.Context, db *gorm.DB, entity *T) error {
	if err := db.WithContext(ctx).Create(entity).Error; err != nil {
		if pkgerrors.IsDuplicateError(err) {
			return pkgerrors.Store("entity already exists", err)
		}
		return pkgerrors.Store("failed to create entity", err)
	}
	return nil
}

// FindByID finds an entity by its primary key.
func FindByID[T any](ctx context.Context, db *gorm.DB, id interface{}) (*T, error) {
	var entity T
	if err := db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("entity not found")
		}
		return nil, pkgerrors.Store("failed to load entity", err)
	}
	return &entity, nil
}

// Replace overwrites every column of the row with the given id.
// It never inserts: an unknown id yields NotFound.
func Replace[T any](ctx context.Context, db *gorm.DB, id interface{}, entity *T) error {
	result := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Select("*").Updates(entity)
	if result.Error != nil {
		return pkgerrors.Store("failed to update entity", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.NotFound("entity not found for update")
	}
	return nil
}

// Delete removes an entity from the database by its ID.
func Delete[T any](ctx context.Context, db *gorm.DB, id interface{}) error {
	var entity T
	result := db.WithContext(ctx).Delete(&entity, "id = ?", id)
	if result.Error != nil {
		return pkgerrors.Store("failed to delete entity", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.NotFound("entity not found for deletion")
	}
	return nil
}

// List retrieves all entities in the given order, e.g. "created_at DESC".
func List[T any](ctx context.Context, db *gorm.DB, order string) ([]*T, error) {
	var entities []*T
	query := db.WithContext(ctx)
	if order != "" {
		query = query.Order(order)
	}

	if err := query.Find(&entities).Error; err != nil {
		return nil, pkgerrors.Store("failed to list entities", err)
	}
	return entities, nil
}
