package posgrest

import (
	"context"

	"gorm.io/gorm"
)

// repository is a generic GORM-based repository. It mirrors the in-memory
// snapshot into Postgres; the engine itself never reads through it.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(&entity).Error
}

// GetAll retrieves all entities of type T, used to build the snapshot at
// boot.
func (r *repository[T]) GetAll(ctx context.Context) ([]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return entities, nil
}

// GetByID retrieves a single entity by its ID.
func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// Update updates an existing entity identified by ID.
func (r *repository[T]) Update(ctx context.Context, entity *T, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Updates(entity).Error
}

// Count returns the number of stored entities, used to decide whether the
// demo seed should run.
func (r *repository[T]) Count(ctx context.Context) (int64, error) {
	var entity T
	var count int64
	err := r.db.WithContext(ctx).Model(&entity).Count(&count).Error
	return count, err
}
