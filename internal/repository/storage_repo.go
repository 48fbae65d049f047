package repository

import (
	"context"
	"errors"

	"go-stockroom/internal/apperr"
	"go-stockroom/internal/model"

	"gorm.io/gorm"
)

type StorageRepository interface {
	Create(ctx context.Context, storage *model.Storage) error
	FindAll(ctx context.Context, search string) ([]model.Storage, error)
	FindByID(ctx context.Context, id uint) (*model.Storage, error)
	FindByIDs(tx *gorm.DB, ids []uint) ([]model.Storage, error)
}

type storageRepo struct {
	db *gorm.DB
}

func NewStorageRepo(db *gorm.DB) StorageRepository {
	return &storageRepo{db}
}

func (r *storageRepo) Create(ctx context.Context, storage *model.Storage) error {
	return r.db.WithContext(ctx).Create(storage).Error
}

// FindAll returns storage rows in insertion order. A non-empty search matches
// base_name, brand, or defined_name_with_spec case-insensitively.
func (r *storageRepo) FindAll(ctx context.Context, search string) ([]model.Storage, error) {
	var storages []model.Storage
	query := r.db.WithContext(ctx).Model(&model.Storage{}).Preload("Dealer")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"base_name ILIKE ? OR brand ILIKE ? OR defined_name_with_spec ILIKE ?",
			like, like, like,
		)
	}
	err := query.Order("id").Find(&storages).Error
	return storages, err
}

func (r *storageRepo) FindByID(ctx context.Context, id uint) (*model.Storage, error) {
	var storage model.Storage
	if err := r.db.WithContext(ctx).Preload("Dealer").First(&storage, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &storage, nil
}

// FindByIDs resolves a set of storage ids inside the caller's transaction.
// Callers compare the result length against the id set to detect unknown ids.
func (r *storageRepo) FindByIDs(tx *gorm.DB, ids []uint) ([]model.Storage, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var storages []model.Storage
	err := tx.Where("id IN ?", ids).Find(&storages).Error
	return storages, err
}
