package repository

import (
	"context"
	"errors"

	"go-stockroom/internal/apperr"
	"go-stockroom/internal/model"

	"gorm.io/gorm"
)

type DealerRepository interface {
	Create(ctx context.Context, dealer *model.Dealer) error
	FindAll(ctx context.Context, search string) ([]model.Dealer, error)
	FindByID(ctx context.Context, id uint) (*model.Dealer, error)
	Exists(ctx context.Context, id uint) (bool, error)
	CountStorage(tx *gorm.DB, dealerID uint) (int64, error)
}

type dealerRepo struct {
	db *gorm.DB
}

func NewDealerRepo(db *gorm.DB) DealerRepository {
	return &dealerRepo{db}
}

func (r *dealerRepo) Create(ctx context.Context, dealer *model.Dealer) error {
	return r.db.WithContext(ctx).Create(dealer).Error
}

// FindAll returns dealers in insertion order, optionally filtered by a
// case-insensitive substring match on name.
func (r *dealerRepo) FindAll(ctx context.Context, search string) ([]model.Dealer, error) {
	var dealers []model.Dealer
	query := r.db.WithContext(ctx).Model(&model.Dealer{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	err := query.Order("id").Find(&dealers).Error
	return dealers, err
}

func (r *dealerRepo) FindByID(ctx context.Context, id uint) (*model.Dealer, error) {
	var dealer model.Dealer
	if err := r.db.WithContext(ctx).First(&dealer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &dealer, nil
}

func (r *dealerRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Dealer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CountStorage counts the storage rows owned by a dealer. Takes the caller's
// transaction so the dealer-delete check and the delete see the same state.
func (r *dealerRepo) CountStorage(tx *gorm.DB, dealerID uint) (int64, error) {
	var count int64
	err := tx.Model(&model.Storage{}).Where("dealer_id = ?", dealerID).Count(&count).Error
	return count, err
}
