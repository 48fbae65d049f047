package service

import (
	"context"

	"go-stockroom/internal/apperr"
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StorageService interface {
	CreateStorage(ctx context.Context, req *StorageRequest) (*model.Storage, error)
	UpdateStorage(ctx context.Context, id uint, req *StorageRequest) (*model.Storage, error)
	DeleteStorage(ctx context.Context, id uint) error
	GetStorage(ctx context.Context, id uint) (*model.Storage, error)
	ListStorage(ctx context.Context, search string) ([]model.Storage, error)
}

// StorageRequest is the declared input schema for storage create/update.
// Numeric fields are submitted as form strings and parsed explicitly.
type StorageRequest struct {
	BaseName            string `json:"base_name" form:"base_name" validate:"required"`
	DefinedNameWithSpec string `json:"defined_name_with_spec" form:"defined_name_with_spec"`
	Brand               string `json:"brand" form:"brand"`
	HSNCode             string `json:"hsn_code" form:"hsn_code"`
	DealerID            string `json:"dealer_id" form:"dealer_id" validate:"required"`
	Tax                 string `json:"tax" form:"tax" validate:"required"`
	CurrentStock        string `json:"current_stock" form:"current_stock" validate:"required"`
	Units               string `json:"units" form:"units" validate:"required,oneof=Nos Kgs mm cm liters meters pieces packs"`
}

type storageService struct {
	storageRepo repository.StorageRepository
	dealerRepo  repository.DealerRepository
	db          *gorm.DB
}

func NewStorageService(storageRepo repository.StorageRepository, dealerRepo repository.DealerRepository, db *gorm.DB) StorageService {
	return &storageService{
		storageRepo: storageRepo,
		dealerRepo:  dealerRepo,
		db:          db,
	}
}

// parse turns the raw request into typed column values without touching the
// database. FK existence is checked inside the operation's transaction.
func (s *storageService) parse(req *StorageRequest) (dealerID uint, storage model.Storage, err error) {
	if err = validateRequest(req); err != nil {
		return 0, storage, err
	}

	dealerID, err = parseIDField("dealer_id", req.DealerID)
	if err != nil {
		return 0, storage, err
	}
	tax, err := parseDecimalField("tax", req.Tax)
	if err != nil {
		return 0, storage, err
	}
	stock, err := parseDecimalField("current_stock", req.CurrentStock)
	if err != nil {
		return 0, storage, err
	}

	storage = model.Storage{
		BaseName:            req.BaseName,
		DefinedNameWithSpec: req.DefinedNameWithSpec,
		Brand:               req.Brand,
		HSNCode:             req.HSNCode,
		DealerID:            dealerID,
		Tax:                 tax,
		CurrentStock:        stock,
		Units:               req.Units,
	}
	return dealerID, storage, nil
}

func dealerExists(tx *gorm.DB, dealerID uint) (bool, error) {
	var count int64
	err := tx.Model(&model.Dealer{}).Where("id = ?", dealerID).Count(&count).Error
	return count > 0, err
}

func (s *storageService) CreateStorage(ctx context.Context, req *StorageRequest) (*model.Storage, error) {
	dealerID, storage, err := s.parse(req)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := dealerExists(tx, dealerID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NewValidation("dealer_id", "references a dealer that does not exist")
		}
		return tx.Create(&storage).Error
	})
	if err != nil {
		return nil, apperr.Store("create storage", err)
	}
	return &storage, nil
}

func (s *storageService) UpdateStorage(ctx context.Context, id uint, req *StorageRequest) (*model.Storage, error) {
	dealerID, fields, err := s.parse(req)
	if err != nil {
		return nil, err
	}

	var updated *model.Storage
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Storage
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&existing, "id = ?", id).Error; err != nil {
			return apperr.ErrNotFound
		}

		ok, err := dealerExists(tx, dealerID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NewValidation("dealer_id", "references a dealer that does not exist")
		}

		existing.BaseName = fields.BaseName
		existing.DefinedNameWithSpec = fields.DefinedNameWithSpec
		existing.Brand = fields.Brand
		existing.HSNCode = fields.HSNCode
		existing.DealerID = fields.DealerID
		existing.Tax = fields.Tax
		existing.CurrentStock = fields.CurrentStock
		existing.Units = fields.Units

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		updated = &existing
		return nil
	})
	if err != nil {
		return nil, apperr.Store("update storage", err)
	}
	return updated, nil
}

// DeleteStorage removes the row together with its product_material junction
// rows. Products that used the material survive with a smaller set.
func (s *storageService) DeleteStorage(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var storage model.Storage
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&storage, "id = ?", id).Error; err != nil {
			return apperr.ErrNotFound
		}

		if err := tx.Model(&storage).Association("Products").Clear(); err != nil {
			return err
		}
		return tx.Delete(&storage).Error
	})
	return apperr.Store("delete storage", err)
}

func (s *storageService) GetStorage(ctx context.Context, id uint) (*model.Storage, error) {
	return s.storageRepo.FindByID(ctx, id)
}

func (s *storageService) ListStorage(ctx context.Context, search string) ([]model.Storage, error) {
	storages, err := s.storageRepo.FindAll(ctx, search)
	if err != nil {
		return nil, apperr.Store("list storage", err)
	}
	return storages, nil
}
