package service

import (
	"context"
	"fmt"
	"strings"

	"go-stockroom/internal/apperr"
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *ProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint, req *ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
}

// ProductRequest is the declared input schema for product create/update.
// RawMaterials carries the storage ids ticked on the form.
type ProductRequest struct {
	ProductName        string   `json:"product_name" form:"product_name" validate:"required"`
	ProductDescription string   `json:"product_description" form:"product_description"`
	SectionName        string   `json:"section_name" form:"section_name"`
	Qty                string   `json:"qty" form:"qty"`
	Stock              string   `json:"stock" form:"stock"`
	RawMaterials       []string `json:"raw_materials" form:"raw_materials"`
}

type productService struct {
	productRepo repository.ProductRepository
	storageRepo repository.StorageRepository
	db          *gorm.DB
}

func NewProductService(productRepo repository.ProductRepository, storageRepo repository.StorageRepository, db *gorm.DB) ProductService {
	return &productService{
		productRepo: productRepo,
		storageRepo: storageRepo,
		db:          db,
	}
}

func (s *productService) parse(req *ProductRequest) (product model.Product, materialIDs []uint, err error) {
	if err = validateRequest(req); err != nil {
		return product, nil, err
	}

	qty, err := parseIntField("qty", req.Qty)
	if err != nil {
		return product, nil, err
	}
	stock, err := parseIntField("stock", req.Stock)
	if err != nil {
		return product, nil, err
	}

	materialIDs, err = parseMaterialIDs(req.RawMaterials)
	if err != nil {
		return product, nil, err
	}

	product = model.Product{
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		SectionName:        req.SectionName,
		Qty:                qty,
		Stock:              stock,
	}
	return product, materialIDs, nil
}

// parseMaterialIDs parses and deduplicates the submitted storage ids,
// preserving first-seen order.
func parseMaterialIDs(raw []string) ([]uint, error) {
	seen := make(map[uint]bool, len(raw))
	ids := make([]uint, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		id, err := parseIDField("raw_materials", r)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

// resolveMaterials loads every referenced storage row inside the caller's
// transaction. If any id is unknown the whole operation fails; ids are never
// silently dropped.
func (s *productService) resolveMaterials(tx *gorm.DB, ids []uint) ([]model.Storage, error) {
	storages, err := s.storageRepo.FindByIDs(tx, ids)
	if err != nil {
		return nil, err
	}
	if len(storages) == len(ids) {
		return storages, nil
	}

	found := make(map[uint]bool, len(storages))
	for _, st := range storages {
		found[st.ID] = true
	}
	var missing []string
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, fmt.Sprint(id))
		}
	}
	return nil, apperr.NewValidation("raw_materials",
		"unknown storage ids: "+strings.Join(missing, ", "))
}

func (s *productService) CreateProduct(ctx context.Context, req *ProductRequest) (*model.Product, error) {
	product, materialIDs, err := s.parse(req)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		materials, err := s.resolveMaterials(tx, materialIDs)
		if err != nil {
			return err
		}
		product.RawMaterialsUsed = materials
		return tx.Create(&product).Error
	})
	if err != nil {
		return nil, apperr.Store("create product", err)
	}
	return &product, nil
}

// UpdateProduct is a full replace: every field and the whole raw-material
// association set are overwritten in one transaction.
func (s *productService) UpdateProduct(ctx context.Context, id uint, req *ProductRequest) (*model.Product, error) {
	fields, materialIDs, err := s.parse(req)
	if err != nil {
		return nil, err
	}

	var updated *model.Product
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&existing, "id = ?", id).Error; err != nil {
			return apperr.ErrNotFound
		}

		materials, err := s.resolveMaterials(tx, materialIDs)
		if err != nil {
			return err
		}

		existing.ProductName = fields.ProductName
		existing.ProductDescription = fields.ProductDescription
		existing.SectionName = fields.SectionName
		existing.Qty = fields.Qty
		existing.Stock = fields.Stock

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		if err := tx.Model(&existing).Association("RawMaterialsUsed").Replace(&materials); err != nil {
			return err
		}
		existing.RawMaterialsUsed = materials
		updated = &existing
		return nil
	})
	if err != nil {
		return nil, apperr.Store("update product", err)
	}
	return updated, nil
}

// DeleteProduct removes the product and its junction rows. The referenced
// storage rows are never deleted.
func (s *productService) DeleteProduct(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, "id = ?", id).Error; err != nil {
			return apperr.ErrNotFound
		}

		if err := tx.Model(&product).Association("RawMaterialsUsed").Clear(); err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	return apperr.Store("delete product", err)
}

func (s *productService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Store("list products", err)
	}
	return products, nil
}
