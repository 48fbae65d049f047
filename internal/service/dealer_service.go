package service

import (
	"context"
	"fmt"

	"go-stockroom/internal/apperr"
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DealerService interface {
	CreateDealer(ctx context.Context, req *DealerRequest) (*model.Dealer, error)
	UpdateDealer(ctx context.Context, id uint, req *DealerRequest) (*model.Dealer, error)
	DeleteDealer(ctx context.Context, id uint) error
	GetDealer(ctx context.Context, id uint) (*model.Dealer, error)
	ListDealers(ctx context.Context, search string) ([]model.Dealer, error)
}

// DealerRequest is the declared input schema for dealer create/update. Every
// editable field is present: update is a full replace of the row.
type DealerRequest struct {
	Name      string `json:"name" form:"name" validate:"required"`
	Address   string `json:"address" form:"address"`
	State     string `json:"state" form:"state"`
	Country   string `json:"country" form:"country"`
	Pincode   string `json:"pincode" form:"pincode"`
	Telephone string `json:"telephone" form:"telephone"`
	Mobile    string `json:"mobile" form:"mobile"`
	Email     string `json:"email" form:"email" validate:"omitempty,email"`
	GSTNo     string `json:"gst_no" form:"gst_no"`
	BankName  string `json:"bank_name" form:"bank_name"`
	AccountNo string `json:"account_no" form:"account_no"`
	IFSCCode  string `json:"ifsc_code" form:"ifsc_code"`
}

type dealerService struct {
	dealerRepo repository.DealerRepository
	db         *gorm.DB
}

func NewDealerService(dealerRepo repository.DealerRepository, db *gorm.DB) DealerService {
	return &dealerService{dealerRepo: dealerRepo, db: db}
}

func (s *dealerService) CreateDealer(ctx context.Context, req *DealerRequest) (*model.Dealer, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	dealer := &model.Dealer{}
	applyDealerRequest(dealer, req)

	if err := s.dealerRepo.Create(ctx, dealer); err != nil {
		return nil, apperr.Store("create dealer", err)
	}
	return dealer, nil
}

func (s *dealerService) UpdateDealer(ctx context.Context, id uint, req *DealerRequest) (*model.Dealer, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var updated *model.Dealer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Dealer
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&existing, "id = ?", id).Error; err != nil {
			return apperr.ErrNotFound
		}

		applyDealerRequest(&existing, req)

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		updated = &existing
		return nil
	})
	if err != nil {
		return nil, apperr.Store("update dealer", err)
	}
	return updated, nil
}

// DeleteDealer refuses to delete a dealer that still owns storage rows. The
// caller must reassign or remove the materials first.
func (s *dealerService) DeleteDealer(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dealer model.Dealer
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&dealer, "id = ?", id).Error; err != nil {
			return apperr.ErrNotFound
		}

		count, err := s.dealerRepo.CountStorage(tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("dealer still owns %d storage item(s): %w", count, apperr.ErrConflict)
		}

		return tx.Delete(&dealer).Error
	})
	return apperr.Store("delete dealer", err)
}

func (s *dealerService) GetDealer(ctx context.Context, id uint) (*model.Dealer, error) {
	return s.dealerRepo.FindByID(ctx, id)
}

func (s *dealerService) ListDealers(ctx context.Context, search string) ([]model.Dealer, error) {
	dealers, err := s.dealerRepo.FindAll(ctx, search)
	if err != nil {
		return nil, apperr.Store("list dealers", err)
	}
	return dealers, nil
}

func applyDealerRequest(dealer *model.Dealer, req *DealerRequest) {
	dealer.Name = req.Name
	dealer.Address = req.Address
	dealer.State = req.State
	dealer.Country = req.Country
	dealer.Pincode = req.Pincode
	dealer.Telephone = req.Telephone
	dealer.Mobile = req.Mobile
	dealer.Email = req.Email
	dealer.GSTNo = req.GSTNo
	dealer.BankName = req.BankName
	dealer.AccountNo = req.AccountNo
	dealer.IFSCCode = req.IFSCCode
}
