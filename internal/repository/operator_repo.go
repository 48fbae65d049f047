package repository

import (
	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OperatorRepository interface {
	FindByEmail(email string) (*model.Operator, error)
	FindByID(id uuid.UUID) (*model.Operator, error)
	Create(operator *model.Operator) error
	Update(operator *model.Operator) error
	UpdatePassword(operatorID uuid.UUID, hashedPassword string) error
	UpdateTokenVersion(operatorID uuid.UUID, version string) error
	UpdateLastSeen(operatorID uuid.UUID) error
}

type operatorRepo struct {
	db *gorm.DB
}

func NewOperatorRepo(db *gorm.DB) OperatorRepository {
	return &operatorRepo{db}
}

func (r *operatorRepo) FindByEmail(email string) (*model.Operator, error) {
	var operator model.Operator
	if err := r.db.Where("email = ?", email).First(&operator).Error; err != nil {
		return nil, err
	}
	return &operator, nil
}

func (r *operatorRepo) FindByID(id uuid.UUID) (*model.Operator, error) {
	var operator model.Operator
	if err := r.db.First(&operator, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &operator, nil
}

func (r *operatorRepo) Create(operator *model.Operator) error {
	return r.db.Create(operator).Error
}

func (r *operatorRepo) Update(operator *model.Operator) error {
	return r.db.Save(operator).Error
}

func (r *operatorRepo) UpdatePassword(operatorID uuid.UUID, hashedPassword string) error {
	return r.db.Model(&model.Operator{}).Where("id = ?", operatorID).Update("password", hashedPassword).Error
}

func (r *operatorRepo) UpdateTokenVersion(operatorID uuid.UUID, version string) error {
	return r.db.Model(&model.Operator{}).Where("id = ?", operatorID).Update("token_version", version).Error
}

func (r *operatorRepo) UpdateLastSeen(operatorID uuid.UUID) error {
	return r.db.Model(&model.Operator{}).Where("id = ?", operatorID).Update("last_seen_at", gorm.Expr("NOW()")).Error
}
