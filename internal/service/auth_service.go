package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrOperatorNotFound   = errors.New("operator not found")
	ErrOperatorInactive   = errors.New("operator account is inactive")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	ResetPassword(email, oldPassword, newPassword string) error
	ValidateToken(tokenString string) (*model.OperatorResponse, error)
}

type LoginResponse struct {
	Token    string                 `json:"token"`
	Operator model.OperatorResponse `json:"operator"`
}

type authService struct {
	operatorRepo repository.OperatorRepository
}

func NewAuthService(operatorRepo repository.OperatorRepository) AuthService {
	return &authService{operatorRepo: operatorRepo}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	operator, err := s.operatorRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !operator.IsActive {
		return nil, ErrOperatorInactive
	}

	if !operator.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// Single session: a fresh token version invalidates earlier tokens.
	newTokenVersion := uuid.New().String()
	now := time.Now()
	operator.TokenVersion = newTokenVersion
	operator.LastSeenAt = &now
	if err := s.operatorRepo.Update(operator); err != nil {
		return nil, errors.New("failed to update session")
	}

	token, err := jwt.GenerateToken(operator.ID, operator.Email, operator.FullName, newTokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:    token,
		Operator: operator.ToResponse(),
	}, nil
}

func (s *authService) ResetPassword(email, oldPassword, newPassword string) error {
	operator, err := s.operatorRepo.FindByEmail(email)
	if err != nil {
		return ErrOperatorNotFound
	}

	if !operator.CheckPassword(oldPassword) {
		return ErrWrongPassword
	}

	if err := operator.SetPassword(newPassword); err != nil {
		return errors.New("failed to hash new password")
	}

	return s.operatorRepo.Update(operator)
}

func (s *authService) ValidateToken(tokenString string) (*model.OperatorResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	operator, err := s.operatorRepo.FindByID(claims.OperatorID)
	if err != nil {
		return nil, ErrOperatorNotFound
	}

	if !operator.IsActive {
		return nil, ErrOperatorInactive
	}

	// Strict session check against the DB
	if operator.TokenVersion != claims.TokenVersion {
		return nil, errors.New("session expired (logged in on another device)")
	}

	resp := operator.ToResponse()
	return &resp, nil
}
