package maid

import (
	"context"
	"fmt"
	"time"

	maidRepo "maidly/database/repository/maid"
	"maidly/models"
	"maidly/services/scheduling"
	"maidly/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// MaidService manages maid accounts and discovery.
type MaidService interface {
	Register(ctx context.Context, input models.MaidRegistrationInput) (*models.AuthResponse, error)
	Login(ctx context.Context, creds models.CredentialsInput) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, maidID string) (*models.Maid, error)
	UpdateProfile(ctx context.Context, maid *models.Maid) (*models.Maid, error)
	// ListActive returns active maids, optionally filtered by service
	// category.
	ListActive(ctx context.Context, categoryID string) ([]models.Maid, error)
}

// DefaultMaidService is the production implementation.
type DefaultMaidService struct {
	Repo maidRepo.MaidRepository
}

func (s *DefaultMaidService) Register(ctx context.Context, input models.MaidRegistrationInput) (*models.AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, scheduling.NewConflictError("email %s is already registered", input.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	maid := &models.Maid{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: string(hash),
		Bio:          input.Bio,
		CategoryIDs:  input.CategoryIDs,
		HourlyRate:   input.HourlyRate,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, maid); err != nil {
		return nil, err
	}
	return s.issueSession(ctx, maid)
}

func (s *DefaultMaidService) Login(ctx context.Context, creds models.CredentialsInput) (*models.AuthResponse, error) {
	maid, err := s.Repo.GetByEmail(ctx, creds.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch maid: %w", err)
	}
	if maid == nil {
		return nil, scheduling.NewValidationError("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(maid.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, scheduling.NewValidationError("invalid email or password")
	}
	return s.issueSession(ctx, maid)
}

func (s *DefaultMaidService) issueSession(ctx context.Context, maid *models.Maid) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(maid.ID, "maid", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	cacheKey := utils.AuthCachePrefix + utils.HashToken(token)
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, maid.ID, tokenTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to cache session: %w", err)
	}
	return &models.AuthResponse{Token: token, Role: "maid", ID: maid.ID, Name: maid.Name, Extra: maid}, nil
}

func (s *DefaultMaidService) GetProfile(ctx context.Context, maidID string) (*models.Maid, error) {
	maid, err := s.Repo.GetByID(ctx, maidID)
	if err != nil {
		return nil, err
	}
	if maid == nil {
		return nil, scheduling.NewNotFoundError("maid %s not found", maidID)
	}
	return maid, nil
}

func (s *DefaultMaidService) UpdateProfile(ctx context.Context, maid *models.Maid) (*models.Maid, error) {
	current, err := s.GetProfile(ctx, maid.ID)
	if err != nil {
		return nil, err
	}
	if maid.Name != "" {
		current.Name = maid.Name
	}
	if maid.PhoneNumber != "" {
		current.PhoneNumber = maid.PhoneNumber
	}
	if maid.Bio != "" {
		current.Bio = maid.Bio
	}
	if maid.CategoryIDs != nil {
		current.CategoryIDs = maid.CategoryIDs
	}
	if maid.HourlyRate > 0 {
		current.HourlyRate = maid.HourlyRate
	}
	current.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *DefaultMaidService) ListActive(ctx context.Context, categoryID string) ([]models.Maid, error) {
	return s.Repo.ListActive(ctx, categoryID)
}
