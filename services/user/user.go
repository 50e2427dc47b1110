package user

import (
	"context"
	"fmt"
	"time"

	userRepo "maidly/database/repository/user"
	"maidly/models"
	"maidly/services/scheduling"
	"maidly/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long issued sessions stay valid.
const tokenTTL = 72 * time.Hour

// UserService manages customer accounts and sessions.
type UserService interface {
	Register(ctx context.Context, input models.UserRegistrationInput) (*models.AuthResponse, error)
	Login(ctx context.Context, creds models.CredentialsInput) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) (*models.User, error)
	DeleteAccount(ctx context.Context, userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(ctx context.Context, input models.UserRegistrationInput) (*models.AuthResponse, error) {
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
	user := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: string(hash),
		Address:      input.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.issueSession(ctx, user)
}

func (s *DefaultUserService) Login(ctx context.Context, creds models.CredentialsInput) (*models.AuthResponse, error) {
	user, err := s.Repo.GetByEmail(ctx, creds.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, scheduling.NewValidationError("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, scheduling.NewValidationError("invalid email or password")
	}
	return s.issueSession(ctx, user)
}

// issueSession mints a JWT and caches its hash so the auth middleware can
// verify revocation without hitting Mongo.
func (s *DefaultUserService) issueSession(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, "user", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	cacheKey := utils.AuthCachePrefix + utils.HashToken(token)
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, user.ID, tokenTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to cache session: %w", err)
	}
	return &models.AuthResponse{Token: token, Role: "user", ID: user.ID, Name: user.Name, Extra: user}, nil
}

func (s *DefaultUserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, scheduling.NewNotFoundError("user %s not found", userID)
	}
	return user, nil
}

func (s *DefaultUserService) UpdateProfile(ctx context.Context, user *models.User) (*models.User, error) {
	current, err := s.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if user.Name != "" {
		current.Name = user.Name
	}
	if user.PhoneNumber != "" {
		current.PhoneNumber = user.PhoneNumber
	}
	if user.Address != "" {
		current.Address = user.Address
	}
	current.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *DefaultUserService) DeleteAccount(ctx context.Context, userID string) error {
	if _, err := s.GetProfile(ctx, userID); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, userID)
}
