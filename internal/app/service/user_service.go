package service

import (
	"context"
	"errors"
	"fmt"
	"health_data_api/internal/app/validation"
	"health_data_api/internal/common"
	"health_data_api/internal/common/security"
	"health_data_api/internal/domain/model"
	"health_data_api/internal/domain/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo  repository.UserRepository
	validator *validation.Validator
	logger    *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, v *validation.Validator, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, validator: v, logger: logger}
}

// CredentialsRequest uses pointers so that a missing key can be told apart
// from an empty string. Only presence is checked.
type CredentialsRequest struct {
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

type CreateUserRequest struct {
	Name        string              `json:"name" validate:"required"`
	Role        string              `json:"role" validate:"oneof=customer provider"`
	State       string              `json:"state"`
	DOB         model.Timestamp     `json:"dob" validate:"required"`
	Credentials *CredentialsRequest `json:"credentials" validate:"required"`
}

// NewCredentials is the only way user input becomes model.Credentials: it
// checks both keys are present and replaces the password with its hash.
func NewCredentials(req *CredentialsRequest) (model.Credentials, error) {
	if req == nil || req.Username == nil || req.Password == nil {
		return model.Credentials{}, fmt.Errorf("%w: credentials must contain username and password", common.ErrValidation)
	}

	hashed, err := security.HashPassword(*req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return model.Credentials{}, fmt.Errorf("%w: credentials.password: %w", common.ErrValidation, err)
		}
		return model.Credentials{}, fmt.Errorf("failed to hash password: %w", err)
	}
	return model.Credentials{Username: *req.Username, Password: hashed}, nil
}

func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	creds, err := NewCredentials(req.Credentials)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Name:        req.Name,
		Role:        req.Role,
		State:       req.State,
		DOB:         model.TruncateToStore(req.DOB.Time),
		Credentials: creds,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		s.logger.Error("Error inserting user", zap.String("username", creds.Username), zap.Error(err))
		return nil, fmt.Errorf("error inserting user: %w", err)
	}
	user.UserID = id
	return &user, nil
}

// GetUser returns common.ErrInvalidID for a malformed id and
// common.ErrNotFound when no user has it.
func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}
