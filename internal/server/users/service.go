package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"custdesk/internal/common"
	"custdesk/internal/server/auth"
	"custdesk/internal/server/config"
)

type Service struct {
	repo                        Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates an account with a bcrypt-hashed password. A duplicate
// employee id surfaces as common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, employeeID, employeeName, password string) (*User, error) {

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		ID:           uuid.NewString(),
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues an access token. Unknown employee ids
// and wrong passwords are indistinguishable to the caller: both return
// common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, employeeID, password string) (string, *User, error) {

	user, err := s.repo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}
