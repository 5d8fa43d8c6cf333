// Package services contains server-side business logic on top of the
// repositories: credential checks and token issuance, catway and reservation
// management, and photo storage.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"portrussell/internal/common"
	"portrussell/internal/server/auth"
	"portrussell/internal/server/config"
	"portrussell/internal/server/models"
	"portrussell/internal/server/repositories/repomanager"
)

// UserService handles identity management and the login flow: credential
// verification and minting of signed auth tokens.
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// UserUpdate carries the mutable user fields. Empty fields keep their
// current values; a non-empty Password is re-hashed before persistence.
type UserUpdate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Login verifies the email/password pair and returns a signed token. Unknown
// email and wrong password are indistinguishable to the caller: both yield
// common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Register creates a new user. The password is hashed before it reaches the
// repository; the plaintext is never persisted.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        strings.ToLower(email),
		PasswordHash: digest,
	}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

// Get returns the user with the given email.
func (s *UserService) Get(ctx context.Context, email string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByEmail(ctx, strings.ToLower(email))
}

// Update applies the given changes to the user addressed by email.
func (s *UserService) Update(ctx context.Context, email string, upd UserUpdate) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	current, err := repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	if upd.Username != "" {
		current.Username = upd.Username
	}
	if upd.Email != "" {
		current.Email = strings.ToLower(upd.Email)
	}
	if upd.Password != "" {
		digest, err := auth.HashPassword(upd.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		current.PasswordHash = digest
	}

	return repo.Update(ctx, strings.ToLower(email), current)
}

// Delete removes the user with the given email.
func (s *UserService) Delete(ctx context.Context, email string) error {
	return s.repomanager.Users(s.db).Delete(ctx, strings.ToLower(email))
}
