// Package services contains server-side business logic. This file implements
// UserService: registration, login, and the refresh-session lifecycle backing
// the token rotation flow.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/server/auth"
	"github.com/dmitrijs2005/passvault/internal/server/config"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides authentication-related operations:
//   - Register: create accounts (no tokens issued; registration and login
//     are decoupled)
//   - Login: verify credentials, mint tokens, replace the session row
//   - Refresh: rotate the token pair for an already-verified user
//   - ValidateRefreshSession: the store-side check behind the refresh gate
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register hashes the password and persists a new user. The email is
// case-normalized; a duplicate yields common.ErrDuplicateEmail.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        normalizeEmail(email),
		Name:         name,
		PasswordHash: hash,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and, on success, returns a fresh TokenPair
// plus the user's public profile. Unknown email and wrong password both
// surface as common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*TokenPair, *models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrInvalidCredentials
		}
		return nil, nil, common.ErrorInternal
	}

	ok, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}
	if !ok {
		return nil, nil, common.ErrInvalidCredentials
	}

	pair, err := s.generateTokenPair(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// Refresh mints a new token pair for a user whose presented refresh token
// already passed the verification gate. The session upsert invalidates the
// token that was just used.
func (s *UserService) Refresh(ctx context.Context, userID string) (*TokenPair, error) {
	return s.generateTokenPair(ctx, userID)
}

// ValidateRefreshSession checks that the presented refresh token is the
// current one stored for the user. A missing row means the token was
// replaced by a later login or refresh; an expired row is treated the same
// way. Signature validity alone is never sufficient.
func (s *UserService) ValidateRefreshSession(ctx context.Context, userID, refreshToken string) error {
	repo := s.repomanager.Sessions(s.db)

	session, err := repo.FindByUserAndToken(ctx, userID, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrSessionMismatch
		}
		return common.ErrorInternal
	}
	if session.Expires.Before(time.Now()) {
		return common.ErrSessionMismatch
	}
	return nil
}

// Logout removes the user's session row, making every previously issued
// refresh token unusable.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	if err := s.repomanager.Sessions(s.db).DeleteByUser(ctx, userID); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// GetUser returns the public profile for userID.
func (s *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

// --- helpers below ---

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// generateTokenPair signs both tokens and replaces the session row inside a
// transaction, so a pair is never returned without its session being stored.
func (s *UserService) generateTokenPair(ctx context.Context, userID string) (*TokenPair, error) {
	access, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := auth.GenerateToken(userID, s.jwtSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Sessions(tx).Upsert(ctx, userID, refresh, s.refreshTokenValidityDuration)
	}); err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
