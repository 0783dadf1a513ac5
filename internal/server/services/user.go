// Package services contains server-side business logic. This file implements
// UserService: registration, credential login issuing stateless session
// tokens, and session lookup for an authenticated principal.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	"github.com/dmitrijs2005/eventplanner/internal/dbx"
	"github.com/dmitrijs2005/eventplanner/internal/server/auth"
	"github.com/dmitrijs2005/eventplanner/internal/server/models"
	"github.com/dmitrijs2005/eventplanner/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Session is the result of a successful login.
type Session struct {
	Token  string
	UserID string
	Email  string
}

// UserService provides authentication-related operations:
// - CreateUser: register a new credential
// - Login: verify credentials and issue a session token
// - Session / Logout: operations on an already authenticated principal
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	codec       *auth.TokenCodec
	now         func() time.Time

	// dummyHash is verified against when the email is unknown so that both
	// failure paths cost one hash comparison.
	dummyHash string
}

// NewUserService constructs a UserService. It hashes a random password once
// to obtain the dummy hash used by Login.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher, codec *auth.TokenCodec) (*UserService, error) {
	dummy, err := hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy hash: %w", err)
	}

	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		codec:       codec,
		now:         time.Now,
		dummyHash:   dummy,
	}, nil
}

// CreateUser registers email with the given password. An already registered
// email yields common.ErrUserExists; the store's unique index covers the race
// between the lookup and the insert.
func (s *UserService) CreateUser(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if err := validateRegistration(email, password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	var created *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetUserByEmail(ctx, email)
		if err == nil {
			return common.ErrUserExists
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error looking up user: %w", err)
		}

		created, err = repo.Create(ctx, &models.User{
			ID:           uuid.NewString(),
			Email:        email,
			PasswordHash: hash,
		})
		if err != nil {
			if errors.Is(err, common.ErrUserExists) {
				return err
			}
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Login checks the credentials and issues a session token. Unknown email and
// wrong password both return common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if err := validateLogin(email, password); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID, user.Email, s.now())
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &Session{Token: token, UserID: user.ID, Email: user.Email}, nil
}

// Session returns the user behind p. A token whose user has since
// disappeared is treated as unauthenticated.
func (s *UserService) Session(ctx context.Context, p auth.Principal) (*models.User, error) {
	if p.UserID == "" {
		return nil, common.ErrNotAuthenticated
	}

	user, err := s.repomanager.Users(s.db).GetUserByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	return user, nil
}

// Logout has nothing to invalidate; tokens stay valid until they expire and
// the client is expected to drop its copy.
func (s *UserService) Logout(ctx context.Context, p auth.Principal) error {
	if p.UserID == "" {
		return common.ErrNotAuthenticated
	}
	return nil
}

// maxPasswordBytes is the longest input bcrypt will hash.
const maxPasswordBytes = 72

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(email, password string) error {
	var v common.ValidationError
	if email == "" {
		v.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		v.Add("email", "Email is not valid")
	}
	if password == "" {
		v.Add("password", "Password is required")
	} else if len(password) > maxPasswordBytes {
		v.Add("password", "Password must not exceed 72 bytes")
	}
	return v.OrNil()
}

func validateLogin(email, password string) error {
	var v common.ValidationError
	if email == "" {
		v.Add("email", "Email is required")
	}
	if password == "" {
		v.Add("password", "Password is required")
	}
	return v.OrNil()
}
