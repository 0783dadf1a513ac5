// Package users stores user credentials.
package users

import (
	"context"

	"github.com/dmitrijs2005/eventplanner/internal/server/models"
)

// Repository is the credential store. Emails are compared case-insensitively.
// Lookups that match nothing return common.ErrorNotFound; Create returns
// common.ErrUserExists when the email is already taken.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
