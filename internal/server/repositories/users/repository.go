// Package users persists identity records. Users are addressed by email,
// which is stored lower-cased and unique.
package users

import (
	"context"

	"portrussell/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, email string, user *models.User) (*models.User, error)
	UpdatePhotoKey(ctx context.Context, email, photoKey string) error
	Delete(ctx context.Context, email string) error
}
