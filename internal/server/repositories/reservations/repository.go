// Package reservations persists bookings. Every operation except ListAll is
// scoped to the owning catway, mirroring the nested route shape.
package reservations

import (
	"context"

	"portrussell/internal/server/models"
)

type Repository interface {
	ListAll(ctx context.Context) ([]*models.Reservation, error)
	ListByCatway(ctx context.Context, catwayID string) ([]*models.Reservation, error)
	Get(ctx context.Context, catwayID, id string) (*models.Reservation, error)
	Create(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error)
	Update(ctx context.Context, catwayID, id string, reservation *models.Reservation) (*models.Reservation, error)
	Delete(ctx context.Context, catwayID, id string) error
}
