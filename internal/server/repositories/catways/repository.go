// Package catways persists docking-berth records.
package catways

import (
	"context"

	"portrussell/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Catway, error)
	GetByID(ctx context.Context, id string) (*models.Catway, error)
	Create(ctx context.Context, catway *models.Catway) (*models.Catway, error)
	Update(ctx context.Context, id string, catway *models.Catway) (*models.Catway, error)
	Delete(ctx context.Context, id string) error
}
