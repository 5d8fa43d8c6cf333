package services

import (
	"context"
	"database/sql"

	"portrussell/internal/common"
	"portrussell/internal/server/models"
	"portrussell/internal/server/repositories/repomanager"
)

// CatwayService manages docking berths.
type CatwayService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCatwayService(db *sql.DB, m repomanager.RepositoryManager) *CatwayService {
	return &CatwayService{db: db, repomanager: m}
}

func (s *CatwayService) List(ctx context.Context) ([]*models.Catway, error) {
	return s.repomanager.Catways(s.db).List(ctx)
}

func (s *CatwayService) Get(ctx context.Context, id string) (*models.Catway, error) {
	return s.repomanager.Catways(s.db).GetByID(ctx, id)
}

func (s *CatwayService) Create(ctx context.Context, catway *models.Catway) (*models.Catway, error) {
	if err := validateCatway(catway); err != nil {
		return nil, err
	}
	return s.repomanager.Catways(s.db).Create(ctx, catway)
}

func (s *CatwayService) Update(ctx context.Context, id string, catway *models.Catway) (*models.Catway, error) {
	if err := validateCatway(catway); err != nil {
		return nil, err
	}
	return s.repomanager.Catways(s.db).Update(ctx, id, catway)
}

func (s *CatwayService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Catways(s.db).Delete(ctx, id)
}

func validateCatway(c *models.Catway) error {
	if c.CatwayNumber <= 0 {
		return common.ErrorValidation
	}
	if !models.ValidCatwayType(c.CatwayType) {
		return common.ErrorValidation
	}
	if c.CatwayState == "" {
		return common.ErrorValidation
	}
	return nil
}
