package services

import (
	"context"
	"database/sql"

	"portrussell/internal/common"
	"portrussell/internal/dbx"
	"portrussell/internal/server/models"
	"portrussell/internal/server/repositories/repomanager"
)

// ReservationService manages bookings nested under catways. Writes that
// depend on the owning catway run inside a transaction so the catway cannot
// disappear between the existence check and the write.
type ReservationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewReservationService(db *sql.DB, m repomanager.RepositoryManager) *ReservationService {
	return &ReservationService{db: db, repomanager: m}
}

func (s *ReservationService) ListAll(ctx context.Context) ([]*models.Reservation, error) {
	return s.repomanager.Reservations(s.db).ListAll(ctx)
}

func (s *ReservationService) ListByCatway(ctx context.Context, catwayID string) ([]*models.Reservation, error) {
	return s.repomanager.Reservations(s.db).ListByCatway(ctx, catwayID)
}

func (s *ReservationService) Get(ctx context.Context, catwayID, id string) (*models.Reservation, error) {
	return s.repomanager.Reservations(s.db).Get(ctx, catwayID, id)
}

func (s *ReservationService) Create(ctx context.Context, catwayID string, reservation *models.Reservation) (*models.Reservation, error) {
	if err := validateReservation(reservation); err != nil {
		return nil, err
	}

	reservation.CatwayID = catwayID

	var created *models.Reservation
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Catways(tx).GetByID(ctx, catwayID); err != nil {
			return err
		}
		var createErr error
		created, createErr = s.repomanager.Reservations(tx).Create(ctx, reservation)
		return createErr
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ReservationService) Update(ctx context.Context, catwayID, id string, reservation *models.Reservation) (*models.Reservation, error) {
	if err := validateReservation(reservation); err != nil {
		return nil, err
	}
	return s.repomanager.Reservations(s.db).Update(ctx, catwayID, id, reservation)
}

func (s *ReservationService) Delete(ctx context.Context, catwayID, id string) error {
	return s.repomanager.Reservations(s.db).Delete(ctx, catwayID, id)
}

func validateReservation(r *models.Reservation) error {
	if r.ClientName == "" || r.BoatName == "" {
		return common.ErrorValidation
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return common.ErrorValidation
	}
	if r.EndDate.Before(r.StartDate) {
		return common.ErrorValidation
	}
	return nil
}
