package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"portrussell/internal/common"
	"portrussell/internal/server/models"
)

func validReservation() *models.Reservation {
	return &models.Reservation{
		ClientName: "Jean Dupont",
		BoatName:   "Le Neptune",
		StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestReservationService_Create_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		catways:      &fakeCatwaysRepo{getOut: &models.Catway{ID: "c1"}},
		reservations: &fakeReservationsRepo{},
	}
	s := NewReservationService(db, rm)

	created, err := s.Create(context.Background(), "c1", validReservation())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.CatwayID != "c1" {
		t.Fatalf("catway id not set: %q", created.CatwayID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReservationService_Create_CatwayMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{
		catways:      &fakeCatwaysRepo{getErr: common.ErrorNotFound},
		reservations: &fakeReservationsRepo{},
	}
	s := NewReservationService(db, rm)

	_, err = s.Create(context.Background(), "ghost", validReservation())
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReservationService_Create_EndBeforeStart(t *testing.T) {
	s := NewReservationService(nil, &fakeRepoManager{})

	r := validReservation()
	r.StartDate, r.EndDate = r.EndDate, r.StartDate

	_, err := s.Create(context.Background(), "c1", r)
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("expected ErrorValidation, got %v", err)
	}
}

func TestReservationService_Create_SameDayAllowed(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		catways:      &fakeCatwaysRepo{getOut: &models.Catway{ID: "c1"}},
		reservations: &fakeReservationsRepo{},
	}
	s := NewReservationService(db, rm)

	r := validReservation()
	r.EndDate = r.StartDate

	if _, err := s.Create(context.Background(), "c1", r); err != nil {
		t.Fatalf("expected same-day reservation to be allowed, got %v", err)
	}
}

func TestReservationService_Update_MissingFields(t *testing.T) {
	s := NewReservationService(nil, &fakeRepoManager{})

	r := validReservation()
	r.ClientName = ""

	_, err := s.Update(context.Background(), "c1", "r1", r)
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("expected ErrorValidation, got %v", err)
	}
}
