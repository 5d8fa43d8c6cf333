package reservations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"portrussell/internal/common"
	"portrussell/internal/dbx"
	"portrussell/internal/server/models"
)

const columns = "id, catway_id, client_name, boat_name, start_date, end_date, created_at, updated_at"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanReservation(row interface{ Scan(dest ...any) error }) (*models.Reservation, error) {
	r := &models.Reservation{}
	err := row.Scan(&r.ID, &r.CatwayID, &r.ClientName, &r.BoatName,
		&r.StartDate, &r.EndDate, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Reservation, error) {
	query := `SELECT ` + columns + ` FROM reservations ORDER BY start_date`
	return r.queryMany(ctx, query)
}

func (r *PostgresRepository) ListByCatway(ctx context.Context, catwayID string) ([]*models.Reservation, error) {
	query := `SELECT ` + columns + ` FROM reservations WHERE catway_id = $1 ORDER BY start_date`
	return r.queryMany(ctx, query, catwayID)
}

func (r *PostgresRepository) queryMany(ctx context.Context, query string, args ...any) ([]*models.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, catwayID, id string) (*models.Reservation, error) {
	query := `SELECT ` + columns + ` FROM reservations WHERE id = $1 AND catway_id = $2`

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, id, catwayID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return res, nil
}

func (r *PostgresRepository) Create(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	query :=
		`INSERT INTO reservations (catway_id, client_name, boat_name, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		reservation.CatwayID, reservation.ClientName, reservation.BoatName,
		reservation.StartDate, reservation.EndDate).
		Scan(&reservation.ID, &reservation.CreatedAt, &reservation.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return reservation, nil
}

func (r *PostgresRepository) Update(ctx context.Context, catwayID, id string, reservation *models.Reservation) (*models.Reservation, error) {
	query :=
		`UPDATE reservations
		 SET client_name = $3, boat_name = $4, start_date = $5, end_date = $6, updated_at = now()
		 WHERE id = $1 AND catway_id = $2
		 RETURNING ` + columns

	updated, err := scanReservation(r.db.QueryRowContext(ctx, query,
		id, catwayID, reservation.ClientName, reservation.BoatName,
		reservation.StartDate, reservation.EndDate))

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, catwayID, id string) error {
	query :=
		`DELETE FROM reservations
		 WHERE id = $1 AND catway_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, catwayID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
