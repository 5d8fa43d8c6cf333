package catways

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"portrussell/internal/common"
	"portrussell/internal/dbx"
	"portrussell/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Catway, error) {
	query :=
		`SELECT id, catway_number, catway_type, catway_state, created_at, updated_at
		 FROM catways
		 ORDER BY catway_number
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Catway
	for rows.Next() {
		c := &models.Catway{}
		if err := rows.Scan(&c.ID, &c.CatwayNumber, &c.CatwayType, &c.CatwayState,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Catway, error) {
	query :=
		`SELECT id, catway_number, catway_type, catway_state, created_at, updated_at
		 FROM catways
		 WHERE id = $1
		 `

	c := &models.Catway{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.CatwayNumber, &c.CatwayType, &c.CatwayState, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, catway *models.Catway) (*models.Catway, error) {
	query :=
		`INSERT INTO catways (catway_number, catway_type, catway_state)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		catway.CatwayNumber, catway.CatwayType, catway.CatwayState).
		Scan(&catway.ID, &catway.CreatedAt, &catway.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return catway, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, catway *models.Catway) (*models.Catway, error) {
	query :=
		`UPDATE catways
		 SET catway_number = $2, catway_type = $3, catway_state = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING id, catway_number, catway_type, catway_state, created_at, updated_at
		 `

	updated := &models.Catway{}
	err := r.db.QueryRowContext(ctx, query,
		id, catway.CatwayNumber, catway.CatwayType, catway.CatwayState).
		Scan(&updated.ID, &updated.CatwayNumber, &updated.CatwayType, &updated.CatwayState,
			&updated.CreatedAt, &updated.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM catways
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
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
