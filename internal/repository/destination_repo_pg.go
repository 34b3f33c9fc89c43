package repository

import (
	"context"
	"errors"

	"github.com/explorekashmir/tours/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DestinationRepository interface {
	List(ctx context.Context) ([]domain.Destination, error)
	GetByID(ctx context.Context, id int64) (*domain.Destination, error)
	Create(ctx context.Context, dest *domain.Destination) error
}

type PGDestinationRepository struct {
	db *pgxpool.Pool
}

func NewDestinationRepository(db *pgxpool.Pool) DestinationRepository {
	return &PGDestinationRepository{db: db}
}

func (r *PGDestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, region, description, best_season, created_at, updated_at FROM destinations ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dests := make([]domain.Destination, 0)
	for rows.Next() {
		var d domain.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Region, &d.Description, &d.BestSeason, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		dests = append(dests, d)
	}
	return dests, rows.Err()
}

func (r *PGDestinationRepository) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, region, description, best_season, created_at, updated_at FROM destinations WHERE id=$1`, id)
	var d domain.Destination
	if err := row.Scan(&d.ID, &d.Name, &d.Region, &d.Description, &d.BestSeason, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *PGDestinationRepository) Create(ctx context.Context, dest *domain.Destination) error {
	return r.db.QueryRow(ctx, `INSERT INTO destinations (name, region, description, best_season)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`, dest.Name, dest.Region, dest.Description, dest.BestSeason).
		Scan(&dest.ID, &dest.CreatedAt, &dest.UpdatedAt)
}

var _ DestinationRepository = (*PGDestinationRepository)(nil)
