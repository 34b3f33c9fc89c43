package repository

import (
	"context"
	"errors"

	"github.com/explorekashmir/tours/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TourRepository interface {
	List(ctx context.Context, destinationID int64) ([]domain.Tour, error)
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
	Create(ctx context.Context, tour *domain.Tour) error
	ReleaseSlots(ctx context.Context, tourID int64, seats int) error
}

type PGTourRepository struct {
	db *pgxpool.Pool
}

func NewTourRepository(db *pgxpool.Pool) TourRepository {
	return &PGTourRepository{db: db}
}

const tourColumns = `id, destination_id, title, description, duration_days, departure_date, total_slots, available_slots, price_cents, created_at, updated_at`

// List returns tours ordered by departure date. A zero destinationID means no filter.
func (r *PGTourRepository) List(ctx context.Context, destinationID int64) ([]domain.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours ORDER BY departure_date`
	args := []interface{}{}
	if destinationID != 0 {
		query = `SELECT ` + tourColumns + ` FROM tours WHERE destination_id=$1 ORDER BY departure_date`
		args = append(args, destinationID)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tours := make([]domain.Tour, 0)
	for rows.Next() {
		var t domain.Tour
		if err := rows.Scan(&t.ID, &t.DestinationID, &t.Title, &t.Description, &t.DurationDays, &t.DepartureDate, &t.TotalSlots, &t.AvailableSlots, &t.PriceCents, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tours = append(tours, t)
	}
	return tours, rows.Err()
}

func (r *PGTourRepository) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	row := r.db.QueryRow(ctx, `SELECT `+tourColumns+` FROM tours WHERE id=$1`, id)
	var t domain.Tour
	if err := row.Scan(&t.ID, &t.DestinationID, &t.Title, &t.Description, &t.DurationDays, &t.DepartureDate, &t.TotalSlots, &t.AvailableSlots, &t.PriceCents, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *PGTourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	tour.AvailableSlots = tour.TotalSlots
	return r.db.QueryRow(ctx, `INSERT INTO tours (destination_id, title, description, duration_days, departure_date, total_slots, available_slots, price_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $6, $7)
		RETURNING id, created_at, updated_at`, tour.DestinationID, tour.Title, tour.Description, tour.DurationDays, tour.DepartureDate, tour.TotalSlots, tour.PriceCents).
		Scan(&tour.ID, &tour.CreatedAt, &tour.UpdatedAt)
}

func (r *PGTourRepository) ReleaseSlots(ctx context.Context, tourID int64, seats int) error {
	cmd, err := r.db.Exec(ctx, `UPDATE tours SET available_slots = LEAST(available_slots + $2, total_slots), updated_at = now() WHERE id=$1`, tourID, seats)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ TourRepository = (*PGTourRepository)(nil)
