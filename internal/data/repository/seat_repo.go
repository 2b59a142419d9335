package repository

import (
	"context"
	"fmt"

	"seat-booking/internal/data/entity"
	"seat-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatRepository interface {
	// FindAvailableSeats lists the free seats of a hall in row, column order.
	FindAvailableSeats(ctx context.Context, hallID uuid.UUID) ([]*entity.Seat, error)
	UpdateAvailability(ctx context.Context, hallID uuid.UUID, seatNumber string, isAvailable bool) error
	// TakeSeat flips an available seat to taken. It fails with ErrSeatTaken when
	// the seat is already taken and ErrSeatNotFound when it does not exist.
	TakeSeat(ctx context.Context, hallID uuid.UUID, seatNumber string) error
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) FindAvailableSeats(ctx context.Context, hallID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT id, hall_id, seat_number, seat_row, seat_column, is_available, created_at, updated_at
		FROM seats
		WHERE hall_id = $1 AND is_available = true AND deleted_at IS NULL
		ORDER BY seat_row, seat_column
	`

	rows, err := r.db.Query(ctx, query, hallID)
	if err != nil {
		r.log.Error("Failed to find available seats",
			zap.Error(err),
			zap.String("hall_id", hallID.String()),
		)
		return nil, fmt.Errorf("failed to find available seats: %w", err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.HallID,
			&seat.SeatNumber,
			&seat.SeatRow,
			&seat.SeatColumn,
			&seat.IsAvailable,
			&seat.CreatedAt,
			&seat.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan seat: %w", err)
		}
		seats = append(seats, &seat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate available seats: %w", err)
	}

	return seats, nil
}

func (r *seatRepository) UpdateAvailability(ctx context.Context, hallID uuid.UUID, seatNumber string, isAvailable bool) error {
	query := `
		UPDATE seats SET is_available = $3, updated_at = NOW()
		WHERE hall_id = $1 AND seat_number = $2 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, hallID, seatNumber, isAvailable)
	if err != nil {
		r.log.Error("Failed to update seat availability",
			zap.Error(err),
			zap.String("hall_id", hallID.String()),
			zap.String("seat_number", seatNumber),
			zap.Bool("is_available", isAvailable),
		)
		return fmt.Errorf("failed to update seat availability: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat %s in hall %s: %w", seatNumber, hallID.String(), ErrSeatNotFound)
	}

	return nil
}

func (r *seatRepository) TakeSeat(ctx context.Context, hallID uuid.UUID, seatNumber string) error {
	query := `
		UPDATE seats SET is_available = false, updated_at = NOW()
		WHERE hall_id = $1 AND seat_number = $2 AND is_available = true AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, hallID, seatNumber)
	if err != nil {
		r.log.Error("Failed to take seat",
			zap.Error(err),
			zap.String("hall_id", hallID.String()),
			zap.String("seat_number", seatNumber),
		)
		return fmt.Errorf("failed to take seat: %w", err)
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	// Nothing matched: tell a taken seat apart from a missing one.
	var exists bool
	err = r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM seats WHERE hall_id = $1 AND seat_number = $2 AND deleted_at IS NULL)`,
		hallID, seatNumber,
	).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check seat existence",
			zap.Error(err),
			zap.String("hall_id", hallID.String()),
			zap.String("seat_number", seatNumber),
		)
		return fmt.Errorf("failed to check seat: %w", err)
	}
	if !exists {
		return fmt.Errorf("seat %s in hall %s: %w", seatNumber, hallID.String(), ErrSeatNotFound)
	}
	return fmt.Errorf("seat %s in hall %s: %w", seatNumber, hallID.String(), ErrSeatTaken)
}
