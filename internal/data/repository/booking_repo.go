package repository

import (
	"context"
	"fmt"

	"ferry-booking/internal/data/entity"
	"ferry-booking/pkg/database"

	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindAll(ctx context.Context) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// Create inserts the booking and fills in the store-assigned id and
// created_at. Column constraints (seats >= 1, non-null fields) are the
// store's to enforce; a violation comes back as the insert error.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (customer, trip, seats)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		booking.Customer,
		booking.Trip,
		booking.Seats,
	).Scan(
		&booking.ID,
		&booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("customer", booking.Customer),
			zap.String("trip", booking.Trip),
			zap.Int("seats", booking.Seats),
		)
		return fmt.Errorf("create booking for %s: %w", booking.Customer, err)
	}

	return nil
}

// FindAll returns every booking in the store's native order.
func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT id, customer, trip, seats, created_at
		FROM bookings
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.Customer,
			&booking.Trip,
			&booking.Seats,
			&booking.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to read booking rows", zap.Error(err))
		return nil, fmt.Errorf("read booking rows: %w", err)
	}

	return bookings, nil
}
