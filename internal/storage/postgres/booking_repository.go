package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/hearthstay/api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingRepository is the ledger of confirmed bookings. The bookings table
// carries a gist exclusion constraint over (property_id, inclusive date
// range), so an overlapping insert or update is rejected by the database even
// when the in-process availability check raced.
type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *BookingRepository) PropertyExists(ctx context.Context, propertyID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM properties WHERE property_id = $1)`
	var exists bool
	if err := r.queryRow(ctx, query, propertyID).Scan(&exists); err != nil {
		return false, fmt.Errorf("property exists: %w", err)
	}
	return exists, nil
}

func (r *BookingRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)`
	var exists bool
	if err := r.queryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return exists, nil
}

func (r *BookingRepository) ListByProperty(ctx context.Context, propertyID int64) ([]domain.Booking, error) {
	const query = `
SELECT booking_id, property_id, guest_id, check_in_date, check_out_date, created_at
FROM bookings
WHERE property_id = $1
ORDER BY check_out_date DESC`

	rows, err := r.query(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.PropertyID, &b.GuestID, &b.CheckIn, &b.CheckOut, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) ListByGuest(ctx context.Context, guestID int64) ([]domain.GuestBooking, error) {
	const query = `
SELECT b.booking_id, b.property_id, b.guest_id, b.check_in_date, b.check_out_date, b.created_at,
       p.name,
       COALESCE((SELECT i.image_url FROM images i WHERE i.property_id = p.property_id ORDER BY i.image_id LIMIT 1), ''),
       h.first_name || ' ' || h.surname
FROM bookings b
JOIN properties p ON p.property_id = b.property_id
JOIN users h ON h.user_id = p.host_id
WHERE b.guest_id = $1
ORDER BY b.check_in_date`

	rows, err := r.query(ctx, query, guestID)
	if err != nil {
		return nil, fmt.Errorf("list guest bookings: %w", err)
	}
	defer rows.Close()

	bookings := []domain.GuestBooking{}
	for rows.Next() {
		var b domain.GuestBooking
		if err := rows.Scan(&b.ID, &b.PropertyID, &b.GuestID, &b.CheckIn, &b.CheckOut, &b.CreatedAt,
			&b.PropertyName, &b.Image, &b.Host); err != nil {
			return nil, fmt.Errorf("scan guest booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list guest bookings: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, bookingID int64) (domain.Booking, error) {
	const query = `
SELECT booking_id, property_id, guest_id, check_in_date, check_out_date, created_at
FROM bookings
WHERE booking_id = $1
FOR UPDATE`

	var b domain.Booking
	err := r.queryRow(ctx, query, bookingID).
		Scan(&b.ID, &b.PropertyID, &b.GuestID, &b.CheckIn, &b.CheckOut, &b.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Booking{}, domain.ErrBookingNotFound
		}
		return domain.Booking{}, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

func (r *BookingRepository) Insert(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	const stmt = `
INSERT INTO bookings (property_id, guest_id, check_in_date, check_out_date)
VALUES ($1, $2, $3, $4)
RETURNING booking_id, created_at`

	err := r.queryRow(ctx, stmt, booking.PropertyID, booking.GuestID, booking.CheckIn, booking.CheckOut).
		Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		if derr := translateBookingConstraint(err); derr != nil {
			return domain.Booking{}, derr
		}
		return domain.Booking{}, fmt.Errorf("insert booking: %w", err)
	}
	return booking, nil
}

func (r *BookingRepository) Update(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	const stmt = `
UPDATE bookings
SET check_in_date = $2, check_out_date = $3
WHERE booking_id = $1
RETURNING booking_id, property_id, guest_id, check_in_date, check_out_date, created_at`

	var updated domain.Booking
	err := r.queryRow(ctx, stmt, booking.ID, booking.CheckIn, booking.CheckOut).
		Scan(&updated.ID, &updated.PropertyID, &updated.GuestID, &updated.CheckIn, &updated.CheckOut, &updated.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Booking{}, domain.ErrBookingNotFound
		}
		if derr := translateBookingConstraint(err); derr != nil {
			return domain.Booking{}, derr
		}
		return domain.Booking{}, fmt.Errorf("update booking: %w", err)
	}
	return updated, nil
}

func (r *BookingRepository) Delete(ctx context.Context, bookingID int64) error {
	const stmt = `DELETE FROM bookings WHERE booking_id = $1`

	tag, err := r.exec(ctx, stmt, bookingID)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// translateBookingConstraint maps a constraint rejection on the bookings table
// to its domain error, or returns nil for anything else. This is the single
// place booking SQLSTATEs are interpreted.
func translateBookingConstraint(err error) error {
	if isExclusionViolation(err) {
		return domain.ErrDatesUnavailable
	}
	if name := foreignKeyConstraint(err); name != "" {
		if strings.Contains(name, "guest") {
			return domain.ErrUserNotFound
		}
		return domain.ErrPropertyNotFound
	}
	if name, ok := checkConstraint(err); ok {
		// The migration names both CHECK constraints; anything else on this
		// table (including an auto-generated "bookings_check") can only be
		// the two-column date-order check.
		if name == "bookings_check_in_not_past" {
			return domain.ErrCheckInPast
		}
		return domain.ErrCheckOutNotAfterCheckIn
	}
	return nil
}

func (r *BookingRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *BookingRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}

func (r *BookingRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}
