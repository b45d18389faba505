package app

import (
	"context"
	"time"

	"github.com/hearthstay/api/internal/availability"
	"github.com/hearthstay/api/internal/clock"
	"github.com/hearthstay/api/internal/domain"
)

type BookingRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	PropertyExists(ctx context.Context, propertyID int64) (bool, error)
	UserExists(ctx context.Context, userID int64) (bool, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]domain.Booking, error)
	ListByGuest(ctx context.Context, guestID int64) ([]domain.GuestBooking, error)
	GetForUpdate(ctx context.Context, bookingID int64) (domain.Booking, error)
	Insert(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	Update(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	Delete(ctx context.Context, bookingID int64) error
}

// BookingService owns the booking lifecycle. Every mutation re-validates the
// no-overlap invariant inside a single transaction; the database's exclusion
// constraint backs the in-process check under concurrency.
type BookingService struct {
	repo  BookingRepository
	clock clock.Clock
}

func NewBookingService(repo BookingRepository, clk clock.Clock) *BookingService {
	return &BookingService{
		repo:  repo,
		clock: clk,
	}
}

type CreateBookingInput struct {
	PropertyID int64
	GuestID    int64
	CheckIn    time.Time
	CheckOut   time.Time
}

func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (domain.Booking, error) {
	if !in.CheckOut.After(in.CheckIn) {
		return domain.Booking{}, domain.ErrCheckOutNotAfterCheckIn
	}
	if in.CheckIn.Before(clock.Today(s.clock)) {
		return domain.Booking{}, domain.ErrCheckInPast
	}

	var result domain.Booking

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		if ok, err := s.repo.PropertyExists(txCtx, in.PropertyID); err != nil {
			return err
		} else if !ok {
			return domain.ErrPropertyNotFound
		}
		if ok, err := s.repo.UserExists(txCtx, in.GuestID); err != nil {
			return err
		} else if !ok {
			return domain.ErrUserNotFound
		}

		existing, err := s.repo.ListByProperty(txCtx, in.PropertyID)
		if err != nil {
			return err
		}
		candidate := availability.Range{CheckIn: in.CheckIn, CheckOut: in.CheckOut}
		if !availability.IsAvailable(ranges(existing), candidate, 0) {
			return domain.ErrDatesUnavailable
		}

		created, err := s.repo.Insert(txCtx, domain.Booking{
			PropertyID: in.PropertyID,
			GuestID:    in.GuestID,
			CheckIn:    in.CheckIn,
			CheckOut:   in.CheckOut,
		})
		if err != nil {
			return err
		}

		result = created
		return nil
	})
	if err != nil {
		return domain.Booking{}, err
	}
	return result, nil
}

type AmendBookingInput struct {
	CheckIn  *time.Time
	CheckOut *time.Time
}

// AmendBooking applies a partial date change: a nil field keeps its stored
// value. The merged range is validated against all other bookings for the
// property before the row is updated.
func (s *BookingService) AmendBooking(ctx context.Context, bookingID int64, in AmendBookingInput) (domain.Booking, error) {
	var result domain.Booking

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		booking, err := s.repo.GetForUpdate(txCtx, bookingID)
		if err != nil {
			return err
		}

		if in.CheckIn != nil {
			booking.CheckIn = *in.CheckIn
		}
		if in.CheckOut != nil {
			booking.CheckOut = *in.CheckOut
		}

		if !booking.CheckOut.After(booking.CheckIn) {
			return domain.ErrCheckOutNotAfterCheckIn
		}
		if in.CheckIn != nil && booking.CheckIn.Before(clock.Today(s.clock)) {
			return domain.ErrCheckInPast
		}

		existing, err := s.repo.ListByProperty(txCtx, booking.PropertyID)
		if err != nil {
			return err
		}
		candidate := availability.Range{CheckIn: booking.CheckIn, CheckOut: booking.CheckOut}
		if !availability.IsAvailable(ranges(existing), candidate, booking.ID) {
			return domain.ErrDatesUnavailable
		}

		updated, err := s.repo.Update(txCtx, booking)
		if err != nil {
			return err
		}

		result = updated
		return nil
	})
	if err != nil {
		return domain.Booking{}, err
	}
	return result, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, bookingID int64) error {
	return s.repo.Delete(ctx, bookingID)
}

// ListPropertyBookings returns a property's bookings ordered by check-out
// date, latest first.
func (s *BookingService) ListPropertyBookings(ctx context.Context, propertyID int64) ([]domain.Booking, error) {
	if ok, err := s.repo.PropertyExists(ctx, propertyID); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return s.repo.ListByProperty(ctx, propertyID)
}

// ListGuestBookings returns a guest's bookings in chronological order, joined
// with property display fields.
func (s *BookingService) ListGuestBookings(ctx context.Context, guestID int64) ([]domain.GuestBooking, error) {
	if ok, err := s.repo.UserExists(ctx, guestID); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.ListByGuest(ctx, guestID)
}

func ranges(bookings []domain.Booking) []availability.Range {
	out := make([]availability.Range, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, availability.Range{ID: b.ID, CheckIn: b.CheckIn, CheckOut: b.CheckOut})
	}
	return out
}
