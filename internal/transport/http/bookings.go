package http

import (
	"context"
	"net/http"
	"time"

	"github.com/hearthstay/api/internal/app"
	"github.com/hearthstay/api/internal/domain"
	"github.com/julienschmidt/httprouter"
)

// BookingManager is the lifecycle surface the booking handlers need.
type BookingManager interface {
	CreateBooking(ctx context.Context, in app.CreateBookingInput) (domain.Booking, error)
	AmendBooking(ctx context.Context, bookingID int64, in app.AmendBookingInput) (domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID int64) error
	ListPropertyBookings(ctx context.Context, propertyID int64) ([]domain.Booking, error)
	ListGuestBookings(ctx context.Context, guestID int64) ([]domain.GuestBooking, error)
}

// HandlePropertyBookings lists a property's bookings, latest check-out first.
func HandlePropertyBookings(svc BookingManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		propertyID, ok := parseID(ps.ByName("id"))
		if !ok {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		bookings, err := svc.ListPropertyBookings(r.Context(), propertyID)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		out := make([]bookingResponse, 0, len(bookings))
		for _, b := range bookings {
			out = append(out, newBookingResponse(b))
		}
		writeJSON(w, http.StatusOK, propertyBookingsResponse{
			Bookings:   out,
			PropertyID: propertyID,
		})
	}
}

// HandleCreateBooking books a property for a date range.
func HandleCreateBooking(svc BookingManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		propertyID, ok := parseID(ps.ByName("id"))
		if !ok {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		var req createBookingRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}
		checkIn, ok := parseDate(req.CheckInDate)
		if !ok {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}
		checkOut, ok := parseDate(req.CheckOutDate)
		if !ok {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		booking, err := svc.CreateBooking(r.Context(), app.CreateBookingInput{
			PropertyID: propertyID,
			GuestID:    req.GuestID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, createBookingResponse{
			BookingID: booking.ID,
			Msg:       "Booking Successful!",
		})
	}
}

// HandleAmendBooking changes one or both dates of a booking.
func HandleAmendBooking(svc BookingManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		bookingID, ok := parseID(ps.ByName("id"))
		if !ok {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		var req amendBookingRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		var in app.AmendBookingInput
		if req.CheckInDate != nil {
			checkIn, ok := parseDate(*req.CheckInDate)
			if !ok {
				writeError(w, http.StatusBadRequest, "Bad request")
				return
			}
			in.CheckIn = &checkIn
		}
		if req.CheckOutDate != nil {
			checkOut, ok := parseDate(*req.CheckOutDate)
			if !ok {
				writeError(w, http.StatusBadRequest, "Bad request")
				return
			}
			in.CheckOut = &checkOut
		}

		booking, err := svc.AmendBooking(r.Context(), bookingID, in)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newBookingResponse(booking))
	}
}

// HandleCancelBooking deletes a booking.
func HandleCancelBooking(svc BookingManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		bookingID, ok := parseID(ps.ByName("id"))
		if !ok {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		if err := svc.CancelBooking(r.Context(), bookingID); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleGuestBookings lists a guest's bookings in chronological order.
func HandleGuestBookings(svc BookingManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		guestID, ok := parseID(ps.ByName("id"))
		if !ok {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		bookings, err := svc.ListGuestBookings(r.Context(), guestID)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		out := make([]guestBookingResponse, 0, len(bookings))
		for _, b := range bookings {
			out = append(out, guestBookingResponse{
				bookingResponse: newBookingResponse(b.Booking),
				PropertyName:    b.PropertyName,
				Image:           b.Image,
				Host:            b.Host,
			})
		}
		writeJSON(w, http.StatusOK, guestBookingsResponse{Bookings: out})
	}
}

type createBookingRequest struct {
	GuestID      int64  `json:"guest_id" validate:"required,gt=0"`
	CheckInDate  string `json:"check_in_date" validate:"required"`
	CheckOutDate string `json:"check_out_date" validate:"required"`
}

type amendBookingRequest struct {
	CheckInDate  *string `json:"check_in_date" validate:"omitempty"`
	CheckOutDate *string `json:"check_out_date" validate:"omitempty"`
}

type createBookingResponse struct {
	BookingID int64  `json:"booking_id"`
	Msg       string `json:"msg"`
}

type bookingResponse struct {
	BookingID    int64     `json:"booking_id"`
	PropertyID   int64     `json:"property_id"`
	GuestID      int64     `json:"guest_id"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	CreatedAt    time.Time `json:"created_at"`
}

func newBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		BookingID:    b.ID,
		PropertyID:   b.PropertyID,
		GuestID:      b.GuestID,
		CheckInDate:  fmtDate(b.CheckIn),
		CheckOutDate: fmtDate(b.CheckOut),
		CreatedAt:    b.CreatedAt,
	}
}

type propertyBookingsResponse struct {
	Bookings   []bookingResponse `json:"bookings"`
	PropertyID int64             `json:"property_id"`
}

type guestBookingResponse struct {
	bookingResponse
	PropertyName string `json:"property_name"`
	Image        string `json:"image"`
	Host         string `json:"host"`
}

type guestBookingsResponse struct {
	Bookings []guestBookingResponse `json:"bookings"`
}
