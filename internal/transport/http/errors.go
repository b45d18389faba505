package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hearthstay/api/internal/domain"
)

type errorResponse struct {
	Msg string `json:"msg"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{Msg: msg})
	if err != nil {
		_, _ = w.Write([]byte(`{"msg":"Internal Server Error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeDomainError is the single place domain errors become HTTP responses. A
// conflict gets its own status and message so callers can tell "dates taken"
// apart from a malformed request; anything outside the domain set is an
// infrastructure failure and stays opaque.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCheckOutNotAfterCheckIn),
		errors.Is(err, domain.ErrCheckInPast),
		errors.Is(err, domain.ErrRatingOutOfRange):
		writeError(w, http.StatusBadRequest, "Bad request")
	case errors.Is(err, domain.ErrInvalidSort):
		writeError(w, http.StatusBadRequest, "Invalid sorting criteria")
	case errors.Is(err, domain.ErrPropertyNotFound):
		writeError(w, http.StatusNotFound, "Property does not exist")
	case errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User does not exist")
	case errors.Is(err, domain.ErrBookingNotFound):
		writeError(w, http.StatusNotFound, "Booking does not exist")
	case errors.Is(err, domain.ErrReviewNotFound):
		writeError(w, http.StatusNotFound, "Review does not exist")
	case errors.Is(err, domain.ErrFavouriteNotFound):
		writeError(w, http.StatusNotFound, "Favourite does not exist")
	case errors.Is(err, domain.ErrDatesUnavailable):
		writeError(w, http.StatusConflict, "Dates unavailable for booking")
	default:
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
