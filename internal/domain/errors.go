package domain

import "errors"

// The closed set of expected failures. The transport layer maps each one to a
// status and message; anything not in this set is an infrastructure failure.
var (
	ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")
	ErrCheckInPast             = errors.New("check-in date must not be in the past")
	ErrInvalidSort             = errors.New("invalid sorting criteria")
	ErrRatingOutOfRange        = errors.New("rating must be between 1 and 5")

	ErrPropertyNotFound = errors.New("property does not exist")
	ErrUserNotFound     = errors.New("user does not exist")

	ErrDatesUnavailable = errors.New("dates unavailable for booking")

	ErrBookingNotFound   = errors.New("booking does not exist")
	ErrReviewNotFound    = errors.New("review does not exist")
	ErrFavouriteNotFound = errors.New("favourite does not exist")
)
