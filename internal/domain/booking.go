package domain

import "time"

// Booking is a confirmed reservation of a property over a closed range of
// calendar nights. CheckIn and CheckOut are UTC midnights with no time
// component; both end days count as occupied.
type Booking struct {
	ID         int64
	PropertyID int64
	GuestID    int64
	CheckIn    time.Time
	CheckOut   time.Time
	CreatedAt  time.Time
}

// GuestBooking is the read model for a guest's upcoming stays: the booking
// joined with display fields from the property and its host.
type GuestBooking struct {
	Booking
	PropertyName string
	Image        string
	Host         string
}
