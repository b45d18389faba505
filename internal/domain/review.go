package domain

import "time"

type Review struct {
	ID          int64
	PropertyID  int64
	GuestID     int64
	Rating      int
	Comment     string
	CreatedAt   time.Time
	Guest       string
	GuestAvatar string
}
