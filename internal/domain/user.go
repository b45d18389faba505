package domain

import "time"

type User struct {
	ID          int64
	FirstName   string
	Surname     string
	Email       string
	PhoneNumber string
	Role        string
	Avatar      string
	CreatedAt   time.Time
}

// UserPatch carries a partial profile update; nil fields keep their stored
// values.
type UserPatch struct {
	FirstName   *string
	Surname     *string
	Email       *string
	PhoneNumber *string
	Avatar      *string
}
