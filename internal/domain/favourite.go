package domain

type Favourite struct {
	ID         int64
	GuestID    int64
	PropertyID int64
}
