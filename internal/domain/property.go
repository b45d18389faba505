package domain

// PropertySummary is a row of the property listing.
type PropertySummary struct {
	ID             int64
	Name           string
	Location       string
	PricePerNight  float64
	Host           string
	FavouriteCount int64
	Images         []string
}

// PropertyDetail is a single property with its display joins.
type PropertyDetail struct {
	ID             int64
	Name           string
	Location       string
	PricePerNight  float64
	Description    string
	HostID         int64
	Host           string
	HostAvatar     string
	FavouriteCount int64
	AverageRating  float64
	Images         []string
	// Favourited is set only when the lookup was made on behalf of a user.
	Favourited *bool
}

// PropertyFilter narrows and orders the property listing.
type PropertyFilter struct {
	HostID   *int64
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Order    string
}
