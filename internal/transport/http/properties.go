package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hearthstay/api/internal/domain"
	"github.com/julienschmidt/httprouter"
)

// PropertyReader is the read-model surface the property handlers need.
type PropertyReader interface {
	ListProperties(ctx context.Context, filter domain.PropertyFilter) ([]domain.PropertySummary, error)
	GetProperty(ctx context.Context, propertyID int64, userID *int64) (domain.PropertyDetail, error)
}

// HandleListProperties lists properties with optional host/price filters and
// sorting.
func HandleListProperties(svc PropertyReader) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		q := r.URL.Query()

		var filter domain.PropertyFilter
		if raw := q.Get("host"); raw != "" {
			id, ok := parseID(raw)
			if !ok {
				writeError(w, http.StatusBadRequest, "Bad request")
				return
			}
			filter.HostID = &id
		}
		if raw := q.Get("minprice"); raw != "" {
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Bad request")
				return
			}
			filter.MinPrice = &price
		}
		if raw := q.Get("maxprice"); raw != "" {
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Bad request")
				return
			}
			filter.MaxPrice = &price
		}
		filter.Sort = q.Get("sort")
		filter.Order = q.Get("order")

		properties, err := svc.ListProperties(r.Context(), filter)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		out := make([]propertySummaryResponse, 0, len(properties))
		for _, p := range properties {
			out = append(out, propertySummaryResponse{
				PropertyID:     p.ID,
				PropertyName:   p.Name,
				Location:       p.Location,
				PricePerNight:  p.PricePerNight,
				Host:           p.Host,
				FavouriteCount: p.FavouriteCount,
				Images:         p.Images,
			})
		}
		writeJSON(w, http.StatusOK, propertiesResponse{Properties: out})
	}
}

// HandleGetProperty returns one property with its display joins; an optional
// user_id query reports whether that user favourited it.
func HandleGetProperty(svc PropertyReader) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		propertyID, ok := parseID(ps.ByName("id"))
		if !ok {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		var userID *int64
		if raw := r.URL.Query().Get("user_id"); raw != "" {
			id, ok := parseID(raw)
			if !ok {
				writeError(w, http.StatusBadRequest, "Bad request")
				return
			}
			userID = &id
		}

		property, err := svc.GetProperty(r.Context(), propertyID, userID)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, propertyResponse{Property: propertyDetailResponse{
			PropertyID:     property.ID,
			PropertyName:   property.Name,
			Location:       property.Location,
			PricePerNight:  property.PricePerNight,
			Description:    property.Description,
			HostID:         property.HostID,
			Host:           property.Host,
			HostAvatar:     property.HostAvatar,
			FavouriteCount: property.FavouriteCount,
			AverageRating:  property.AverageRating,
			Images:         property.Images,
			Favourited:     property.Favourited,
		}})
	}
}

type propertySummaryResponse struct {
	PropertyID     int64    `json:"property_id"`
	PropertyName   string   `json:"property_name"`
	Location       string   `json:"location"`
	PricePerNight  float64  `json:"price_per_night"`
	Host           string   `json:"host"`
	FavouriteCount int64    `json:"favourite_count"`
	Images         []string `json:"images"`
}

type propertiesResponse struct {
	Properties []propertySummaryResponse `json:"properties"`
}

type propertyDetailResponse struct {
	PropertyID     int64    `json:"property_id"`
	PropertyName   string   `json:"property_name"`
	Location       string   `json:"location"`
	PricePerNight  float64  `json:"price_per_night"`
	Description    string   `json:"description"`
	HostID         int64    `json:"host_id"`
	Host           string   `json:"host"`
	HostAvatar     string   `json:"host_avatar"`
	FavouriteCount int64    `json:"favourite_count"`
	AverageRating  float64  `json:"average_rating"`
	Images         []string `json:"images"`
	Favourited     *bool    `json:"favourited,omitempty"`
}

type propertyResponse struct {
	Property propertyDetailResponse `json:"property"`
}
