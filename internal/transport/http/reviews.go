package http

import (
	"context"
	"net/http"
	"time"

	"github.com/hearthstay/api/internal/app"
	"github.com/hearthstay/api/internal/domain"
	"github.com/julienschmidt/httprouter"
)

// ReviewManager is the review surface the handlers need.
type ReviewManager interface {
	ListPropertyReviews(ctx context.Context, propertyID int64) (app.PropertyReviews, error)
	AddReview(ctx context.Context, in app.AddReviewInput) (domain.Review, error)
	RemoveReview(ctx context.Context, reviewID int64) error
}

// HandlePropertyReviews lists a property's reviews, latest first, with the
// property's average rating.
func HandlePropertyReviews(svc ReviewManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		propertyID, ok := parseID(ps.ByName("id"))
		if !ok {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		result, err := svc.ListPropertyReviews(r.Context(), propertyID)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		out := make([]reviewResponse, 0, len(result.Reviews))
		for _, rv := range result.Reviews {
			out = append(out, newReviewResponse(rv))
		}
		writeJSON(w, http.StatusOK, reviewsResponse{
			Reviews:       out,
			AverageRating: result.AverageRating,
		})
	}
}

// HandleAddReview posts a review against a property.
func HandleAddReview(svc ReviewManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		propertyID, ok := parseID(ps.ByName("id"))
		if !ok {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		var req addReviewRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		review, err := svc.AddReview(r.Context(), app.AddReviewInput{
			PropertyID: propertyID,
			GuestID:    req.GuestID,
			Rating:     req.Rating,
			Comment:    req.Comment,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, newReviewResponse(review))
	}
}

// HandleRemoveReview deletes a review.
func HandleRemoveReview(svc ReviewManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		reviewID, ok := parseID(ps.ByName("id"))
		if !ok {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		if err := svc.RemoveReview(r.Context(), reviewID); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type addReviewRequest struct {
	GuestID int64  `json:"guest_id" validate:"required,gt=0"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type reviewResponse struct {
	ReviewID    int64     `json:"review_id"`
	PropertyID  int64     `json:"property_id"`
	GuestID     int64     `json:"guest_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
	Guest       string    `json:"guest,omitempty"`
	GuestAvatar string    `json:"guest_avatar,omitempty"`
}

func newReviewResponse(rv domain.Review) reviewResponse {
	return reviewResponse{
		ReviewID:    rv.ID,
		PropertyID:  rv.PropertyID,
		GuestID:     rv.GuestID,
		Rating:      rv.Rating,
		Comment:     rv.Comment,
		CreatedAt:   rv.CreatedAt,
		Guest:       rv.Guest,
		GuestAvatar: rv.GuestAvatar,
	}
}

type reviewsResponse struct {
	Reviews       []reviewResponse `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
}
