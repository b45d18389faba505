package http

import (
	"context"
	"net/http"

	"github.com/hearthstay/api/internal/domain"
	"github.com/julienschmidt/httprouter"
)

// FavouriteManager is the favourite surface the handlers need.
type FavouriteManager interface {
	AddFavourite(ctx context.Context, guestID, propertyID int64) (domain.Favourite, error)
	RemoveFavourite(ctx context.Context, favouriteID int64) error
}

// HandleAddFavourite favourites a property for a guest.
func HandleAddFavourite(svc FavouriteManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		propertyID, ok := parseID(ps.ByName("id"))
		if !ok {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		var req addFavouriteRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		favourite, err := svc.AddFavourite(r.Context(), req.GuestID, propertyID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, addFavouriteResponse{
			Msg:         "Property favourited successfully",
			FavouriteID: favourite.ID,
		})
	}
}

// HandleRemoveFavourite deletes a favourite.
func HandleRemoveFavourite(svc FavouriteManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		favouriteID, ok := parseID(ps.ByName("id"))
		if !ok {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		if err := svc.RemoveFavourite(r.Context(), favouriteID); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type addFavouriteRequest struct {
	GuestID int64 `json:"guest_id" validate:"required,gt=0"`
}

type addFavouriteResponse struct {
	Msg         string `json:"msg"`
	FavouriteID int64  `json:"favourite_id"`
}
