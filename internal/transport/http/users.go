package http

import (
	"context"
	"net/http"
	"time"

	"github.com/hearthstay/api/internal/domain"
	"github.com/julienschmidt/httprouter"
)

// UserManager is the profile surface the handlers need.
type UserManager interface {
	GetUser(ctx context.Context, userID int64) (domain.User, error)
	UpdateUser(ctx context.Context, userID int64, patch domain.UserPatch) (domain.User, error)
}

// HandleGetUser returns a user's profile.
func HandleGetUser(svc UserManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		userID, ok := parseID(ps.ByName("id"))
		if !ok {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		user, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, userResponse{User: newUserPayload(user)})
	}
}

// HandleUpdateUser applies a partial profile update.
func HandleUpdateUser(svc UserManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		userID, ok := parseID(ps.ByName("id"))
		if !ok {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		var req updateUserRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		user, err := svc.UpdateUser(r.Context(), userID, domain.UserPatch{
			FirstName:   req.FirstName,
			Surname:     req.Surname,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Avatar:      req.Avatar,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, userResponse{User: newUserPayload(user)})
	}
}

type updateUserRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,min=1"`
	Surname     *string `json:"surname" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
	Avatar      *string `json:"avatar"`
}

type userPayload struct {
	UserID      int64     `json:"user_id"`
	FirstName   string    `json:"first_name"`
	Surname     string    `json:"surname"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
	Avatar      string    `json:"avatar"`
	CreatedAt   time.Time `json:"created_at"`
}

func newUserPayload(u domain.User) userPayload {
	return userPayload{
		UserID:      u.ID,
		FirstName:   u.FirstName,
		Surname:     u.Surname,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		Avatar:      u.Avatar,
		CreatedAt:   u.CreatedAt,
	}
}

type userResponse struct {
	User userPayload `json:"user"`
}
