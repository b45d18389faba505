package app

import (
	"context"

	"github.com/hearthstay/api/internal/domain"
)

type UserRepository interface {
	Get(ctx context.Context, userID int64) (domain.User, error)
	Update(ctx context.Context, userID int64, patch domain.UserPatch) (domain.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (domain.User, error) {
	return s.repo.Get(ctx, userID)
}

// UpdateUser applies a partial profile update; omitted fields keep their
// stored values.
func (s *UserService) UpdateUser(ctx context.Context, userID int64, patch domain.UserPatch) (domain.User, error) {
	return s.repo.Update(ctx, userID, patch)
}
