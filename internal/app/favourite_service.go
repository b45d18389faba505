package app

import (
	"context"

	"github.com/hearthstay/api/internal/domain"
)

type FavouriteRepository interface {
	Insert(ctx context.Context, favourite domain.Favourite) (domain.Favourite, error)
	Delete(ctx context.Context, favouriteID int64) error
}

type FavouriteService struct {
	repo FavouriteRepository
}

func NewFavouriteService(repo FavouriteRepository) *FavouriteService {
	return &FavouriteService{repo: repo}
}

func (s *FavouriteService) AddFavourite(ctx context.Context, guestID, propertyID int64) (domain.Favourite, error) {
	return s.repo.Insert(ctx, domain.Favourite{GuestID: guestID, PropertyID: propertyID})
}

func (s *FavouriteService) RemoveFavourite(ctx context.Context, favouriteID int64) error {
	return s.repo.Delete(ctx, favouriteID)
}
