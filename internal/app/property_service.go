package app

import (
	"context"

	"github.com/hearthstay/api/internal/domain"
)

type PropertyRepository interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	List(ctx context.Context, filter domain.PropertyFilter) ([]domain.PropertySummary, error)
	Get(ctx context.Context, propertyID int64, userID *int64) (domain.PropertyDetail, error)
}

type PropertyService struct {
	repo PropertyRepository
}

func NewPropertyService(repo PropertyRepository) *PropertyService {
	return &PropertyService{repo: repo}
}

var sortColumns = map[string]struct{}{
	"price_per_night": {},
	"favourite_count": {},
}

var sortOrders = map[string]struct{}{
	"asc":  {},
	"desc": {},
}

func (s *PropertyService) ListProperties(ctx context.Context, filter domain.PropertyFilter) ([]domain.PropertySummary, error) {
	if filter.Sort != "" {
		if _, ok := sortColumns[filter.Sort]; !ok {
			return nil, domain.ErrInvalidSort
		}
	}
	if filter.Order != "" {
		if _, ok := sortOrders[filter.Order]; !ok {
			return nil, domain.ErrInvalidSort
		}
	}
	if filter.HostID != nil {
		if ok, err := s.repo.UserExists(ctx, *filter.HostID); err != nil {
			return nil, err
		} else if !ok {
			return nil, domain.ErrUserNotFound
		}
	}
	return s.repo.List(ctx, filter)
}

// GetProperty returns a property with its display joins. When userID is
// given, the result reports whether that user has favourited the property.
func (s *PropertyService) GetProperty(ctx context.Context, propertyID int64, userID *int64) (domain.PropertyDetail, error) {
	if userID != nil {
		if ok, err := s.repo.UserExists(ctx, *userID); err != nil {
			return domain.PropertyDetail{}, err
		} else if !ok {
			return domain.PropertyDetail{}, domain.ErrUserNotFound
		}
	}
	return s.repo.Get(ctx, propertyID, userID)
}
