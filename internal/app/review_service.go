package app

import (
	"context"

	"github.com/hearthstay/api/internal/domain"
)

type ReviewRepository interface {
	PropertyExists(ctx context.Context, propertyID int64) (bool, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]domain.Review, error)
	AverageRating(ctx context.Context, propertyID int64) (float64, error)
	Insert(ctx context.Context, review domain.Review) (domain.Review, error)
	Delete(ctx context.Context, reviewID int64) error
}

type ReviewService struct {
	repo ReviewRepository
}

func NewReviewService(repo ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

type PropertyReviews struct {
	Reviews       []domain.Review
	AverageRating float64
}

func (s *ReviewService) ListPropertyReviews(ctx context.Context, propertyID int64) (PropertyReviews, error) {
	if ok, err := s.repo.PropertyExists(ctx, propertyID); err != nil {
		return PropertyReviews{}, err
	} else if !ok {
		return PropertyReviews{}, domain.ErrPropertyNotFound
	}

	reviews, err := s.repo.ListByProperty(ctx, propertyID)
	if err != nil {
		return PropertyReviews{}, err
	}
	avg, err := s.repo.AverageRating(ctx, propertyID)
	if err != nil {
		return PropertyReviews{}, err
	}
	return PropertyReviews{Reviews: reviews, AverageRating: avg}, nil
}

type AddReviewInput struct {
	PropertyID int64
	GuestID    int64
	Rating     int
	Comment    string
}

func (s *ReviewService) AddReview(ctx context.Context, in AddReviewInput) (domain.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return domain.Review{}, domain.ErrRatingOutOfRange
	}
	return s.repo.Insert(ctx, domain.Review{
		PropertyID: in.PropertyID,
		GuestID:    in.GuestID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	})
}

func (s *ReviewService) RemoveReview(ctx context.Context, reviewID int64) error {
	return s.repo.Delete(ctx, reviewID)
}
