package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/hearthstay/api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) PropertyExists(ctx context.Context, propertyID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM properties WHERE property_id = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, propertyID).Scan(&exists); err != nil {
		return false, fmt.Errorf("property exists: %w", err)
	}
	return exists, nil
}

func (r *ReviewRepository) ListByProperty(ctx context.Context, propertyID int64) ([]domain.Review, error) {
	const query = `
SELECT r.review_id, r.property_id, r.guest_id, r.rating, COALESCE(r.comment, ''), r.created_at,
       g.first_name || ' ' || g.surname, COALESCE(g.avatar, '')
FROM reviews r
JOIN users g ON g.user_id = r.guest_id
WHERE r.property_id = $1
ORDER BY r.created_at DESC`

	rows, err := r.pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.PropertyID, &rv.GuestID, &rv.Rating, &rv.Comment, &rv.CreatedAt,
			&rv.Guest, &rv.GuestAvatar); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) AverageRating(ctx context.Context, propertyID int64) (float64, error) {
	const query = `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE property_id = $1`
	var avg float64
	if err := r.pool.QueryRow(ctx, query, propertyID).Scan(&avg); err != nil {
		return 0, fmt.Errorf("average rating: %w", err)
	}
	return avg, nil
}

func (r *ReviewRepository) Insert(ctx context.Context, review domain.Review) (domain.Review, error) {
	const stmt = `
INSERT INTO reviews (property_id, guest_id, rating, comment)
VALUES ($1, $2, $3, $4)
RETURNING review_id, created_at`

	err := r.pool.QueryRow(ctx, stmt, review.PropertyID, review.GuestID, review.Rating, review.Comment).
		Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		if name := foreignKeyConstraint(err); name != "" {
			if strings.Contains(name, "guest") {
				return domain.Review{}, domain.ErrUserNotFound
			}
			return domain.Review{}, domain.ErrPropertyNotFound
		}
		if _, ok := checkConstraint(err); ok {
			return domain.Review{}, domain.ErrRatingOutOfRange
		}
		return domain.Review{}, fmt.Errorf("insert review: %w", err)
	}
	return review, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, reviewID int64) error {
	const stmt = `DELETE FROM reviews WHERE review_id = $1`

	tag, err := r.pool.Exec(ctx, stmt, reviewID)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
