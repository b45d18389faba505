package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/hearthstay/api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavouriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavouriteRepository(pool *pgxpool.Pool) *FavouriteRepository {
	return &FavouriteRepository{pool: pool}
}

func (r *FavouriteRepository) Insert(ctx context.Context, favourite domain.Favourite) (domain.Favourite, error) {
	const stmt = `
INSERT INTO favourites (guest_id, property_id)
VALUES ($1, $2)
RETURNING favourite_id`

	err := r.pool.QueryRow(ctx, stmt, favourite.GuestID, favourite.PropertyID).Scan(&favourite.ID)
	if err != nil {
		if name := foreignKeyConstraint(err); name != "" {
			if strings.Contains(name, "guest") {
				return domain.Favourite{}, domain.ErrUserNotFound
			}
			return domain.Favourite{}, domain.ErrPropertyNotFound
		}
		return domain.Favourite{}, fmt.Errorf("insert favourite: %w", err)
	}
	return favourite, nil
}

func (r *FavouriteRepository) Delete(ctx context.Context, favouriteID int64) error {
	const stmt = `DELETE FROM favourites WHERE favourite_id = $1`

	tag, err := r.pool.Exec(ctx, stmt, favouriteID)
	if err != nil {
		return fmt.Errorf("delete favourite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFavouriteNotFound
	}
	return nil
}
