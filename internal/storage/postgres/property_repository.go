package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hearthstay/api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func (r *PropertyRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return exists, nil
}

// listSortColumns whitelists ORDER BY targets; the service validates input,
// this guards the SQL.
var listSortColumns = map[string]string{
	"price_per_night": "p.price_per_night",
	"favourite_count": "favourite_count",
	"":                "favourite_count",
}

func (r *PropertyRepository) List(ctx context.Context, filter domain.PropertyFilter) ([]domain.PropertySummary, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.HostID != nil {
		where = append(where, "p.host_id = "+arg(*filter.HostID))
	}
	if filter.MinPrice != nil {
		where = append(where, "p.price_per_night >= "+arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		where = append(where, "p.price_per_night <= "+arg(*filter.MaxPrice))
	}

	sortCol, ok := listSortColumns[filter.Sort]
	if !ok {
		return nil, domain.ErrInvalidSort
	}
	order := "DESC"
	if filter.Order == "asc" {
		order = "ASC"
	}

	query := `
SELECT p.property_id, p.name, p.location, p.price_per_night,
       h.first_name || ' ' || h.surname,
       COUNT(f.favourite_id) AS favourite_count
FROM properties p
JOIN users h ON h.user_id = p.host_id
LEFT JOIN favourites f ON f.property_id = p.property_id`
	if len(where) > 0 {
		query += "\nWHERE " + strings.Join(where, " AND ")
	}
	query += "\nGROUP BY p.property_id, h.first_name, h.surname"
	query += "\nORDER BY " + sortCol + " " + order

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	properties := []domain.PropertySummary{}
	for rows.Next() {
		var p domain.PropertySummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Location, &p.PricePerNight, &p.Host, &p.FavouriteCount); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	images, err := r.imagesByProperty(ctx)
	if err != nil {
		return nil, err
	}
	for i := range properties {
		properties[i].Images = images[properties[i].ID]
	}
	return properties, nil
}

func (r *PropertyRepository) Get(ctx context.Context, propertyID int64, userID *int64) (domain.PropertyDetail, error) {
	const query = `
SELECT p.property_id, p.name, p.location, p.price_per_night, COALESCE(p.description, ''),
       p.host_id, h.first_name || ' ' || h.surname, COALESCE(h.avatar, ''),
       (SELECT COUNT(*) FROM favourites f WHERE f.property_id = p.property_id),
       COALESCE((SELECT AVG(r.rating) FROM reviews r WHERE r.property_id = p.property_id), 0)
FROM properties p
JOIN users h ON h.user_id = p.host_id
WHERE p.property_id = $1`

	var d domain.PropertyDetail
	err := r.pool.QueryRow(ctx, query, propertyID).
		Scan(&d.ID, &d.Name, &d.Location, &d.PricePerNight, &d.Description,
			&d.HostID, &d.Host, &d.HostAvatar, &d.FavouriteCount, &d.AverageRating)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.PropertyDetail{}, domain.ErrPropertyNotFound
		}
		return domain.PropertyDetail{}, fmt.Errorf("get property: %w", err)
	}

	const imagesQuery = `SELECT image_url FROM images WHERE property_id = $1 ORDER BY image_id`
	rows, err := r.pool.Query(ctx, imagesQuery, propertyID)
	if err != nil {
		return domain.PropertyDetail{}, fmt.Errorf("property images: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return domain.PropertyDetail{}, fmt.Errorf("scan image: %w", err)
		}
		d.Images = append(d.Images, url)
	}
	if err := rows.Err(); err != nil {
		return domain.PropertyDetail{}, fmt.Errorf("property images: %w", err)
	}

	if userID != nil {
		const favQuery = `SELECT EXISTS (SELECT 1 FROM favourites WHERE property_id = $1 AND guest_id = $2)`
		var favourited bool
		if err := r.pool.QueryRow(ctx, favQuery, propertyID, *userID).Scan(&favourited); err != nil {
			return domain.PropertyDetail{}, fmt.Errorf("property favourited: %w", err)
		}
		d.Favourited = &favourited
	}
	return d, nil
}

func (r *PropertyRepository) imagesByProperty(ctx context.Context) (map[int64][]string, error) {
	const query = `SELECT property_id, image_url FROM images ORDER BY image_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]string)
	for rows.Next() {
		var propertyID int64
		var url string
		if err := rows.Scan(&propertyID, &url); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		out[propertyID] = append(out[propertyID], url)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return out, nil
}
