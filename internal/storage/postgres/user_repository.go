package postgres

import (
	"context"
	"fmt"

	"github.com/hearthstay/api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Get(ctx context.Context, userID int64) (domain.User, error) {
	const query = `
SELECT user_id, first_name, surname, email, COALESCE(phone_number, ''),
       COALESCE(role, ''), COALESCE(avatar, ''), created_at
FROM users
WHERE user_id = $1`

	var u domain.User
	err := r.pool.QueryRow(ctx, query, userID).
		Scan(&u.ID, &u.FirstName, &u.Surname, &u.Email, &u.PhoneNumber, &u.Role, &u.Avatar, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Update applies a partial patch; nil fields keep their stored values via
// COALESCE.
func (r *UserRepository) Update(ctx context.Context, userID int64, patch domain.UserPatch) (domain.User, error) {
	const stmt = `
UPDATE users
SET first_name   = COALESCE($2, first_name),
    surname      = COALESCE($3, surname),
    email        = COALESCE($4, email),
    phone_number = COALESCE($5, phone_number),
    avatar       = COALESCE($6, avatar)
WHERE user_id = $1
RETURNING user_id, first_name, surname, email, COALESCE(phone_number, ''),
          COALESCE(role, ''), COALESCE(avatar, ''), created_at`

	var u domain.User
	err := r.pool.QueryRow(ctx, stmt, userID,
		patch.FirstName, patch.Surname, patch.Email, patch.PhoneNumber, patch.Avatar).
		Scan(&u.ID, &u.FirstName, &u.Surname, &u.Email, &u.PhoneNumber, &u.Role, &u.Avatar, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}
