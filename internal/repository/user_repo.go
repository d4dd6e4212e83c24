package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"car-fleet-api/internal/model"
)

type UserRepository struct {
	pool Querier
}

func NewUserRepository(pool Querier) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindByUsername does an exact, case-sensitive lookup.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at
		 FROM users WHERE username = $1`, username).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username exists: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new user and returns it with the assigned id and
// creation time. Unique violations map to the matching conflict error,
// covering the race between the existence pre-check and the insert.
func (r *UserRepository) Create(ctx context.Context, username string, email string, passwordHash string) (model.User, error) {
	u := model.User{Username: username, Email: email, PasswordHash: passwordHash}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`, username, email, passwordHash).
		Scan(&u.ID, &u.CreatedAt)

	if uniqueViolation(err, "users_username_key") {
		return model.User{}, model.ErrUsernameTaken
	}
	if uniqueViolation(err, "users_email_key") {
		return model.User{}, model.ErrEmailTaken
	}
	if uniqueViolation(err, "") {
		return model.User{}, model.ErrUsernameTaken
	}
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
