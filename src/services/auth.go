package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tmcybertech/portal-api/src/database"
	"github.com/tmcybertech/portal-api/src/models"
)

// Authenticate looks up an account by email and verifies the password against
// the stored hash. An unknown email and a wrong password both come back as
// ErrInvalidCredentials so the response does not leak which one failed.
func Authenticate(ctx context.Context, q database.Querier, email, password string) (*models.Admin, error) {
	admin := &models.Admin{}
	err := q.QueryRow(ctx,
		"SELECT id, email, password_hash, created_at FROM admins WHERE email = $1",
		email,
	).Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := VerifyPassword(admin.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}

// HasAdmins reports whether any administrator account exists
func HasAdmins(ctx context.Context, q database.Querier) (bool, error) {
	var count int
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM admins").Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check admin accounts: %w", err)
	}
	return count > 0, nil
}

// SeedAdmin creates the initial administrator account with a hashed password
func SeedAdmin(ctx context.Context, q database.Querier, email, password string) (*models.Admin, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{Email: email, PasswordHash: hash}
	err = q.QueryRow(ctx,
		"INSERT INTO admins (email, password_hash) VALUES ($1, $2) RETURNING id, created_at",
		email, hash,
	).Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin account: %w", err)
	}

	return admin, nil
}
