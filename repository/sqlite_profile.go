// Package repository — ProfileRepository'nin SQLite implementasyonu.
//
// plans_order kolonu JSON array olarak TEXT'te saklanır.
// SQLite'ın ayrı bir array tipi yoktur; sıralama atomik olarak tek
// değerde okunup yazıldığı için JSON encode/decode yeterlidir.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akinalp/taskplan/database"
	"github.com/akinalp/taskplan/models"
	"github.com/akinalp/taskplan/pkg"
	"github.com/google/uuid"
)

// sqliteProfileRepo, ProfileRepository interface'inin SQLite implementasyonu.
type sqliteProfileRepo struct {
	db database.TxQuerier
}

// NewSQLiteProfileRepo, constructor.
func NewSQLiteProfileRepo(db database.TxQuerier) ProfileRepository {
	return &sqliteProfileRepo{db: db}
}

func (r *sqliteProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	profile.ID = uuid.NewString()
	if profile.PlansOrder == nil {
		profile.PlansOrder = []string{}
	}

	orderJSON, err := json.Marshal(profile.PlansOrder)
	if err != nil {
		return fmt.Errorf("failed to encode plans order: %w", err)
	}

	query := `
		INSERT INTO profiles (id, user_id, profile_picture, plans_order, dark)
		VALUES (?, ?, ?, ?, ?)
		RETURNING created_at, updated_at`

	err = r.db.QueryRowContext(ctx, query,
		profile.ID, profile.UserID, profile.ProfilePicture, string(orderJSON), profile.Dark,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: each user is authorized to have only one profile", pkg.ErrForbidden)
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

func (r *sqliteProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
		SELECT id, user_id, profile_picture, plans_order, dark, created_at, updated_at
		FROM profiles WHERE user_id = ?`

	profile := &models.Profile{}
	var orderJSON string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.ProfilePicture,
		&orderJSON, &profile.Dark, &profile.CreatedAt, &profile.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := json.Unmarshal([]byte(orderJSON), &profile.PlansOrder); err != nil {
		return nil, fmt.Errorf("failed to decode plans order: %w", err)
	}

	return profile, nil
}

func (r *sqliteProfileRepo) UpdatePlansOrder(ctx context.Context, userID string, plansOrder []string) error {
	if plansOrder == nil {
		plansOrder = []string{}
	}

	orderJSON, err := json.Marshal(plansOrder)
	if err != nil {
		return fmt.Errorf("failed to encode plans order: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET plans_order = ?, updated_at = CURRENT_TIMESTAMP WHERE user_id = ?`,
		string(orderJSON), userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update plans order: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check plans order update: %w", err)
	}
	if rows == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteProfileRepo) UpdateDark(ctx context.Context, userID string, dark bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET dark = ?, updated_at = CURRENT_TIMESTAMP WHERE user_id = ?`,
		dark, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update dark mode: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check dark mode update: %w", err)
	}
	if rows == 0 {
		return pkg.ErrNotFound
	}

	return nil
}
