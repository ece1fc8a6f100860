// Package repository — PasswordResetRepository'nin SQLite implementasyonu.
//
// password_reset_tokens tablosuna CRUD işlemleri yapar.
// Token plaintext olarak SAKLANMAZ — sadece SHA256 hash saklanır.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/akinalp/taskplan/database"
	"github.com/akinalp/taskplan/models"
	"github.com/akinalp/taskplan/pkg"
	"github.com/google/uuid"
)

// sqliteResetTokenRepo, PasswordResetRepository'nin SQLite implementasyonu.
type sqliteResetTokenRepo struct {
	db database.TxQuerier
}

// NewSQLiteResetTokenRepo, constructor.
func NewSQLiteResetTokenRepo(db database.TxQuerier) PasswordResetRepository {
	return &sqliteResetTokenRepo{db: db}
}

func (r *sqliteResetTokenRepo) Create(ctx context.Context, token *models.PasswordResetToken) error {
	token.ID = uuid.NewString()

	query := `INSERT INTO password_reset_tokens (id, user_id, token_hash, expires_at)
		VALUES (?, ?, ?, ?)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		token.ID, token.UserID, token.TokenHash, token.ExpiresAt,
	).Scan(&token.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create password reset token: %w", err)
	}

	return nil
}

// Consume — tek statement'lık delete-if-matching.
// WHERE koşulu üç kontrolü birden yapar (varlık, hash eşleşmesi, expiry);
// RowsAffected 0 ise üçünden hangisinin başarısız olduğu caller'a
// SÖYLENMEZ — hepsi aynı ErrNotFound. Expiry kontrolü DB tarafında
// yapıldığı için aradaki pencerede başka bir istek aynı kaydı silemez.
func (r *sqliteResetTokenRepo) Consume(ctx context.Context, userID, tokenHash string, now time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM password_reset_tokens
		 WHERE user_id = ? AND token_hash = ? AND expires_at > ?`,
		userID, tokenHash, now,
	)
	if err != nil {
		return fmt.Errorf("failed to consume password reset token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check token consumption: %w", err)
	}
	if rows == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteResetTokenRepo) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM password_reset_tokens WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user's password reset tokens: %w", err)
	}
	return nil
}

func (r *sqliteResetTokenRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM password_reset_tokens WHERE expires_at <= ?`, now)
	if err != nil {
		return fmt.Errorf("failed to delete expired password reset tokens: %w", err)
	}
	return nil
}
