package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/taskplan/database"
	"github.com/akinalp/taskplan/models"
	"github.com/akinalp/taskplan/pkg"
	"github.com/google/uuid"
)

// sqlitePlanRepo, PlanRepository interface'inin SQLite implementasyonu.
type sqlitePlanRepo struct {
	db database.TxQuerier
}

// NewSQLitePlanRepo, constructor.
func NewSQLitePlanRepo(db database.TxQuerier) PlanRepository {
	return &sqlitePlanRepo{db: db}
}

func (r *sqlitePlanRepo) Create(ctx context.Context, plan *models.Plan) error {
	plan.ID = uuid.NewString()

	query := `
		INSERT INTO plans (id, title, content, complete, type, author)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		plan.ID, plan.Title, plan.Content, plan.Complete, plan.Type, plan.Author,
	).Scan(&plan.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	return nil
}

func (r *sqlitePlanRepo) GetByID(ctx context.Context, id string) (*models.Plan, error) {
	query := `
		SELECT id, title, content, complete, type, author, created_at
		FROM plans WHERE id = ?`

	plan := &models.Plan{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&plan.ID, &plan.Title, &plan.Content, &plan.Complete,
		&plan.Type, &plan.Author, &plan.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan by id: %w", err)
	}

	return plan, nil
}

func (r *sqlitePlanRepo) GetAllByAuthor(ctx context.Context, authorID string) ([]models.Plan, error) {
	query := `
		SELECT id, title, content, complete, type, author, created_at
		FROM plans WHERE author = ?
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plans: %w", err)
	}
	defer rows.Close() // rows'u kapatmayı ASLA unutma — aksi halde bağlantı sızar

	plans := []models.Plan{}
	for rows.Next() {
		var plan models.Plan
		if err := rows.Scan(
			&plan.ID, &plan.Title, &plan.Content, &plan.Complete,
			&plan.Type, &plan.Author, &plan.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plans: %w", err)
	}

	return plans, nil
}

func (r *sqlitePlanRepo) Update(ctx context.Context, plan *models.Plan) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE plans SET title = ?, content = ?, complete = ?, type = ? WHERE id = ?`,
		plan.Title, plan.Content, plan.Complete, plan.Type, plan.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check plan update: %w", err)
	}
	if rows == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlitePlanRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check plan delete: %w", err)
	}
	if rows == 0 {
		return pkg.ErrNotFound
	}

	return nil
}
