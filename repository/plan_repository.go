// Package repository — PlanRepository interface tanımı.
package repository

import (
	"context"

	"github.com/akinalp/taskplan/models"
)

// PlanRepository, plan (todo öğesi) veritabanı işlemleri için interface.
type PlanRepository interface {
	// Create, yeni plan kaydı oluşturur.
	Create(ctx context.Context, plan *models.Plan) error

	// GetByID, id'ye göre planı bulur. Yoksa pkg.ErrNotFound döner.
	// Sahiplik kontrolü YAPMAZ — o service katmanının işi.
	GetByID(ctx context.Context, id string) (*models.Plan, error)

	// GetAllByAuthor, bir kullanıcının tüm planlarını en yeniden eskiye döner.
	GetAllByAuthor(ctx context.Context, authorID string) ([]models.Plan, error)

	// Update, planın başlık/içerik/tamamlanma/tip alanlarını günceller.
	Update(ctx context.Context, plan *models.Plan) error

	// Delete, planı siler. Kayıt yoksa pkg.ErrNotFound döner.
	Delete(ctx context.Context, id string) error
}
