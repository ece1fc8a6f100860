// Package repository — ProfileRepository interface tanımı.
package repository

import (
	"context"

	"github.com/akinalp/taskplan/models"
)

// ProfileRepository, profil veritabanı işlemleri için interface.
type ProfileRepository interface {
	// Create, yeni profil kaydı oluşturur. Kullanıcının zaten profili varsa
	// (user_id UNIQUE) pkg.ErrForbidden döner — kullanıcı başına tek profil.
	Create(ctx context.Context, profile *models.Profile) error

	// GetByUserID, kullanıcının profilini bulur. Yoksa pkg.ErrNotFound döner.
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)

	// UpdatePlansOrder, profilin plan sıralamasını günceller.
	UpdatePlansOrder(ctx context.Context, userID string, plansOrder []string) error

	// UpdateDark, koyu tema tercihini günceller.
	UpdateDark(ctx context.Context, userID string, dark bool) error
}
