// Package repository, veritabanı erişim katmanını tanımlar.
//
// Repository Pattern nedir?
// Veritabanı işlemlerini (CRUD) soyutlayan bir tasarım kalıbıdır.
// Service katmanı doğrudan SQL yazmaz — repository interface'i üzerinden çalışır.
//
// Neden interface?
// 1. Test: Fake repository yazarak DB olmadan test edebilirsin
// 2. Esneklik: SQLite'tan başka bir DB'ye geçiş sadece yeni implementasyon ister
// 3. SOLID (Dependency Inversion): Service, concrete struct'a değil interface'e bağımlı
package repository

import (
	"context"

	"github.com/akinalp/taskplan/models"
)

// UserRepository, kullanıcı veritabanı işlemleri için interface.
type UserRepository interface {
	// Create, yeni kullanıcı kaydı oluşturur. Email zaten kayıtlıysa
	// pkg.ErrDuplicateEmail döner.
	Create(ctx context.Context, user *models.User) error

	// GetByID, id'ye göre kullanıcıyı bulur. Yoksa pkg.ErrNotFound döner.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail, email'e göre kullanıcıyı bulur. Yoksa pkg.ErrNotFound döner.
	// Email karşılaştırması byte-exact'tir (case-sensitive).
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdatePassword, kullanıcının şifre hash'ini günceller.
	// Şifre değiştirme ve reset-consumption akışları tarafından çağrılır.
	UpdatePassword(ctx context.Context, userID string, newPasswordHash string) error
}
