// Package repository — PasswordResetRepository interface tanımı.
//
// Şifre sıfırlama token kayıtlarını soyutlar.
// Service katmanı bu interface'e bağımlıdır, SQLite implementasyonuna değil.
package repository

import (
	"context"
	"time"

	"github.com/akinalp/taskplan/models"
)

// PasswordResetRepository, password reset token veritabanı işlemleri için interface.
type PasswordResetRepository interface {
	// Create, yeni bir reset token kaydı oluşturur.
	// Kayıtta plaintext secret YOKTUR — sadece SHA256 hash'i saklanır.
	Create(ctx context.Context, token *models.PasswordResetToken) error

	// Consume, kullanıcının token kaydını TEK bir atomik delete-if-matching
	// operasyonuyla tüketir: kayıt var + hash eşleşiyor + süresi geçmemiş
	// ise siler ve nil döner. Aksi halde pkg.ErrNotFound döner.
	//
	// Atomiklik kritik: read-then-delete iki ayrı adım olsaydı, eşzamanlı
	// iki istek aynı secret'ı iki kez harcayabilirdi (double-spend).
	// Süresi dolmuş kayıt, hiç var olmamış kayıtla AYNI hatayı üretir.
	Consume(ctx context.Context, userID, tokenHash string, now time.Time) error

	// DeleteByUserID, bir kullanıcının TÜM reset token'larını siler.
	// Yeni token oluşturmadan önce eskileri temizlemek için —
	// her hesap için aynı anda en fazla bir aktif secret bulunur.
	DeleteByUserID(ctx context.Context, userID string) error

	// DeleteExpired, süresi dolmuş tüm token'ları temizler.
	// Her reset isteğinde "fırsat temizliği" olarak çağrılır —
	// ayrı bir cron job'a gerek kalmaz.
	DeleteExpired(ctx context.Context, now time.Time) error
}
