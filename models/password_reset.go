// Package models — Password reset token ve ilgili request struct'ları.
//
// PasswordResetToken, DB'de saklanan token kaydıdır.
// Token plaintext olarak SAKLANMAZ — SHA256 hash'i saklanır.
// Bu sayede DB sızsa bile tokenlar kullanılamaz.
// Plaintext secret sadece BİR KEZ var olur: oluşturulduğu anda
// email linkine gömülür, sonra unutulur.
package models

import (
	"fmt"
	"strings"
	"time"
)

// PasswordResetToken, şifre sıfırlama token'ının DB kaydı.
//
// TokenHash: Token'ın SHA256 hash'i (hex encoded, 64 karakter).
// ExpiresAt: Oluşturulmadan 1 saat sonrası — süresi geçen kayıt,
// consume açısından hiç var olmamış kayıtla AYNI davranır.
type PasswordResetToken struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"token_hash"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ForgotPasswordRequest, "şifremi unuttum" isteği.
// URL: frontend'in reset sayfası base URL'i — link bu adresin altına kurulur.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
	URL   string `json:"url"`
}

// Validate, ForgotPasswordRequest geçerlilik kontrolü.
func (r *ForgotPasswordRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" || !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("please add valid email address")
	}
	if strings.TrimSpace(r.URL) == "" {
		return fmt.Errorf("url is required")
	}
	return nil
}

// ResetPasswordRequest, şifre sıfırlama isteği.
// UserID + Token: email'deki link'ten alınan query parametreleri.
// Password: kullanıcının belirlediği yeni şifre — politikaya tabidir.
type ResetPasswordRequest struct {
	UserID   string `json:"user_id"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Validate, ResetPasswordRequest geçerlilik kontrolü.
func (r *ResetPasswordRequest) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if r.Token == "" {
		return fmt.Errorf("token is required")
	}
	return ValidatePassword(r.Password)
}
