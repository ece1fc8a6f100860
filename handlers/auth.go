// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler'ın görevi çok basit ve "ince" (thin) olmalı:
// 1. Request body'yi parse et (JSON → struct)
// 2. Service katmanını çağır
// 3. Sonucu HTTP response olarak döndür
//
// Handler ASLA iş mantığı (business logic) içermez.
// Handler ASLA doğrudan DB'ye erişmez.
// Tüm akıl service'de, handler sadece köprü.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/akinalp/taskplan/models"
	"github.com/akinalp/taskplan/pkg"
	"github.com/akinalp/taskplan/pkg/ratelimit"
	"github.com/akinalp/taskplan/services"
)

// AuthHandler, auth endpoint'lerini yöneten struct.
// Service interface'i ve rate limiter constructor'dan alınır (DI).
type AuthHandler struct {
	authService  services.AuthService
	loginLimiter *ratelimit.LoginRateLimiter
}

// NewAuthHandler, constructor.
// loginLimiter: Login brute-force koruması. nil ise rate limiting devre dışı kalır.
func NewAuthHandler(authService services.AuthService, loginLimiter *ratelimit.LoginRateLimiter) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		loginLimiter: loginLimiter,
	}
}

// Signup godoc
// POST /api/auth/signup
// Body: { "name": "...", "email": "...", "password": "..." }
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, token)
}

// Login godoc
// POST /api/auth/login
//
// Rate limiting: IP bazlı brute-force koruması.
// Limit aşıldığında 429 Too Many Requests + Retry-After header döner.
// Başarılı login sayacı sıfırlar — meşru kullanıcı bloke olmaz.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ExtractIP(r)
	if h.loginLimiter != nil && !h.loginLimiter.Allow(ip) {
		retryAfter := h.loginLimiter.RetryAfterSeconds(ip)
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
		pkg.ErrorWithMessage(w, http.StatusTooManyRequests,
			fmt.Sprintf("too many login attempts, please try again in %s",
				ratelimit.FormatRetryMessage(retryAfter)))
		return
	}

	var req models.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if h.loginLimiter != nil {
		h.loginLimiter.Reset(ip)
	}

	pkg.JSON(w, http.StatusOK, token)
}

// Me godoc
// GET /api/auth
// Auth middleware gerektirir — context'te user id olur.
// Hesap token verildikten sonra silinmiş olabilir → 404.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r)
	if !ok {
		pkg.Error(w, pkg.ErrUnauthenticated)
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), userID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, user)
}

// UpdatePassword godoc
// PUT /api/auth/password
// Auth middleware gerektirir — kullanıcı kendi şifresini değiştirir.
// Body: { "current_password": "...", "new_password": "..." }
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r)
	if !ok {
		pkg.Error(w, pkg.ErrUnauthenticated)
		return
	}

	var req models.UpdatePasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		pkg.Error(w, fmt.Errorf("%w: %s", pkg.ErrValidation, err.Error()))
		return
	}

	if err := h.authService.UpdatePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

// ForgotPassword godoc
// POST /api/auth/reset-token
// Body: { "email": "...", "url": "..." }
//
// Şifre sıfırlama emaili gönderir. url, frontend'in reset sayfası base
// adresidir — link {url}/auth/reset-password?user=...&token=... olur.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		pkg.Error(w, fmt.Errorf("%w: %s", pkg.ErrValidation, err.Error()))
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), req.Email, req.URL); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "reset link has been sent"})
}

// ResetPassword godoc
// POST /api/auth/reset-password
// Body: { "user_id": "...", "token": "...", "password": "..." }
//
// Email'deki token ile şifre sıfırlar. Token doğrulanır (atomik, tek
// kullanımlık), şifre güncellenir.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		pkg.Error(w, fmt.Errorf("%w: %s", pkg.ErrValidation, err.Error()))
		return
	}

	if err := h.authService.ResetPassword(r.Context(), req.UserID, req.Token, req.Password); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "password has been reset successfully"})
}

// contextKey, context'te değer taşımak için kullanılan key tipi.
//
// Go'da context.Value() any tip kabul eder — string key kullanmak çakışmaya
// neden olabilir. Özel bir tip tanımlayarak namespace collision'ı önleriz.
type contextKey string

// UserIDContextKey, auth middleware'ın context'e koyduğu user id'nin anahtarı.
const UserIDContextKey contextKey = "user_id"

// UserIDFrom, request context'inden doğrulanmış user id'yi çıkarır.
// Auth middleware'dan geçmemiş bir request'te ok=false döner.
func UserIDFrom(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(UserIDContextKey).(string)
	return userID, ok && userID != ""
}
