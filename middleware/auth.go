// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Middleware Pattern nedir?
// Her HTTP request, handler'a ulaşmadan önce bir veya daha fazla middleware'dan geçer.
// Go'da middleware bir fonksiyondur:
//
//	func(next http.Handler) http.Handler
//
// "next" parametresi zincirdeki bir sonraki handler'dır.
// Middleware kendi işini yapar (ör: token doğrula), sonra next'i çağırır.
// Eğer hata varsa next'i çağırmaz → request burada durur.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/akinalp/taskplan/handlers"
	"github.com/akinalp/taskplan/pkg"
	"github.com/akinalp/taskplan/services"
)

// AuthMiddleware, JWT token doğrulama middleware'ı.
//
// Bu kapı UCUZDUR: sadece header parse + imza/expiry doğrulaması yapar,
// DB'ye GİTMEZ. Context'e hesabı değil user ID'yi koyar — hesabı yüklemek
// (ve "silinmiş hesap" durumunu ele almak) handler'ın sorumluluğudur.
type AuthMiddleware struct {
	authService services.AuthService
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Require, JWT token zorunlu kılan middleware.
//
// HTTP header formatı: Authorization: Bearer <token>
//
// Header eksik, format bozuk, imza geçersiz veya süre dolmuş —
// caller için HEPSİ aynı 401'dir; sebep client'a söylenmez.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			pkg.Error(w, pkg.ErrUnauthenticated)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			pkg.Error(w, pkg.ErrUnauthenticated)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.authService.ValidateAccessToken(tokenString)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		// context.WithValue: mevcut context'e key-value ekler.
		// Downstream handler'lar r.Context().Value(UserIDContextKey) ile erişir.
		ctx := context.WithValue(r.Context(), handlers.UserIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
