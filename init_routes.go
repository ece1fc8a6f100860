// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// Middleware chain helper'ı burada tanımlıdır:
//   - auth: JWT token doğrulaması (Authorization: Bearer <token>)
package main

import (
	"net/http"

	"github.com/akinalp/taskplan/middleware"
	"github.com/akinalp/taskplan/services"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
//
// Route sıralama kuralı: Literal path'ler parametrik path'lerden ÖNCE
// tanımlanmalı — Go 1.22 router'ı en spesifik pattern'i seçer ama aynı
// segmentte literal/parametre çakışması panic'e yol açabilir.
func initRoutes(mux *http.ServeMux, h *Handlers, authService services.AuthService) {
	// ─── Middleware ───
	authMw := middleware.NewAuthMiddleware(authService)

	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(http.HandlerFunc(handler))
	}

	// Auth — public endpoint'ler (token gerekmez)
	mux.HandleFunc("POST /api/auth/signup", h.Auth.Signup)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/reset-token", h.Auth.ForgotPassword)
	mux.HandleFunc("POST /api/auth/reset-password", h.Auth.ResetPassword)

	// Auth — korumalı endpoint'ler
	mux.Handle("GET /api/auth", auth(h.Auth.Me))
	mux.Handle("PUT /api/auth/password", auth(h.Auth.UpdatePassword))

	// Plans
	mux.Handle("GET /api/plans", auth(h.Plan.List))
	mux.Handle("POST /api/plans", auth(h.Plan.Create))
	mux.Handle("PUT /api/plans/{id}", auth(h.Plan.Update))
	mux.Handle("DELETE /api/plans/{id}", auth(h.Plan.Delete))

	// Profile
	mux.Handle("GET /api/profile", auth(h.Profile.Get))
	mux.Handle("POST /api/profile", auth(h.Profile.Create))
	mux.Handle("PUT /api/profile/plans-order", auth(h.Profile.UpdatePlansOrder))
	mux.Handle("PUT /api/profile/dark", auth(h.Profile.UpdateDark))
}
