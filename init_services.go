// Package main — Service katmanı başlatma.
//
// initServices, tüm service implementasyonlarını oluşturur.
// Her service, ihtiyaç duyduğu repository interface'lerini ve diğer
// dependency'leri constructor injection ile alır.
package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/akinalp/taskplan/config"
	"github.com/akinalp/taskplan/pkg/email"
	"github.com/akinalp/taskplan/pkg/ratelimit"
	"github.com/akinalp/taskplan/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth    services.AuthService
	Plan    services.PlanService
	Profile services.ProfileService
}

// RateLimiters, tüm rate limiter instance'larını tutan container.
type RateLimiters struct {
	Login *ratelimit.LoginRateLimiter
}

// initServices, tüm service'leri ve rate limiter'ları oluşturur.
//
// db parametresi PlanService'e iner — plan + profil sıralaması tek
// transaction'da güncellenir (database.WithTx).
func initServices(db *sql.DB, repos *Repositories, cfg *config.Config) (*Services, *RateLimiters) {
	// ─── Email service (opsiyonel) ───
	var emailSender email.EmailSender
	if cfg.Email.ResendAPIKey != "" && cfg.Email.FromEmail != "" {
		emailSender = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.FromEmail)
		log.Printf("[main] email service enabled (from=%s)", cfg.Email.FromEmail)
	} else {
		log.Println("[main] email service disabled (RESEND_API_KEY / RESEND_FROM not set) — password reset emails will fail")
	}

	authService := services.NewAuthService(
		repos.User,
		repos.ResetToken,
		repos.Profile,
		emailSender,
		cfg.JWT.Secret,
		cfg.JWT.ExpiryDays,
	)

	planService := services.NewPlanService(db, repos.Plan, repos.Profile)
	profileService := services.NewProfileService(repos.Profile, repos.Plan, repos.User)

	// Login rate limiter: IP başına 2 dakikada 5 deneme.
	limiters := &RateLimiters{
		Login: ratelimit.NewLoginRateLimiter(5, 2*time.Minute),
	}

	return &Services{
		Auth:    authService,
		Plan:    planService,
		Profile: profileService,
	}, limiters
}
