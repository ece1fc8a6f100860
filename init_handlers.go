// Package main — Handler katmanı başlatma.
//
// initHandlers, tüm HTTP handler'larını oluşturur.
// Her handler, ihtiyaç duyduğu service interface'lerini constructor'dan alır.
// Handler'lar "thin" dir — sadece HTTP parse + service call + response write.
package main

import (
	"github.com/akinalp/taskplan/handlers"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Plan    *handlers.PlanHandler
	Profile *handlers.ProfileHandler
}

// initHandlers, tüm handler'ları service ve rate limiter dependency'leri ile oluşturur.
func initHandlers(svcs *Services, limiters *RateLimiters) *Handlers {
	return &Handlers{
		Auth:    handlers.NewAuthHandler(svcs.Auth, limiters.Login),
		Plan:    handlers.NewPlanHandler(svcs.Plan),
		Profile: handlers.NewProfileHandler(svcs.Profile),
	}
}
