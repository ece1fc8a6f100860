// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Model nedir?
// Veritabanındaki bir tablonun Go karşılığıdır.
// Aynı zamanda API'den gelen/giden verilerin şeklini de belirler.
//
// Go'da `json:"email"` gibi tag'ler, struct field'larının JSON'a
// nasıl serialize/deserialize edileceğini belirler.
package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// User, kayıtlı bir kullanıcıyı temsil eder.
// PasswordHash json:"-" ile işaretli — API response'a ASLA dahil edilmez.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// emailRegex, orijinal frontend'le birebir aynı email format kontrolü.
// TLD 2-4 karakterle sınırlı — modern TLD'leri dışlar ama sözleşme bu.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)

// EmailRegex, email format regex'ini döner.
// models dışındaki katmanlar (ör: service) format kontrolü için kullanır.
func EmailRegex() *regexp.Regexp {
	return emailRegex
}

// passwordSymbols, şifre politikasının kabul ettiği özel karakter kümesi.
const passwordSymbols = "!@#$%^&*"

// ValidatePassword, şifre politikasını uygular:
//   - minimum 8 karakter
//   - en az 1 büyük harf, 1 küçük harf, 1 rakam
//   - en az 1 özel karakter (!@#$%^&*)
//
// Politika signup, şifre değiştirme ve şifre sıfırlamada AYNI'dır —
// hangi kapıdan girerse girsin zayıf şifre DB'ye ulaşamaz.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, ch := range password {
		switch {
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
		case ch >= 'a' && ch <= 'z':
			hasLower = true
		case ch >= '0' && ch <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, ch):
			hasSymbol = true
		}
	}

	switch {
	case !hasUpper:
		return fmt.Errorf("password must have at least 1 uppercase character")
	case !hasLower:
		return fmt.Errorf("password must have at least 1 lowercase character")
	case !hasDigit:
		return fmt.Errorf("password must have at least 1 number")
	case !hasSymbol:
		return fmt.Errorf("password must have at least 1 special character")
	}

	return nil
}

// SignupRequest, kayıt olurken frontend'den gelen veri.
// PasswordHash yerine Password alırız — hash'leme service katmanında yapılır.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate, SignupRequest'in geçerli olup olmadığını kontrol eder.
func (r *SignupRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)

	if r.Name == "" || r.Email == "" || r.Password == "" {
		return fmt.Errorf("please fill in all of name, email and password")
	}
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("please add valid email address")
	}
	if err := ValidatePassword(r.Password); err != nil {
		return err
	}

	return nil
}

// LoginRequest, giriş yaparken frontend'den gelen veri.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate, LoginRequest'in geçerli olup olmadığını kontrol eder.
// Şifre politikası burada UYGULANMAZ — login'de sadece varlık kontrolü yapılır,
// eski/zayıf şifreli hesaplar da giriş yapabilmeli.
func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" || !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("please add valid email address")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// UpdatePasswordRequest, oturum açmış kullanıcının şifre değiştirme isteği.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Validate, UpdatePasswordRequest geçerlilik kontrolü.
func (r *UpdatePasswordRequest) Validate() error {
	if r.CurrentPassword == "" {
		return fmt.Errorf("current password is required")
	}
	return ValidatePassword(r.NewPassword)
}
