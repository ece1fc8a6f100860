// Package crypto — şifre hash'leme ve doğrulama.
//
// bcrypt neden?
// - Salt'ı otomatik üretir ve hash'in içine gömer — aynı şifre her seferinde
//   farklı hash üretir, rainbow table saldırıları işe yaramaz.
// - Maliyet faktörü (cost) ayarlanabilir — donanım hızlandıkça artırılabilir.
// - CompareHashAndPassword constant-time karşılaştırır — timing attack koruması.
//
// Cost 10: Orijinal sistemle aynı iş faktörü. Her hash ~50-100ms CPU harcar,
// brute-force'u pratik olarak imkansız kılar ama login'i hissedilir yavaşlatmaz.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost, bcrypt iş faktörü (2^10 iterasyon).
const bcryptCost = 10

// HashPassword, plaintext şifreden bcrypt hash üretir.
// Salt bcrypt tarafından rastgele üretilir ve çıktıya gömülür —
// aynı input'la iki çağrı iki farklı hash döner, ikisi de doğrulanır.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword, plaintext şifreyi stored hash ile karşılaştırır.
// Eşleşmeme bir error DEĞİL, false'tur — hatalı şifre normal akıştır.
// Karşılaştırma bcrypt içinde constant-time yapılır.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
