// Package services, business logic katmanını barındırır.
//
// Service Layer Pattern nedir?
// Handler (HTTP) ile Repository (DB) arasında oturan katmandır.
// Tüm iş kuralları burada yaşar:
//   - Şifre hash'leme ve doğrulama
//   - JWT token oluşturma/doğrulama
//   - Reset token üretme/tüketme
//
// Service ASLA http.Request/Response bilmez — sadece domain modelleri alır/verir.
// Service ASLA doğrudan SQL çalıştırmaz — Repository interface'i kullanır.
package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/akinalp/taskplan/models"
	"github.com/akinalp/taskplan/pkg"
	"github.com/akinalp/taskplan/pkg/crypto"
	"github.com/akinalp/taskplan/pkg/email"
	"github.com/akinalp/taskplan/repository"
	"github.com/golang-jwt/jwt/v5"
)

// resetTokenTTL, reset secret'ının ömrü. Süre doldurma aktif bir timer'la
// DEĞİL, consume anında tembel (lazy) kontrolle uygulanır.
const resetTokenTTL = time.Hour

// AuthService interface'i — dışarıya açık API.
// Handler ve middleware bu interface'e bağımlıdır, concrete struct'a değil.
type AuthService interface {
	// Signup, yeni hesap oluşturur, boş profili hazırlar ve session token döner.
	Signup(ctx context.Context, req *models.SignupRequest) (*AuthToken, error)
	// Login, email+şifre doğrular ve session token döner.
	Login(ctx context.Context, req *models.LoginRequest) (*AuthToken, error)
	// CurrentUser, token'dan çözülmüş user id ile hesabı yükler ("who am I").
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
	// UpdatePassword, mevcut şifreyi doğrulayıp yenisiyle değiştirir.
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	// ForgotPassword, hesaba yeni bir reset secret üretir ve email'ler.
	ForgotPassword(ctx context.Context, emailAddr, baseURL string) error
	// ResetPassword, email'deki secret ile şifreyi sıfırlar (single-use).
	ResetPassword(ctx context.Context, userID, token, newPassword string) error
	// ValidateAccessToken, JWT'yi doğrular ve claims döner.
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
}

// AuthToken, login/signup sonrası dönen session token.
// Server tarafında saklanmaz — imza + expiry ile kendi kendini tanımlar.
type AuthToken struct {
	AccessToken string `json:"access_token"`
}

// authService, AuthService interface'inin implementasyonu.
type authService struct {
	userRepo    repository.UserRepository
	resetRepo   repository.PasswordResetRepository
	profileRepo repository.ProfileRepository
	emailSender email.EmailSender
	jwtSecret   []byte
	tokenExp    time.Duration
}

// NewAuthService, constructor.
//
// jwtSecret parametre olarak geçilir — global state YOKTUR.
// Testler farklı secret'larla ayrı service'ler kurabilir.
// emailSender nil olabilir (email servisi yapılandırılmamışsa);
// bu durumda ForgotPassword internal error döner.
func NewAuthService(
	userRepo repository.UserRepository,
	resetRepo repository.PasswordResetRepository,
	profileRepo repository.ProfileRepository,
	emailSender email.EmailSender,
	jwtSecret string,
	tokenExpiryDays int,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		resetRepo:   resetRepo,
		profileRepo: profileRepo,
		emailSender: emailSender,
		jwtSecret:   []byte(jwtSecret),
		tokenExp:    time.Duration(tokenExpiryDays) * 24 * time.Hour,
	}
}

// Signup, yeni kullanıcı kaydı oluşturur.
//
// Akış: validation → bcrypt hash → user insert → boş profil → token.
// Email UNIQUE constraint'i DB'de — race durumunda bile iki hesap oluşmaz.
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*AuthToken, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrValidation, err.Error())
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err // ErrDuplicateEmail olabilir
	}

	// Her yeni hesaba boş bir profil açılır — frontend ilk girişte
	// profil yokluğuyla uğraşmaz.
	profile := &models.Profile{
		UserID:     user.ID,
		PlansOrder: []string{},
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to provision profile: %w", err)
	}

	return s.generateToken(user.ID)
}

// Login, kullanıcı girişi yapar.
//
// "Email yok" ve "şifre yanlış" AYNI hatayı döner — response farkından
// hesap varlığı çıkarılamaz (enumeration koruması). Hata mesajı da ortaktır.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*AuthToken, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrValidation, err.Error())
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: please check email or password again", pkg.ErrInvalidCredential)
		}
		return nil, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: please check email or password again", pkg.ErrInvalidCredential)
	}

	return s.generateToken(user.ID)
}

// CurrentUser, token'dan çözülen user id ile hesabı yükler.
// Token geçerli ama hesap silinmiş olabilir — o durumda ErrNotFound.
func (s *authService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// UpdatePassword, oturum açmış kullanıcının şifresini değiştirir.
func (s *authService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if err := models.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrValidation, err.Error())
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !crypto.VerifyPassword(currentPassword, user.PasswordHash) {
		return fmt.Errorf("%w: current password is incorrect", pkg.ErrInvalidCredential)
	}

	newHash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, newHash)
}

// ForgotPassword, şifre sıfırlama akışını başlatır.
//
// Politika: her istekte kullanıcının eski token'ları silinir ve TAZE bir
// secret üretilir (idempotent-by-replacement). Var olan kaydı "yeniden
// kullanmak" mümkün değildir — DB'de sadece hash var, plaintext geri
// türetilemez. Secret'ın plaintext hali süreçten yalnızca email linkiyle çıkar.
//
// Bilinmeyen email 400 döner — bu, hesap varlığını sızdırır ama orijinal
// sözleşme böyle; frontend bu hatayı kullanıcıya aynen gösteriyor.
func (s *authService) ForgotPassword(ctx context.Context, emailAddr, baseURL string) error {
	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return fmt.Errorf("%w: user with following email address is not found", pkg.ErrBadRequest)
		}
		return err
	}

	if s.emailSender == nil {
		return fmt.Errorf("%w: email delivery is not configured", pkg.ErrInternal)
	}

	now := time.Now()

	// Fırsat temizliği: süresi dolmuş kayıtlar her istekte süpürülür,
	// ayrı bir cron job'a gerek kalmaz.
	if err := s.resetRepo.DeleteExpired(ctx, now); err != nil {
		log.Printf("[auth] failed to sweep expired reset tokens: %v", err)
	}

	// Önce eski token'ları sil — hesap başına en fazla bir aktif secret.
	if err := s.resetRepo.DeleteByUserID(ctx, user.ID); err != nil {
		return err
	}

	secret, err := generateResetSecret()
	if err != nil {
		return err
	}

	token := &models.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: hashResetSecret(secret),
		ExpiresAt: now.Add(resetTokenTTL),
	}
	if err := s.resetRepo.Create(ctx, token); err != nil {
		return err
	}

	if err := s.emailSender.SendPasswordReset(ctx, user.Email, baseURL, user.ID, secret); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrInternal, err.Error())
	}

	return nil
}

// ResetPassword, email'deki secret ile şifreyi sıfırlar.
//
// Consume atomiktir (delete-if-matching) — aynı secret iki kez harcanamaz.
// Eksik hesap, eksik/uymayan/süresi dolmuş token: hepsi 400 döner
// (orijinal sözleşme; reset akışında 404 kullanılmaz).
func (s *authService) ResetPassword(ctx context.Context, userID, token, newPassword string) error {
	if err := models.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrValidation, err.Error())
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return fmt.Errorf("%w: user not found", pkg.ErrBadRequest)
		}
		return err
	}

	if err := s.resetRepo.Consume(ctx, user.ID, hashResetSecret(token), time.Now()); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return fmt.Errorf("%w: token not found", pkg.ErrBadRequest)
		}
		return err
	}

	newHash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, newHash)
}

// ValidateAccessToken, JWT access token'ı doğrular ve claims'i döner.
//
// İmza hatası, bozuk payload ve süresi dolmuş token caller için AYNI
// hatadır — client'a hangi sebeple reddedildiği söylenmez.
func (s *authService) ValidateAccessToken(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthenticated)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrUnauthenticated)
	}

	return claims, nil
}

// ─── Private Helpers ───

// generateToken, verilen kullanıcı için imzalı bir JWT üretir.
// Payload deterministiktir: user id + issued/expiry zamanları.
func (s *authService) generateToken(userID string) (*AuthToken, error) {
	now := time.Now()
	claims := &models.TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "taskplan",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &AuthToken{AccessToken: signed}, nil
}

// generateResetSecret, 32 byte'lık kriptografik rastgele secret üretir (hex).
func generateResetSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// hashResetSecret, secret'ın DB'de saklanan SHA256 hash'ini üretir.
//
// Neden bcrypt değil? Secret 256-bit rastgele — sözlük/brute-force zaten
// imkansız, yavaş hash gereksiz. SHA256 deterministik olduğu için consume
// tek bir WHERE token_hash = ? eşitliğiyle, DB tarafında atomik yapılabilir.
func hashResetSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
