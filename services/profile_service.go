// Package services — ProfileService: profil iş kuralları.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/akinalp/taskplan/models"
	"github.com/akinalp/taskplan/pkg"
	"github.com/akinalp/taskplan/repository"
)

// ProfileService interface'i — dışarıya açık API.
type ProfileService interface {
	// GetProfile, kullanıcının profilini döner. Profil yoksa (nil, nil) —
	// yokluk bir hata değildir, frontend null görünce profil oluşturur.
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	// CreateProfile, kullanıcıya profil açar; plan sıralaması mevcut
	// planlardan (en yeniden eskiye) tohumlanır.
	CreateProfile(ctx context.Context, userID string) (*models.Profile, error)
	// UpdatePlansOrder, sürükle-bırak sonrası yeni sıralamayı kaydeder.
	UpdatePlansOrder(ctx context.Context, userID string, plansOrder []string) (*models.Profile, error)
	// UpdateDark, koyu tema tercihini kaydeder.
	UpdateDark(ctx context.Context, userID string, dark bool) (*models.Profile, error)
}

// profileService, ProfileService interface'inin implementasyonu.
type profileService struct {
	profileRepo repository.ProfileRepository
	planRepo    repository.PlanRepository
	userRepo    repository.UserRepository
}

// NewProfileService, constructor.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	planRepo repository.PlanRepository,
	userRepo repository.UserRepository,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		planRepo:    planRepo,
		userRepo:    userRepo,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	// Hesap silinmiş ama token hâlâ geçerli olabilir
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return profile, nil
}

// CreateProfile, profil açar. Signup zaten boş profil oluşturduğu için bu
// endpoint normalde eski hesaplar (profil öncesi kayıtlar) içindir —
// var olan planlar sıralamaya en yeniden eskiye dizilir.
func (s *profileService) CreateProfile(ctx context.Context, userID string) (*models.Profile, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	plans, err := s.planRepo.GetAllByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	plansOrder := make([]string, 0, len(plans))
	for _, plan := range plans {
		plansOrder = append(plansOrder, plan.ID)
	}

	profile := &models.Profile{
		UserID:     userID,
		PlansOrder: plansOrder,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err // ErrForbidden: kullanıcı başına tek profil
	}

	return profile, nil
}

func (s *profileService) UpdatePlansOrder(ctx context.Context, userID string, plansOrder []string) (*models.Profile, error) {
	if plansOrder == nil {
		return nil, fmt.Errorf("%w: plans_order is required", pkg.ErrValidation)
	}

	if err := s.profileRepo.UpdatePlansOrder(ctx, userID, plansOrder); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *profileService) UpdateDark(ctx context.Context, userID string, dark bool) (*models.Profile, error) {
	if err := s.profileRepo.UpdateDark(ctx, userID, dark); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByUserID(ctx, userID)
}
