// Package services — PlanService: plan (todo öğesi) iş kuralları.
//
// Sahiplik kuralı: her operasyon planın author'unu isteği yapan kullanıcıyla
// karşılaştırır. Listeleme zaten author'a göre süzülür; update/delete önce
// kaydı yükleyip sahibini kontrol eder.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/taskplan/database"
	"github.com/akinalp/taskplan/models"
	"github.com/akinalp/taskplan/pkg"
	"github.com/akinalp/taskplan/repository"
)

// PlanService interface'i — dışarıya açık API.
type PlanService interface {
	// ListPlans, kullanıcının tüm planlarını en yeniden eskiye döner.
	ListPlans(ctx context.Context, userID string) ([]models.Plan, error)
	// CreatePlan, yeni plan oluşturur ve profildeki sıralamanın başına ekler.
	CreatePlan(ctx context.Context, userID string, req *models.PlanRequest) (*models.Plan, error)
	// UpdatePlan, sahiplik kontrolüyle planı günceller.
	UpdatePlan(ctx context.Context, userID, planID string, req *models.PlanRequest) (*models.Plan, error)
	// DeletePlan, sahiplik kontrolüyle planı siler ve sıralamadan çıkarır.
	DeletePlan(ctx context.Context, userID, planID string) error
}

// planService, PlanService interface'inin implementasyonu.
//
// db alanı neden var? Create ve Delete, plans tablosu ile profilin
// plans_order kolonunu BİRLİKTE değiştirir — iki yazma tek transaction'da
// yapılmalı. database.WithTx için *sql.DB gerekir; transaction içinde
// repository'ler tx üzerinden yeniden kurulur (TxQuerier sayesinde).
type planService struct {
	db          *sql.DB
	planRepo    repository.PlanRepository
	profileRepo repository.ProfileRepository
}

// NewPlanService, constructor.
func NewPlanService(db *sql.DB, planRepo repository.PlanRepository, profileRepo repository.ProfileRepository) PlanService {
	return &planService{
		db:          db,
		planRepo:    planRepo,
		profileRepo: profileRepo,
	}
}

func (s *planService) ListPlans(ctx context.Context, userID string) ([]models.Plan, error) {
	return s.planRepo.GetAllByAuthor(ctx, userID)
}

// CreatePlan, planı ekler ve varsa profildeki plan sıralamasının başına koyar.
// İki yazma atomiktir — plan eklenip sıralama güncellenemezse ikisi de geri alınır.
func (s *planService) CreatePlan(ctx context.Context, userID string, req *models.PlanRequest) (*models.Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrValidation, err.Error())
	}

	plan := &models.Plan{
		Title:    req.Title,
		Content:  req.Content,
		Complete: req.Complete,
		Type:     req.Type,
		Author:   userID,
	}

	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txProfiles := repository.NewSQLiteProfileRepo(tx)

		if err := txPlans.Create(ctx, plan); err != nil {
			return err
		}

		profile, err := txProfiles.GetByUserID(ctx, userID)
		if err != nil {
			// Profili olmayan kullanıcı plan oluşturabilir — sıralama
			// profil oluşturulurken mevcut planlardan yeniden kurulur.
			if errors.Is(err, pkg.ErrNotFound) {
				return nil
			}
			return err
		}

		newOrder := append([]string{plan.ID}, profile.PlansOrder...)
		return txProfiles.UpdatePlansOrder(ctx, userID, newOrder)
	})
	if err != nil {
		return nil, err
	}

	return plan, nil
}

func (s *planService) UpdatePlan(ctx context.Context, userID, planID string, req *models.PlanRequest) (*models.Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrValidation, err.Error())
	}

	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	if plan.Author != userID {
		return nil, fmt.Errorf("%w: current user is not authorized to update this item", pkg.ErrForbidden)
	}

	plan.Title = req.Title
	plan.Content = req.Content
	plan.Complete = req.Complete
	plan.Type = req.Type

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// DeletePlan, planı siler ve profildeki sıralamadan id'sini çıkarır.
func (s *planService) DeletePlan(ctx context.Context, userID, planID string) error {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return err
	}

	if plan.Author != userID {
		return fmt.Errorf("%w: current user is not authorized to delete this item", pkg.ErrForbidden)
	}

	return database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txProfiles := repository.NewSQLiteProfileRepo(tx)

		if err := txPlans.Delete(ctx, planID); err != nil {
			return err
		}

		profile, err := txProfiles.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, pkg.ErrNotFound) {
				return nil
			}
			return err
		}

		newOrder := make([]string, 0, len(profile.PlansOrder))
		for _, id := range profile.PlansOrder {
			if id != planID {
				newOrder = append(newOrder, id)
			}
		}
		return txProfiles.UpdatePlansOrder(ctx, userID, newOrder)
	})
}
