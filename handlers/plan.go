package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/taskplan/models"
	"github.com/akinalp/taskplan/pkg"
	"github.com/akinalp/taskplan/services"
)

// PlanHandler, plan endpoint'lerini yöneten struct.
// Tüm endpoint'ler auth middleware arkasındadır — user id context'ten gelir.
type PlanHandler struct {
	planService services.PlanService
}

// NewPlanHandler, constructor.
func NewPlanHandler(planService services.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// List godoc
// GET /api/plans
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r)
	if !ok {
		pkg.Error(w, pkg.ErrUnauthenticated)
		return
	}

	plans, err := h.planService.ListPlans(r.Context(), userID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, plans)
}

// Create godoc
// POST /api/plans
// Body: { "title": "...", "content": "...", "complete": false, "type": "..." }
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r)
	if !ok {
		pkg.Error(w, pkg.ErrUnauthenticated)
		return
	}

	var req models.PlanRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := h.planService.CreatePlan(r.Context(), userID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, plan)
}

// Update godoc
// PUT /api/plans/{id}
//
// r.PathValue: Go 1.22 ile gelen path parametresi okuma.
// Route pattern'deki {id} kısmını döner.
func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r)
	if !ok {
		pkg.Error(w, pkg.ErrUnauthenticated)
		return
	}

	planID := r.PathValue("id")
	if planID == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "plan id is required")
		return
	}

	var req models.PlanRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := h.planService.UpdatePlan(r.Context(), userID, planID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, plan)
}

// Delete godoc
// DELETE /api/plans/{id}
func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r)
	if !ok {
		pkg.Error(w, pkg.ErrUnauthenticated)
		return
	}

	planID := r.PathValue("id")
	if planID == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "plan id is required")
		return
	}

	if err := h.planService.DeletePlan(r.Context(), userID, planID); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "plan deleted"})
}
