package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/taskplan/models"
	"github.com/akinalp/taskplan/pkg"
	"github.com/akinalp/taskplan/services"
)

// ProfileHandler, profil endpoint'lerini yöneten struct.
type ProfileHandler struct {
	profileService services.ProfileService
}

// NewProfileHandler, constructor.
func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get godoc
// GET /api/profile
// Profil yoksa data: null döner — frontend bunu görünce Create çağırır.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r)
	if !ok {
		pkg.Error(w, pkg.ErrUnauthenticated)
		return
	}

	profile, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, profile)
}

// Create godoc
// POST /api/profile
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r)
	if !ok {
		pkg.Error(w, pkg.ErrUnauthenticated)
		return
	}

	profile, err := h.profileService.CreateProfile(r.Context(), userID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, profile)
}

// UpdatePlansOrder godoc
// PUT /api/profile/plans-order
// Body: { "plans_order": ["id1", "id2", ...] }
func (h *ProfileHandler) UpdatePlansOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r)
	if !ok {
		pkg.Error(w, pkg.ErrUnauthenticated)
		return
	}

	var req models.PlansOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.profileService.UpdatePlansOrder(r.Context(), userID, req.PlansOrder)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, profile)
}

// UpdateDark godoc
// PUT /api/profile/dark
// Body: { "dark": true }
//
// Pointer (*bool) kullanıyoruz çünkü "alan gönderilmedi" ile "false
// gönderildi" ayrımı lazım — ikisi de zero value olurdu.
func (h *ProfileHandler) UpdateDark(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r)
	if !ok {
		pkg.Error(w, pkg.ErrUnauthenticated)
		return
	}

	var req models.DarkModeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Dark == nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "dark field is required")
		return
	}

	profile, err := h.profileService.UpdateDark(r.Context(), userID, *req.Dark)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, profile)
}
