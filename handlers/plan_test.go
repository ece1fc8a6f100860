package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Plan ve profil endpoint'lerinin HTTP sözleşmesi — gerçek stack üzerinde.

func TestPlanEndpoints(t *testing.T) {
	app := newTestApp(t, nil)
	token := app.signup(t, "ada@example.com")

	// Başlangıçta boş liste (null değil)
	status, envelope := app.do(t, http.MethodGet, "/api/plans", token, nil)
	require.Equal(t, http.StatusOK, status)
	list, ok := envelope.Data.([]any)
	require.True(t, ok, "expected array data, got %T", envelope.Data)
	assert.Len(t, list, 0)

	// Oluştur
	status, envelope = app.do(t, http.MethodPost, "/api/plans", token, map[string]any{
		"title": "buy milk", "type": "home",
	})
	require.Equal(t, http.StatusCreated, status)
	planID := dataField(t, envelope, "id")
	require.NotEmpty(t, planID)

	// Signup'ta açılan profilin sıralamasına düşmüş olmalı
	status, envelope = app.do(t, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, status)
	profileData := envelope.Data.(map[string]any)
	order, ok := profileData["plans_order"].([]any)
	require.True(t, ok)
	require.Len(t, order, 1)
	assert.Equal(t, planID, order[0])

	// Güncelle
	status, envelope = app.do(t, http.MethodPut, "/api/plans/"+planID, token, map[string]any{
		"title": "buy oat milk", "type": "home", "complete": true,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "buy oat milk", dataField(t, envelope, "title"))

	// Sil
	status, _ = app.do(t, http.MethodDelete, "/api/plans/"+planID, token, nil)
	require.Equal(t, http.StatusOK, status)

	status, envelope = app.do(t, http.MethodGet, "/api/plans", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, envelope.Data.([]any), 0)
}

func TestPlanValidationOverHTTP(t *testing.T) {
	app := newTestApp(t, nil)
	token := app.signup(t, "ada@example.com")

	// title ve type zorunlu → 403 (validation sözleşmesi)
	status, _ := app.do(t, http.MethodPost, "/api/plans", token, map[string]any{"type": "home"})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = app.do(t, http.MethodPost, "/api/plans", token, map[string]any{"title": "x"})
	assert.Equal(t, http.StatusForbidden, status)
}

// Kullanıcı başka bir hesabın planına erişemez.
func TestPlanIsolationBetweenUsers(t *testing.T) {
	app := newTestApp(t, nil)
	ada := app.signup(t, "ada@example.com")
	bob := app.signup(t, "bob@example.com")

	status, envelope := app.do(t, http.MethodPost, "/api/plans", ada, map[string]any{
		"title": "private", "type": "work",
	})
	require.Equal(t, http.StatusCreated, status)
	planID := dataField(t, envelope, "id")

	// Bob listede göremez
	status, envelope = app.do(t, http.MethodGet, "/api/plans", bob, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, envelope.Data.([]any), 0)

	// Bob güncelleyemez / silemez → 403
	status, _ = app.do(t, http.MethodPut, "/api/plans/"+planID, bob, map[string]any{
		"title": "hacked", "type": "work",
	})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = app.do(t, http.MethodDelete, "/api/plans/"+planID, bob, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestPlanEndpointsRequireAuth(t *testing.T) {
	app := newTestApp(t, nil)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/plans"},
		{http.MethodPost, "/api/plans"},
		{http.MethodPut, "/api/plans/some-id"},
		{http.MethodDelete, "/api/plans/some-id"},
		{http.MethodGet, "/api/profile"},
		{http.MethodPut, "/api/profile/dark"},
	} {
		status, _ := app.do(t, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, "%s %s", tc.method, tc.path)
	}
}

func TestProfileEndpoints(t *testing.T) {
	app := newTestApp(t, nil)
	token := app.signup(t, "ada@example.com")

	// Signup boş profil açar
	status, envelope := app.do(t, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, status)
	data := envelope.Data.(map[string]any)
	assert.Equal(t, false, data["dark"])

	// İkinci profil açılamaz → 403
	status, _ = app.do(t, http.MethodPost, "/api/profile", token, nil)
	assert.Equal(t, http.StatusForbidden, status)

	// Dark mode güncelle
	status, envelope = app.do(t, http.MethodPut, "/api/profile/dark", token, map[string]any{"dark": true})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, envelope.Data.(map[string]any)["dark"])

	// dark alanı gönderilmemişse 400
	status, _ = app.do(t, http.MethodPut, "/api/profile/dark", token, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestProfilePlansOrderEndpoint(t *testing.T) {
	app := newTestApp(t, nil)
	token := app.signup(t, "ada@example.com")

	var ids []string
	for _, title := range []string{"one", "two"} {
		status, envelope := app.do(t, http.MethodPost, "/api/plans", token, map[string]any{
			"title": title, "type": "work",
		})
		require.Equal(t, http.StatusCreated, status)
		ids = append(ids, dataField(t, envelope, "id"))
	}

	// Sürükle-bırak sonrası sıralamayı tersine çevir
	status, envelope := app.do(t, http.MethodPut, "/api/profile/plans-order", token, map[string]any{
		"plans_order": []string{ids[0], ids[1]},
	})
	require.Equal(t, http.StatusOK, status)

	order := envelope.Data.(map[string]any)["plans_order"].([]any)
	require.Len(t, order, 2)
	assert.Equal(t, ids[0], order[0])
	assert.Equal(t, ids[1], order[1])
}
