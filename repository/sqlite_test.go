package repository

import (
	"context"
	"io/fs"
	"testing"
	"time"

	"github.com/akinalp/taskplan/database"
	"github.com/akinalp/taskplan/models"
	"github.com/akinalp/taskplan/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB, in-memory SQLite açar ve gömülü migration'ları uygular.
// Her test kendi izole veritabanını alır.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := database.New(":memory:", migrationsFS)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

// createTestUser, FK constraint'leri için gerçek bir kullanıcı kaydı açar.
func createTestUser(t *testing.T, db *database.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Ada",
		Email:        email,
		PasswordHash: "bcrypt-hash-placeholder",
	}
	require.NoError(t, NewSQLiteUserRepo(db.Conn).Create(context.Background(), user))
	return user
}

// ─── UserRepository ───

func TestUserRepoCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteUserRepo(db.Conn)
	ctx := context.Background()

	user := createTestUser(t, db, "ada@example.com")
	require.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)
	assert.Equal(t, user.PasswordHash, byID.PasswordHash)

	byEmail, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteUserRepo(db.Conn)
	ctx := context.Background()

	createTestUser(t, db, "ada@example.com")

	err := repo.Create(ctx, &models.User{
		Name:         "Other",
		Email:        "ada@example.com",
		PasswordHash: "hash",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrDuplicateEmail)
}

func TestUserRepoNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteUserRepo(db.Conn)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestUserRepoUpdatePassword(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteUserRepo(db.Conn)
	ctx := context.Background()

	user := createTestUser(t, db, "ada@example.com")

	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new-hash"))

	updated, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash)

	assert.ErrorIs(t, repo.UpdatePassword(ctx, "no-such-id", "x"), pkg.ErrNotFound)
}

// Email karşılaştırması byte-exact — case'i farklı adres ayrı hesaptır.
func TestUserRepoEmailCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteUserRepo(db.Conn)
	ctx := context.Background()

	createTestUser(t, db, "ada@example.com")

	_, err := repo.GetByEmail(ctx, "Ada@Example.com")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

// ─── PasswordResetRepository ───

func TestResetTokenConsume(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteResetTokenRepo(db.Conn)
	ctx := context.Background()

	user := createTestUser(t, db, "ada@example.com")

	token := &models.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: "hash-abc",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, token))
	require.NotEmpty(t, token.ID)

	require.NoError(t, repo.Consume(ctx, user.ID, "hash-abc", time.Now()))

	// İkinci tüketim başarısız — kayıt silindi (single-use)
	err := repo.Consume(ctx, user.ID, "hash-abc", time.Now())
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestResetTokenConsumeRejects(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteResetTokenRepo(db.Conn)
	ctx := context.Background()

	user := createTestUser(t, db, "ada@example.com")
	other := createTestUser(t, db, "bob@example.com")

	require.NoError(t, repo.Create(ctx, &models.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: "hash-abc",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	t.Run("wrong hash", func(t *testing.T) {
		err := repo.Consume(ctx, user.ID, "wrong-hash", time.Now())
		assert.ErrorIs(t, err, pkg.ErrNotFound)
	})

	t.Run("wrong user", func(t *testing.T) {
		err := repo.Consume(ctx, other.ID, "hash-abc", time.Now())
		assert.ErrorIs(t, err, pkg.ErrNotFound)
	})

	// Reddedilen denemeler kaydı harcamamalı
	t.Run("still consumable after rejects", func(t *testing.T) {
		assert.NoError(t, repo.Consume(ctx, user.ID, "hash-abc", time.Now()))
	})
}

// Süresi dolmuş token, hiç var olmamış token ile AYNI hatayı üretir.
func TestResetTokenConsumeExpired(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteResetTokenRepo(db.Conn)
	ctx := context.Background()

	user := createTestUser(t, db, "ada@example.com")

	require.NoError(t, repo.Create(ctx, &models.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: "hash-abc",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	err := repo.Consume(ctx, user.ID, "hash-abc", time.Now())
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestResetTokenDeleteByUserID(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteResetTokenRepo(db.Conn)
	ctx := context.Background()

	user := createTestUser(t, db, "ada@example.com")

	require.NoError(t, repo.Create(ctx, &models.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: "hash-abc",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, repo.DeleteByUserID(ctx, user.ID))

	err := repo.Consume(ctx, user.ID, "hash-abc", time.Now())
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	// Kayıt olmayan kullanıcı için idempotent
	assert.NoError(t, repo.DeleteByUserID(ctx, "no-such-user"))
}

func TestResetTokenDeleteExpired(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteResetTokenRepo(db.Conn)
	ctx := context.Background()

	expired := createTestUser(t, db, "old@example.com")
	fresh := createTestUser(t, db, "new@example.com")

	require.NoError(t, repo.Create(ctx, &models.PasswordResetToken{
		UserID:    expired.ID,
		TokenHash: "hash-old",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))
	require.NoError(t, repo.Create(ctx, &models.PasswordResetToken{
		UserID:    fresh.ID,
		TokenHash: "hash-new",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, repo.DeleteExpired(ctx, time.Now()))

	// Taze token hayatta, süresi dolmuş gitti
	assert.NoError(t, repo.Consume(ctx, fresh.ID, "hash-new", time.Now()))
	assert.ErrorIs(t, repo.Consume(ctx, expired.ID, "hash-old", time.Now()), pkg.ErrNotFound)
}

// ─── PlanRepository ───

func TestPlanRepoCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLitePlanRepo(db.Conn)
	ctx := context.Background()

	user := createTestUser(t, db, "ada@example.com")

	plan := &models.Plan{
		Title:   "write report",
		Content: "quarterly numbers",
		Type:    "work",
		Author:  user.ID,
	}
	require.NoError(t, repo.Create(ctx, plan))
	require.NotEmpty(t, plan.ID)

	got, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "write report", got.Title)
	assert.False(t, got.Complete)

	got.Title = "write final report"
	got.Complete = true
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "write final report", updated.Title)
	assert.True(t, updated.Complete)

	require.NoError(t, repo.Delete(ctx, plan.ID))
	_, err = repo.GetByID(ctx, plan.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, plan.ID), pkg.ErrNotFound)
}

func TestPlanRepoGetAllByAuthor(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLitePlanRepo(db.Conn)
	ctx := context.Background()

	ada := createTestUser(t, db, "ada@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &models.Plan{Title: title, Type: "work", Author: ada.ID}))
	}
	require.NoError(t, repo.Create(ctx, &models.Plan{Title: "other", Type: "home", Author: bob.ID}))

	plans, err := repo.GetAllByAuthor(ctx, ada.ID)
	require.NoError(t, err)
	require.Len(t, plans, 3)
	for _, p := range plans {
		assert.Equal(t, ada.ID, p.Author)
	}

	// Planı olmayan kullanıcı boş liste alır, nil DEĞİL
	empty, err := repo.GetAllByAuthor(ctx, "no-such-user")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

// ─── ProfileRepository ───

func TestProfileRepoCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteProfileRepo(db.Conn)
	ctx := context.Background()

	user := createTestUser(t, db, "ada@example.com")

	profile := &models.Profile{
		UserID:     user.ID,
		PlansOrder: []string{"p1", "p2"},
	}
	require.NoError(t, repo.Create(ctx, profile))
	require.NotEmpty(t, profile.ID)

	got, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, got.PlansOrder)
	assert.False(t, got.Dark)
}

func TestProfileRepoOnePerUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteProfileRepo(db.Conn)
	ctx := context.Background()

	user := createTestUser(t, db, "ada@example.com")

	require.NoError(t, repo.Create(ctx, &models.Profile{UserID: user.ID}))

	err := repo.Create(ctx, &models.Profile{UserID: user.ID})
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrForbidden)
}

func TestProfileRepoUpdatePlansOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteProfileRepo(db.Conn)
	ctx := context.Background()

	user := createTestUser(t, db, "ada@example.com")
	require.NoError(t, repo.Create(ctx, &models.Profile{UserID: user.ID}))

	require.NoError(t, repo.UpdatePlansOrder(ctx, user.ID, []string{"b", "a"}))

	got, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, got.PlansOrder)

	// nil sıralama boş listeye normalize edilir
	require.NoError(t, repo.UpdatePlansOrder(ctx, user.ID, nil))
	got, err = repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.PlansOrder)

	assert.ErrorIs(t, repo.UpdatePlansOrder(ctx, "no-such-user", []string{"x"}), pkg.ErrNotFound)
}

func TestProfileRepoUpdateDark(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteProfileRepo(db.Conn)
	ctx := context.Background()

	user := createTestUser(t, db, "ada@example.com")
	require.NoError(t, repo.Create(ctx, &models.Profile{UserID: user.ID}))

	require.NoError(t, repo.UpdateDark(ctx, user.ID, true))

	got, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.Dark)

	assert.ErrorIs(t, repo.UpdateDark(ctx, "no-such-user", true), pkg.ErrNotFound)
}

// ─── Foreign Keys ───

// Kullanıcı silinince reset token'ları, planları ve profili CASCADE ile gider.
func TestCascadeOnUserDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "ada@example.com")

	resetRepo := NewSQLiteResetTokenRepo(db.Conn)
	planRepo := NewSQLitePlanRepo(db.Conn)
	profileRepo := NewSQLiteProfileRepo(db.Conn)

	require.NoError(t, resetRepo.Create(ctx, &models.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: "hash-abc",
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	plan := &models.Plan{Title: "t", Type: "work", Author: user.ID}
	require.NoError(t, planRepo.Create(ctx, plan))
	require.NoError(t, profileRepo.Create(ctx, &models.Profile{UserID: user.ID}))

	_, err := db.Conn.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, user.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, resetRepo.Consume(ctx, user.ID, "hash-abc", time.Now()), pkg.ErrNotFound)
	_, err = planRepo.GetByID(ctx, plan.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
	_, err = profileRepo.GetByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}
