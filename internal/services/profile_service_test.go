package services_test

import (
	"testing"

	"freshherbal/internal/models"
	"freshherbal/internal/repositories"
	"freshherbal/internal/services"

	"github.com/stretchr/testify/assert"
)

func newProfileService() (*services.ProfileService, *repositories.MockBlobStore) {
	store := repositories.NewMockBlobStore()
	return services.NewProfileService(store), store
}

func TestProfileService_GetSeedsDefault(t *testing.T) {
	service, store := newProfileService()

	profile, err := service.Get()
	assert.NoError(t, err)
	assert.Equal(t, "Pelanggan Fresh Herbal", profile.Name)
	assert.Equal(t, "customer@example.com", profile.Email)
	assert.Equal(t, "081234567890", profile.Phone)
	assert.Equal(t, "Januari 2024", profile.MemberSince)

	// The default is persisted, not just returned
	var persisted models.Profile
	found, err := store.Load(repositories.ProfileKey, &persisted)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, profile, persisted)
}

func TestProfileService_UpdatePreservesMemberSinceAndPassword(t *testing.T) {
	service, _ := newProfileService()
	assert.NoError(t, service.SetPassword("rahasia123"))

	updated, err := service.Update(models.Profile{
		Name:        "Budi Santoso",
		Email:       "budi@example.com",
		Phone:       "089876543210",
		Address:     "Jl. Merdeka No. 45, Bandung",
		MemberSince: "Maret 2026", // ignored
	})
	assert.NoError(t, err)
	assert.Equal(t, "Budi Santoso", updated.Name)
	assert.Equal(t, "Januari 2024", updated.MemberSince)

	// Password hash survives the edit
	assert.NoError(t, service.VerifyPassword("rahasia123"))
}

func TestProfileService_SetPasswordRejectsShort(t *testing.T) {
	service, _ := newProfileService()

	err := service.SetPassword("12345")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least 6 characters")
}

func TestProfileService_VerifyPassword(t *testing.T) {
	service, _ := newProfileService()

	// No password set yet
	assert.ErrorIs(t, service.VerifyPassword("anything"), services.ErrNoPassword)

	assert.NoError(t, service.SetPassword("rahasia123"))
	assert.NoError(t, service.VerifyPassword("rahasia123"))
	assert.Error(t, service.VerifyPassword("salah"))
}

func TestAuthService_LoginIssuesValidToken(t *testing.T) {
	profiles, _ := newProfileService()
	auth := services.NewAuthService(profiles, "test_secret")
	assert.NoError(t, profiles.SetPassword("rahasia123"))

	token, err := auth.Login("customer@example.com", "rahasia123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "customer@example.com", claims["email"])
	assert.Equal(t, "Pelanggan Fresh Herbal", claims["name"])
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	profiles, _ := newProfileService()
	auth := services.NewAuthService(profiles, "test_secret")
	assert.NoError(t, profiles.SetPassword("rahasia123"))

	_, err := auth.Login("wrong@example.com", "rahasia123")
	assert.Error(t, err)

	_, err = auth.Login("customer@example.com", "salah")
	assert.Error(t, err)
}

func TestAuthService_ValidateTokenRejectsForeignSignature(t *testing.T) {
	profiles, _ := newProfileService()
	assert.NoError(t, profiles.SetPassword("rahasia123"))

	issuer := services.NewAuthService(profiles, "secret_a")
	verifier := services.NewAuthService(profiles, "secret_b")

	token, err := issuer.Login("customer@example.com", "rahasia123")
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
