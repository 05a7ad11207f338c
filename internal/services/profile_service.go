package services

import (
	"fmt"

	"freshherbal/internal/models"
	"freshherbal/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// defaultProfile is persisted on first access, matching the
// storefront's pre-filled demo customer.
var defaultProfile = models.Profile{
	Name:        "Pelanggan Fresh Herbal",
	Email:       "customer@example.com",
	Phone:       "081234567890",
	Address:     "Jl. Contoh No. 123, Jakarta",
	MemberSince: "Januari 2024",
}

// ProfileService owns the single customer record. Edits overwrite the
// record wholesale; MemberSince and the password hash survive edits
// that do not touch them.
type ProfileService struct {
	store repositories.BlobStore
}

// NewProfileService creates a new ProfileService.
func NewProfileService(store repositories.BlobStore) *ProfileService {
	return &ProfileService{
		store: store,
	}
}

// Get returns the profile, seeding and persisting the default record on
// first access.
func (s *ProfileService) Get() (models.Profile, error) {
	var profile models.Profile
	found, err := s.store.Load(repositories.ProfileKey, &profile)
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to load profile: %w", err)
	}
	if !found {
		profile = defaultProfile
		if err := s.store.Save(repositories.ProfileKey, profile); err != nil {
			return models.Profile{}, fmt.Errorf("failed to seed profile: %w", err)
		}
	}
	return profile, nil
}

// Update overwrites the profile with the given record. MemberSince and
// the stored password hash are carried over from the current record.
func (s *ProfileService) Update(updated models.Profile) (models.Profile, error) {
	current, err := s.Get()
	if err != nil {
		return models.Profile{}, err
	}

	updated.MemberSince = current.MemberSince
	updated.Password = current.Password
	if err := s.store.Save(repositories.ProfileKey, updated); err != nil {
		return models.Profile{}, fmt.Errorf("failed to save profile: %w", err)
	}
	return updated, nil
}

// SetPassword hashes and stores a new password. Passwords must be at
// least 6 characters.
func (s *ProfileService) SetPassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	profile, err := s.Get()
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	profile.Password = string(hashed)

	if err := s.store.Save(repositories.ProfileKey, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// VerifyPassword compares a candidate password against the stored hash.
func (s *ProfileService) VerifyPassword(password string) error {
	profile, err := s.Get()
	if err != nil {
		return err
	}
	if profile.Password == "" {
		return ErrNoPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		return fmt.Errorf("invalid credentials")
	}
	return nil
}
