package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/ports"
)

// AppearanceService reads and writes the persisted appearance preference.
type AppearanceService struct {
	prefs           ports.PreferenceStore
	platformDefault func() domain.Scheme
}

// NewAppearanceService creates an appearance service. platformDefault decides
// the scheme used for the system preference; nil means light.
func NewAppearanceService(prefs ports.PreferenceStore, platformDefault func() domain.Scheme) *AppearanceService {
	if platformDefault == nil {
		platformDefault = func() domain.Scheme { return domain.SchemeLight }
	}
	return &AppearanceService{prefs: prefs, platformDefault: platformDefault}
}

// Get returns the stored preference, defaulting to system when nothing valid is stored.
func (s *AppearanceService) Get(ctx context.Context) (domain.Appearance, error) {
	raw, err := s.prefs.Get(ctx, domain.AppearanceKey)
	if errors.Is(err, domain.ErrPreferenceNotFound) {
		return domain.AppearanceSystem, nil
	}
	if err != nil {
		return domain.AppearanceSystem, fmt.Errorf("failed to read appearance: %w", err)
	}

	a, err := domain.ValidateAppearance(raw)
	if err != nil {
		return domain.AppearanceSystem, nil
	}
	return a, nil
}

// Set validates and stores the preference.
func (s *AppearanceService) Set(ctx context.Context, a domain.Appearance) error {
	valid, err := domain.ValidateAppearance(string(a))
	if err != nil {
		return err
	}
	if err := s.prefs.Set(ctx, domain.AppearanceKey, string(valid)); err != nil {
		return fmt.Errorf("failed to save appearance: %w", err)
	}
	return nil
}

// Cycle stores and returns the next appearance in menu order.
func (s *AppearanceService) Cycle(ctx context.Context) (domain.Appearance, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return current, err
	}
	next := current.Next()
	if err := s.Set(ctx, next); err != nil {
		return current, err
	}
	return next, nil
}

// Effective resolves the stored preference to a concrete scheme.
func (s *AppearanceService) Effective(ctx context.Context) (domain.Scheme, error) {
	a, err := s.Get(ctx)
	if err != nil {
		return s.platformDefault(), err
	}
	return s.Resolve(a), nil
}

// Resolve maps a preference to a scheme using the platform default for system.
func (s *AppearanceService) Resolve(a domain.Appearance) domain.Scheme {
	return a.Resolve(s.platformDefault())
}
