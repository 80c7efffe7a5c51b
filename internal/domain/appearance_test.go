package domain

import (
	"errors"
	"testing"
)

func TestValidateAppearance(t *testing.T) {
	tests := []struct {
		in      string
		want    Appearance
		wantErr bool
	}{
		{"light", AppearanceLight, false},
		{"Dark", AppearanceDark, false},
		{" system ", AppearanceSystem, false},
		{"sepia", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ValidateAppearance(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAppearance) {
					t.Errorf("ValidateAppearance(%q) error = %v, want ErrInvalidAppearance", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ValidateAppearance(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestAppearance_Resolve(t *testing.T) {
	if got := AppearanceLight.Resolve(SchemeDark); got != SchemeLight {
		t.Errorf("light.Resolve() = %v, want light", got)
	}
	if got := AppearanceDark.Resolve(SchemeLight); got != SchemeDark {
		t.Errorf("dark.Resolve() = %v, want dark", got)
	}
	if got := AppearanceSystem.Resolve(SchemeDark); got != SchemeDark {
		t.Errorf("system.Resolve(dark) = %v, want dark", got)
	}
	if got := AppearanceSystem.Resolve(SchemeLight); got != SchemeLight {
		t.Errorf("system.Resolve(light) = %v, want light", got)
	}
}

func TestAppearance_Next(t *testing.T) {
	if got := AppearanceLight.Next(); got != AppearanceDark {
		t.Errorf("light.Next() = %v, want dark", got)
	}
	if got := AppearanceDark.Next(); got != AppearanceSystem {
		t.Errorf("dark.Next() = %v, want system", got)
	}
	if got := AppearanceSystem.Next(); got != AppearanceLight {
		t.Errorf("system.Next() = %v, want light", got)
	}
}

func TestNewCompletion(t *testing.T) {
	c := NewCompletion(90)
	if c.ID == "" {
		t.Error("NewCompletion() ID is empty")
	}
	if c.TargetSeconds != 90 {
		t.Errorf("TargetSeconds = %d, want 90", c.TargetSeconds)
	}
	if c.CompletedAt.IsZero() {
		t.Error("CompletedAt is zero")
	}
}
