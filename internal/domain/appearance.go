package domain

import (
	"fmt"
	"strings"
)

// AppearanceKey is the preference key the appearance choice is stored under.
const AppearanceKey = "selectedAppearance"

// Appearance is the user's display theme preference.
type Appearance string

const (
	AppearanceLight  Appearance = "light"
	AppearanceDark   Appearance = "dark"
	AppearanceSystem Appearance = "system"
)

// ValidAppearances lists the choices in menu order.
var ValidAppearances = []Appearance{
	AppearanceLight,
	AppearanceDark,
	AppearanceSystem,
}

// ValidateAppearance checks if a string is a valid appearance.
func ValidateAppearance(s string) (Appearance, error) {
	a := Appearance(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range ValidAppearances {
		if a == valid {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of light, dark, system", ErrInvalidAppearance, s)
}

// Next returns the following appearance in menu order, wrapping around.
func (a Appearance) Next() Appearance {
	for i, v := range ValidAppearances {
		if v == a {
			return ValidAppearances[(i+1)%len(ValidAppearances)]
		}
	}
	return AppearanceSystem
}

// Label returns a human-readable label.
func (a Appearance) Label() string {
	switch a {
	case AppearanceLight:
		return "Light"
	case AppearanceDark:
		return "Dark"
	case AppearanceSystem:
		return "System"
	default:
		return "Unknown"
	}
}

// Scheme is the concrete color scheme a display renders with.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// Resolve maps the preference to a scheme; system defers to platformDefault.
func (a Appearance) Resolve(platformDefault Scheme) Scheme {
	switch a {
	case AppearanceLight:
		return SchemeLight
	case AppearanceDark:
		return SchemeDark
	default:
		return platformDefault
	}
}
