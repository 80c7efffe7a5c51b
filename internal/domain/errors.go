package domain

import "errors"

var (
	ErrInvalidDuration    = errors.New("invalid duration")
	ErrCountdownRunning   = errors.New("countdown is running")
	ErrInvalidAppearance  = errors.New("invalid appearance")
	ErrInvalidMode        = errors.New("invalid mode")
	ErrPreferenceNotFound = errors.New("preference not found")
)
