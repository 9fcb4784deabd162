package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrNoRecipes        = errors.New("no recognized recipe files found")
	ErrInvalidSelection = errors.New("invalid ingredient selection")
)
