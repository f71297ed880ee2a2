package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrPlayerRequired = errors.New("player name is required")
	ErrNoResults      = errors.New("play needs at least one named result")
)
