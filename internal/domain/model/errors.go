package model

import "errors"

// Sentinel kinds for item validation errors.
var (
	ErrInvalidItem     = errors.New("invalid item")
	ErrInvalidCategory = errors.New("invalid category")
)
