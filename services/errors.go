package services

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidID     = errors.New("invalid id")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
