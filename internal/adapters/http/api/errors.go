package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrValidation    = errors.New("validation failed")
	ErrInvalidRecord = errors.New("invalid stored record")
)

// Wrap annotates err with the operation that produced it.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// NewKind returns the sentinel kind tagged with an operation.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind tags err with both the operation and a sentinel kind, so callers
// can errors.Is on the kind while keeping the cause.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
