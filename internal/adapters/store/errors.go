package store

import "errors"

// Sentinel kinds for store errors.
var (
	ErrRequestFailed  = errors.New("store request failed")
	ErrDecodeResponse = errors.New("store response decode failed")
)
