package config

import (
	"errors"
)

// Sentinel error kinds for this package, so callers can errors.Is on the
// difference between a broken source and a missing required setting.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
