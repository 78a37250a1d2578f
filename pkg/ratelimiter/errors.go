package ratelimiter

import "errors"

// ErrInvalidConfig indicates that the provided configuration is invalid.
var ErrInvalidConfig = errors.New("invalid rate limit configuration")
