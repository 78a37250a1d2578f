package validator

import "errors"

// ErrValidationFailed matches any ValidationErrors value with errors.Is.
var ErrValidationFailed = errors.New("validation failed")
