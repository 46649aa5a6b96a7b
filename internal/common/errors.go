package common

import "errors"

// ErrorValidation marks failures raised by local input checks, before any
// network call is issued. Callers match it with errors.Is.
var ErrorValidation = errors.New("validation error")
