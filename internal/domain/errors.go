package domain

import "errors"

// ErrNotFound is returned by service functions when the target of an update
// does not exist in the document (vote toggle, pack item patch).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails validation
// (missing required field, invalid category, negative amount, empty split set).
// Validation always runs before any store access, so a validation failure
// never touches the document. Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")
