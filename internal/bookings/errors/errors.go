package errors

import "errors"

// ErrNotFound is the repository-level miss. The service layer maps it
// onto the HTTP error taxonomy.
var ErrNotFound = errors.New("reservation not found")
