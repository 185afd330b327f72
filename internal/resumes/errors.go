package resumes

import "errors"

// ErrNotFound indicates the requested resume or analysis does not exist.
var ErrNotFound = errors.New("not found")
