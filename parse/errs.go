package parse

import "errors"

// ErrMalformedDocument is wrapped by every error caused by input that is not
// a well formed document.
var ErrMalformedDocument = errors.New("malformed document")
