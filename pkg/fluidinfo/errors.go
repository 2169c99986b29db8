package fluidinfo

import (
	"errors"
	"fmt"
)

var (
	// ErrMimeRequired is wrapped by an EncodingError when a tag-value body
	// is not primitive and no mime type was given.
	ErrMimeRequired = errors.New("a mime type is required for opaque tag-values")

	// ErrUnsupportedMethod is returned for methods other than GET, POST,
	// PUT, DELETE and HEAD.
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")
)

// EncodingError reports a request body that could not be encoded.
// It is always returned before any network I/O.
type EncodingError struct {
	Method string
	Path   string
	Err    error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("fluidinfo: encoding %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// TransportError reports a failure of the HTTP transport itself
// (connection refused, DNS failure, timeout).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fluidinfo: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodingError reports a response declared as JSON whose body is not.
// Status and Raw are kept so the caller can still inspect the reply.
type DecodingError struct {
	StatusCode  int
	ContentType string
	Raw         []byte
	Err         error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("fluidinfo: decoding %s response (status %d): %v", e.ContentType, e.StatusCode, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }
