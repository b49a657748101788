package outline

// ErrorKind classifies an API or transport failure.
type ErrorKind int

const (
	// KindAPI is a server-side error that doesn't fit a more specific kind.
	KindAPI ErrorKind = iota
	// KindValidation is a 400 response.
	KindValidation
	// KindAuth is a 401 response.
	KindAuth
	// KindPermission is a 403 response.
	KindPermission
	// KindNotFound is a 404 response.
	KindNotFound
	// KindRateLimit is a 429 response.
	KindRateLimit
	// KindConnection is a transport failure before any response arrived.
	KindConnection
	// KindTimeout is a request that exceeded the configured timeout.
	KindTimeout
)

// Error represents a classified failure from the Outline API or the
// transport beneath it.
type Error struct {
	Kind       ErrorKind
	StatusCode int // 0 for transport-level failures
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// IsNotFound returns true if the error is a not found error.
func (e *Error) IsNotFound() bool {
	return e.Kind == KindNotFound
}

// IsAuth returns true if the error is an authentication error.
func (e *Error) IsAuth() bool {
	return e.Kind == KindAuth
}

// IsRateLimit returns true if the error is a rate limit error.
func (e *Error) IsRateLimit() bool {
	return e.Kind == KindRateLimit
}

// ExitCode maps the error to a process exit code: the HTTP status when one
// is present and representable, otherwise 1.
func (e *Error) ExitCode() int {
	if e.StatusCode > 0 && e.StatusCode < 128 {
		return e.StatusCode
	}
	return 1
}
