package domain

import "errors"

// Sentinel errors returned by services and repositories. The HTTP error
// handler maps each to its status code; see internal/api/error_handler.go.
var (
	// ErrInvalidCredentials covers both "no such user" and "wrong
	// password" so the two are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is the single opaque outcome for any session
	// token failure: missing, malformed, bad signature, or expired.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means a valid session with an insufficient role. It is
	// surfaced to clients with the same body as ErrUnauthenticated.
	ErrForbidden = errors.New("forbidden")

	ErrCsrfInvalid = errors.New("csrf token invalid")
	ErrRateLimited = errors.New("too many attempts")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("username already taken")
	ErrEmailExists  = errors.New("email already taken")

	// ErrSelfDelete rejects deleting the credential bound to the
	// caller's own active session.
	ErrSelfDelete = errors.New("cannot delete own account")

	ErrNotFound = errors.New("not found")
)

// FieldError reports a single malformed input field. It is surfaced to
// clients as a 400 with the field-level message.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

