package errors

import "fmt"

var (
	// Tokens
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenIsNotAccess     = fmt.Errorf("token is not an access token")

	// Authorization
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("authorization header has an invalid format")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUnauthorized       = fmt.Errorf("unauthorized")

	// Context
	ErrUserNotFoundInContext = fmt.Errorf("user not found in request context")

	// Common
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")
)

// InvalidInputError is a user-correctable validation failure. It is reported
// before anything is written.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// ConsistencyError marks a multi-step write that failed partway. Step names
// which write failed so stored-data drift can be reconciled by hand. It must
// never be collapsed into a generic validation or collaborator error.
type ConsistencyError struct {
	Step string
	Err  error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("consistency failure at step %q: %v", e.Step, e.Err)
}

func (e *ConsistencyError) Unwrap() error { return e.Err }

func NewConsistencyError(step string, err error) error {
	return &ConsistencyError{Step: step, Err: err}
}

// HttpError carries an HTTP status plus optional diagnostic context for the
// error response writer.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: context,
	}
}
