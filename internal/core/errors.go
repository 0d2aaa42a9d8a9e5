package core

// Error codes for boundary failures.
const (
	ErrCodeInvalidArgument = "invalid_argument"
	ErrCodeNotFound        = "not_found"
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

// InvalidArgument reports a malformed input at a boundary.
func InvalidArgument(msg string) *CoreError {
	return &CoreError{Code: ErrCodeInvalidArgument, Message: msg}
}

// NotFound reports a reference to an identity that does not exist.
func NotFound(msg string) *CoreError {
	return &CoreError{Code: ErrCodeNotFound, Message: msg}
}
