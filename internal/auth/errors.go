package auth

// AuthError is the only error class surfaced to users. Message must be
// readable as-is; Status is the backend's HTTP status, or 0 when the
// backend could not be reached.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func newAuthError(status int, message string) *AuthError {
	if message == "" {
		message = "authentication failed"
	}
	return &AuthError{Status: status, Message: message}
}
