package middleware

// Keys stored on the gin context by this package.
const (
	// RequestIDKey holds the request ID (string).
	RequestIDKey = "request_id"
	// AdminIDKey holds the subject of a verified admin token (string).
	AdminIDKey = "admin_id"
)
