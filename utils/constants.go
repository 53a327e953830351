// File: utils/constants.go
package utils

// Gin context keys set by the auth middleware.
const (
	ContextAdminKey     = "admin"
	ContextLoggerKey    = "logger"
	ContextRequestIDKey = "requestID"
)

// RequestIDHeader carries the per-request id on responses.
const RequestIDHeader = "X-Request-ID"
