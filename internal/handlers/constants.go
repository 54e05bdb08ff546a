package handlers

const (
	SessionCookieName = "quiz_session_id"

	ErrInvalidRequestBody  = "Invalid request body"
	ErrUnknownLevel        = "Unknown level"
	ErrInternalServerError = "Internal server error"
	ErrTooManyRequests     = "Too many requests"
)
