package types

// Error represents error information in API responses
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorResponse creates an error API response
func ErrorResponse(code, message, details string) Response {
	return Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// NotFoundErrorResponse creates a not found error response
func NotFoundErrorResponse(resource string) Response {
	return ErrorResponse("NOT_FOUND", "Resource not found", resource+" not found")
}

// InternalErrorResponse creates an internal server error response
func InternalErrorResponse() Response {
	return ErrorResponse("INTERNAL_ERROR", "Internal server error", "")
}

// UpstreamErrorResponse creates a response for a failed catalog call.
// The underlying cause is logged, never returned.
func UpstreamErrorResponse() Response {
	return ErrorResponse("UPSTREAM_ERROR", "Catalog service unavailable", "")
}

// ValidationErrorResponse creates a bad request response for invalid input
func ValidationErrorResponse(details string) Response {
	return ErrorResponse("VALIDATION_ERROR", "Invalid request parameters", details)
}
