package dto

import "time"

// ErrorResponse is the standardized JSON error envelope returned by all
// endpoints and middlewares.
//
// Fields:
//   - Message: human-readable description of what went wrong.
//   - ErrorDetails: optional underlying error text (omitted when empty).
//   - Timestamp: when the error response was built.
type ErrorResponse struct {
	Message      string    `json:"message" example:"crop is required"`
	ErrorDetails string    `json:"error,omitempty" example:"invalid syntax"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error list.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
//
// Parameters:
//   - message (string): human-readable description.
//   - err (error): underlying cause; may be nil.
//
// Returns:
//   - ErrorResponse: envelope ready to be serialized as JSON.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
