// models/common_models.go
package models

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error      string       `json:"error"`                // User-friendly error message
	Details    []FieldError `json:"details,omitempty"`    // Field-level validation problems
	RetryAfter int          `json:"retryAfter,omitempty"` // Seconds to wait before retrying, on 429
}

// FieldError describes one invalid request field, named as in the JSON body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
