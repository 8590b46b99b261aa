package models

import "time"

// SendRequest is the body of a single-target send.
type SendRequest struct {
	Token    string            `json:"token"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data,omitempty"`
	ImageURL string            `json:"imageUrl,omitempty"`
}

// MulticastRequest is the body of a multi-target send. The provider fans the
// message out; this service issues a single multicast call.
type MulticastRequest struct {
	Tokens   []string          `json:"tokens"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data,omitempty"`
	ImageURL string            `json:"imageUrl,omitempty"`
}

// SendResponse is returned on a successful single send.
type SendResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Message   string `json:"message"`
}

// FailedToken reports a per-token delivery failure from a multicast call so
// the caller can prune or refresh dead tokens.
type FailedToken struct {
	Token string `json:"token"`
	Error string `json:"error"`
}

// MulticastResponse aggregates per-token outcomes of a multicast send.
// Partial failures still produce a 200 response.
type MulticastResponse struct {
	Success      bool          `json:"success"`
	SuccessCount int           `json:"successCount"`
	FailureCount int           `json:"failureCount"`
	FailedTokens []FailedToken `json:"failedTokens"`
	Message      string        `json:"message"`
}

// ErrorResponse is the JSON error envelope for all API failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
