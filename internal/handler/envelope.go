package handler

import "time"

// Envelope is the uniform wrapper for every API response. Exactly one of
// Data/Error is set, matching Success; use the constructors below to keep
// that invariant.
type Envelope struct {
	Success   bool       `json:"success"`
	Data      any        `json:"data,omitempty"`
	Error     *ErrorBody `json:"error,omitempty"`
	Timestamp string     `json:"timestamp"`
}

type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
	Details string `json:"details,omitempty"`
}

func successEnvelope(data any) Envelope {
	return Envelope{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func errorEnvelope(body ErrorBody) Envelope {
	return Envelope{
		Success:   false,
		Error:     &body,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
