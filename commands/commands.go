package commands

import (
	"fmt"

	"github.com/mobile-next/touchdrag/sessions"
)

// CommandResponse represents a standardized response format for all commands
type CommandResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) *CommandResponse {
	return &CommandResponse{
		Status: "ok",
		Data:   data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(err error) *CommandResponse {
	return &CommandResponse{
		Status: "error",
		Error:  err.Error(),
	}
}

// sessionRegistry holds the live tracker sessions.
// It is set once at application startup via SetRegistry.
var sessionRegistry *sessions.Registry

// SetRegistry sets the global session registry.
// This should be called once at application startup (main.go or server start).
// The registry is cleared on graceful shutdown (SIGINT/SIGTERM).
func SetRegistry(registry *sessions.Registry) {
	sessionRegistry = registry
}

// GetRegistry returns the current session registry.
// Returns nil if SetRegistry has not been called yet.
func GetRegistry() *sessions.Registry {
	return sessionRegistry
}

// FindSession looks up a session by ID in the global registry
func FindSession(sessionID string) (*sessions.Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID is required")
	}

	if sessionRegistry == nil {
		return nil, fmt.Errorf("session registry is not initialized")
	}

	return sessionRegistry.Get(sessionID)
}
