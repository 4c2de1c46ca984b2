package commands

import (
	"fmt"

	"github.com/mobile-next/touchdrag/sessions"
)

// SessionCreateRequest represents the parameters for creating a session
type SessionCreateRequest struct {
	Name        string  `json:"name,omitempty"`
	Speed       float32 `json:"speed,omitempty"`
	Sensitivity float32 `json:"sensitivity,omitempty"`
	Bounds      float32 `json:"bounds,omitempty"`
}

// SessionCreateCommand creates a new tracker session
func SessionCreateCommand(req SessionCreateRequest) *CommandResponse {
	if sessionRegistry == nil {
		return NewErrorResponse(fmt.Errorf("session registry is not initialized"))
	}

	if req.Bounds < 0 {
		return NewErrorResponse(fmt.Errorf("bounds must not be negative, got %v", req.Bounds))
	}

	s := sessionRegistry.Create(sessions.Options{
		Name:        req.Name,
		Speed:       req.Speed,
		Sensitivity: req.Sensitivity,
		Bounds:      req.Bounds,
	})

	return NewSuccessResponse(s.Info())
}

// SessionCloseCommand closes a tracker session
func SessionCloseCommand(sessionID string) *CommandResponse {
	if sessionID == "" {
		return NewErrorResponse(fmt.Errorf("session ID is required"))
	}

	if sessionRegistry == nil {
		return NewErrorResponse(fmt.Errorf("session registry is not initialized"))
	}

	if err := sessionRegistry.Close(sessionID); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Closed session %s", sessionID),
	})
}

// SessionListCommand lists the live sessions
func SessionListCommand() *CommandResponse {
	if sessionRegistry == nil {
		return NewErrorResponse(fmt.Errorf("session registry is not initialized"))
	}

	return NewSuccessResponse(map[string]interface{}{
		"sessions": sessionRegistry.List(),
	})
}
