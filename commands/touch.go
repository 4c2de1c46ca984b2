package commands

import (
	"fmt"
	"time"

	"github.com/mobile-next/touchdrag/recording"
	"github.com/mobile-next/touchdrag/types"
)

// TouchRequest represents the parameters for delivering touch events to a session
type TouchRequest struct {
	SessionID string             `json:"sessionId"`
	Events    []types.TouchPoint `json:"events"`
}

// DragRequest represents the parameters for consuming a session's drag
type DragRequest struct {
	SessionID string `json:"sessionId"`
}

// FingersRequest represents the parameters for inspecting a session's fingers
type FingersRequest struct {
	SessionID string `json:"sessionId"`
}

// TouchCommand delivers touch events, in order, to a session's tracker
func TouchCommand(req TouchRequest) *CommandResponse {
	if len(req.Events) == 0 {
		return NewErrorResponse(fmt.Errorf("events array is required and cannot be empty"))
	}

	s, err := FindSession(req.SessionID)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error finding session: %w", err))
	}

	events, err := recording.ToEvents(req.Events)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("invalid touch events: %w", err))
	}

	s.Tracker.IngestAll(events)

	return NewSuccessResponse(map[string]interface{}{
		"ingested": len(events),
		"fingers":  s.Tracker.FingerCount(),
	})
}

// DragCommand consumes the drag accumulated since the previous frame and
// applies it to the session's view
func DragCommand(req DragRequest) *CommandResponse {
	s, err := FindSession(req.SessionID)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error finding session: %w", err))
	}

	f := s.Loop.Step(time.Now())

	return NewSuccessResponse(types.DragResult{
		Frame:   f.Index,
		Time:    f.Time,
		DX:      f.DX,
		DY:      f.DY,
		OffsetX: f.OffsetX,
		OffsetY: f.OffsetY,
		Fingers: s.Tracker.FingerCount(),
	})
}

// FingersCommand reports the fingers currently down in a session
func FingersCommand(req FingersRequest) *CommandResponse {
	s, err := FindSession(req.SessionID)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error finding session: %w", err))
	}

	return NewSuccessResponse(map[string]interface{}{
		"fingers": s.Tracker.Fingers(),
	})
}
