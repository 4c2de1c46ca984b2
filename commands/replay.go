package commands

import (
	"fmt"

	"github.com/mobile-next/touchdrag/gestures"
	"github.com/mobile-next/touchdrag/recording"
)

// ReplayRequest represents the parameters for replaying a recording
type ReplayRequest struct {
	Path string `json:"path"`
}

// ReplayResponse is the per-frame drag output of a replay
type ReplayResponse struct {
	Name    string             `json:"name"`
	Frames  int                `json:"frames"`
	Events  int                `json:"events"`
	Total   gestures.Drag      `json:"total"`
	Samples []recording.Sample `json:"samples"`
}

// ReplayCommand replays a recording into a fresh tracker, one drag per frame
func ReplayCommand(req ReplayRequest) *CommandResponse {
	if req.Path == "" {
		return NewErrorResponse(fmt.Errorf("recording path is required"))
	}

	rec, err := recording.Load(req.Path)
	if err != nil {
		return NewErrorResponse(err)
	}

	samples := recording.Replay(rec, gestures.NewTracker())

	return NewSuccessResponse(ReplayResponse{
		Name:    rec.Name,
		Frames:  len(rec.Frames),
		Events:  rec.EventCount(),
		Total:   recording.Total(samples),
		Samples: samples,
	})
}
