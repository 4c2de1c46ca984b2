package gestures

import (
	"fmt"
	"strings"
)

// Vec2 is a position or motion in the input layer's coordinate space.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Phase is the lifecycle transition a touch event reports for one finger.
type Phase int

const (
	Started Phase = iota
	Moved
	Ended
	Cancelled
)

var phaseNames = map[Phase]string{
	Started:   "started",
	Moved:     "moved",
	Ended:     "ended",
	Cancelled: "cancelled",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// ParsePhase converts a phase name, case-insensitively, into a Phase
func ParsePhase(name string) (Phase, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for p, n := range phaseNames {
		if n == lower {
			return p, nil
		}
	}

	// "canceled" shows up in some input layers
	if lower == "canceled" {
		return Cancelled, nil
	}

	return 0, fmt.Errorf("unknown touch phase: %q", name)
}

// TouchEvent is one phase transition of one finger, as delivered by the input layer.
// ID stays stable for the lifetime of a touch contact.
type TouchEvent struct {
	ID       uint64
	Phase    Phase
	Position Vec2
}

// Drag is the aggregated motion handed to the per-frame consumer.
type Drag struct {
	DX float32 `json:"dx"`
	DY float32 `json:"dy"`
}

// Finger is a read-only copy of one tracked finger.
type Finger struct {
	ID            uint64 `json:"id"`
	Position      Vec2   `json:"position"`
	PendingMotion Vec2   `json:"pendingMotion"`
}
