package gestures

import "sort"

// FingerState is the motion state of one finger that is currently down.
type FingerState struct {
	Position Vec2
	// PendingMotion holds the delta of the most recent move since the last
	// ConsumeDrag. A later move replaces it rather than adding to it.
	PendingMotion Vec2
}

func newFingerState(position Vec2) *FingerState {
	return &FingerState{Position: position}
}

func (f *FingerState) moveTo(position Vec2) {
	f.PendingMotion = position.Sub(f.Position)
	f.Position = position
}

// Tracker aggregates per-finger touch events into a single drag vector.
// It is not safe for concurrent use, see Guarded.
type Tracker struct {
	fingers map[uint64]*FingerState
}

func NewTracker() *Tracker {
	return &Tracker{
		fingers: make(map[uint64]*FingerState),
	}
}

// Ingest applies one touch event. It accepts any event: moves and ends for
// fingers that are not down are ignored, and a repeated start re-arms the finger.
func (t *Tracker) Ingest(event TouchEvent) {
	switch event.Phase {
	case Started:
		t.fingers[event.ID] = newFingerState(event.Position)
	case Moved:
		if finger, ok := t.fingers[event.ID]; ok {
			finger.moveTo(event.Position)
		}
	case Ended, Cancelled:
		delete(t.fingers, event.ID)
	}
}

// IngestAll applies events in order.
func (t *Tracker) IngestAll(events []TouchEvent) {
	for _, event := range events {
		t.Ingest(event)
	}
}

// ConsumeDrag returns the mean pending motion of all fingers that are down and
// zeroes every finger's pending motion. With no fingers down it returns a zero drag.
func (t *Tracker) ConsumeDrag() Drag {
	if len(t.fingers) == 0 {
		return Drag{}
	}

	var sum Vec2
	for _, finger := range t.fingers {
		sum = sum.Add(finger.PendingMotion)
		finger.PendingMotion = Vec2{}
	}

	n := float64(len(t.fingers))
	return Drag{
		DX: float32(sum.X / n),
		DY: float32(sum.Y / n),
	}
}

// FingerCount returns the number of fingers currently down.
func (t *Tracker) FingerCount() int {
	return len(t.fingers)
}

// Fingers returns a copy of every tracked finger, ordered by id.
func (t *Tracker) Fingers() []Finger {
	result := make([]Finger, 0, len(t.fingers))
	for id, finger := range t.fingers {
		result = append(result, Finger{
			ID:            id,
			Position:      finger.Position,
			PendingMotion: finger.PendingMotion,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Reset forgets every finger.
func (t *Tracker) Reset() {
	t.fingers = make(map[uint64]*FingerState)
}
