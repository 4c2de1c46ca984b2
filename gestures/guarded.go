package gestures

import "sync"

// Guarded is a Tracker shared between an input goroutine and a frame loop.
// One mutex covers the whole tracker; it is held only for the duration of each call.
type Guarded struct {
	mu      sync.Mutex
	tracker *Tracker
}

func NewGuarded() *Guarded {
	return &Guarded{
		tracker: NewTracker(),
	}
}

func (g *Guarded) Ingest(event TouchEvent) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tracker.Ingest(event)
}

// IngestAll applies events in order under a single lock acquisition, so a
// concurrent ConsumeDrag sees either none or all of them.
func (g *Guarded) IngestAll(events []TouchEvent) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tracker.IngestAll(events)
}

func (g *Guarded) ConsumeDrag() Drag {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tracker.ConsumeDrag()
}

func (g *Guarded) FingerCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tracker.FingerCount()
}

func (g *Guarded) Fingers() []Finger {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tracker.Fingers()
}

func (g *Guarded) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tracker.Reset()
}
