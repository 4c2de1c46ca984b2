package frame

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mobile-next/touchdrag/gestures"
)

// DragSource yields the drag accumulated since its previous call.
type DragSource interface {
	ConsumeDrag() gestures.Drag
}

// Frame is what the loop reports after each step.
type Frame struct {
	Index   uint64  `json:"frame"`
	Time    float32 `json:"time"`
	DX      float32 `json:"dx"`
	DY      float32 `json:"dy"`
	OffsetX float32 `json:"offsetX"`
	OffsetY float32 `json:"offsetY"`
}

// Loop consumes exactly one drag per step and applies it to its view.
// Step may be called from several goroutines; each call is one frame.
type Loop struct {
	source DragSource
	view   *View
	clock  *Clock

	mu    sync.Mutex
	index uint64
}

func NewLoop(source DragSource, view *View, clock *Clock) *Loop {
	if view == nil {
		view = NewView(1, 0)
	}
	if clock == nil {
		clock = NewClock(DefaultSpeed)
	}
	return &Loop{
		source: source,
		view:   view,
		clock:  clock,
	}
}

// Step runs a single frame at the given instant.
func (l *Loop) Step(now time.Time) Frame {
	l.mu.Lock()
	defer l.mu.Unlock()

	drag := l.source.ConsumeDrag()
	animTime := l.clock.Advance(now)
	l.view.Apply(drag)

	f := Frame{
		Index:   l.index,
		Time:    animTime,
		DX:      drag.DX,
		DY:      drag.DY,
		OffsetX: l.view.OffsetX,
		OffsetY: l.view.OffsetY,
	}
	l.index++
	return f
}

// Run steps the loop fps times per second until ctx is done or onFrame returns false.
func (l *Loop) Run(ctx context.Context, fps int, onFrame func(Frame) bool) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			f := l.Step(now)
			if onFrame != nil && !onFrame(f) {
				return nil
			}
		}
	}
}
