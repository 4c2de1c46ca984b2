package recording

import (
	"github.com/mobile-next/touchdrag/gestures"
)

// Target is what a recording is replayed into
type Target interface {
	IngestAll(events []gestures.TouchEvent)
	ConsumeDrag() gestures.Drag
	FingerCount() int
}

// Sample is the drag consumed after one recorded frame
type Sample struct {
	Frame   int           `json:"frame"`
	Drag    gestures.Drag `json:"drag"`
	Fingers int           `json:"fingers"`
}

// Replay ingests each frame's events in order and consumes one drag per frame.
func Replay(rec *Recording, target Target) []Sample {
	samples := make([]Sample, 0, len(rec.Frames))
	for i, events := range rec.Frames {
		target.IngestAll(events)
		samples = append(samples, Sample{
			Frame:   i,
			Drag:    target.ConsumeDrag(),
			Fingers: target.FingerCount(),
		})
	}
	return samples
}

// Total sums the drags of every sample
func Total(samples []Sample) gestures.Drag {
	var total gestures.Drag
	for _, s := range samples {
		total.DX += s.Drag.DX
		total.DY += s.Drag.DY
	}
	return total
}
