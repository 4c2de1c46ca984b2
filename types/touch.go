package types

// TouchPoint is one touch event as it travels over the wire and in recordings.
// Phase is one of started, moved, ended or cancelled.
type TouchPoint struct {
	ID    uint64  `json:"id" yaml:"id" plist:"id"`
	Phase string  `json:"phase" yaml:"phase" plist:"phase"`
	X     float64 `json:"x" yaml:"x" plist:"x"`
	Y     float64 `json:"y" yaml:"y" plist:"y"`
}

// DragResult is the drag consumed for one frame, with the view offset it produced.
type DragResult struct {
	Frame   uint64  `json:"frame"`
	Time    float32 `json:"time"`
	DX      float32 `json:"dx"`
	DY      float32 `json:"dy"`
	OffsetX float32 `json:"offsetX"`
	OffsetY float32 `json:"offsetY"`
	Fingers int     `json:"fingers"`
}
