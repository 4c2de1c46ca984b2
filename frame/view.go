package frame

import (
	"github.com/chewxy/math32"
	"github.com/mobile-next/touchdrag/gestures"
)

// View is a pannable viewport driven by consumed drags.
type View struct {
	OffsetX float32 `json:"offsetX"`
	OffsetY float32 `json:"offsetY"`

	// Sensitivity scales every drag before it is applied
	Sensitivity float32 `json:"sensitivity"`
	// Bounds limits each offset component to [-Bounds, Bounds], zero means unbounded
	Bounds float32 `json:"bounds"`
}

func NewView(sensitivity, bounds float32) *View {
	return &View{
		Sensitivity: sensitivity,
		Bounds:      bounds,
	}
}

func (v *View) Apply(drag gestures.Drag) {
	v.OffsetX = v.clamp(v.OffsetX + drag.DX*v.Sensitivity)
	v.OffsetY = v.clamp(v.OffsetY + drag.DY*v.Sensitivity)
}

func (v *View) clamp(value float32) float32 {
	if v.Bounds <= 0 {
		return value
	}
	return math32.Max(-v.Bounds, math32.Min(v.Bounds, value))
}
