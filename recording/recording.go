package recording

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mobile-next/touchdrag/gestures"
	"github.com/mobile-next/touchdrag/types"
	"gopkg.in/yaml.v3"
	"howett.net/plist"
)

// Recording is a captured touch stream split into rendered frames.
type Recording struct {
	Name   string
	Frames [][]gestures.TouchEvent
}

type fileFrame struct {
	Events []types.TouchPoint `json:"events" yaml:"events" plist:"events"`
}

type fileRecording struct {
	Name   string      `json:"name" yaml:"name" plist:"name"`
	Frames []fileFrame `json:"frames" yaml:"frames" plist:"frames"`
}

// Load reads a recording, choosing the decoder from the file extension:
// .json, .yaml/.yml or .plist (xml or binary).
func Load(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recording: %w", err)
	}

	var raw fileRecording
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		err = decoder.Decode(&raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".plist":
		_, err = plist.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("unsupported recording format %q for %s", ext, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode recording %s: %w", path, err)
	}

	rec := &Recording{
		Name:   raw.Name,
		Frames: make([][]gestures.TouchEvent, len(raw.Frames)),
	}
	if rec.Name == "" {
		rec.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	for i, f := range raw.Frames {
		events, err := ToEvents(f.Events)
		if err != nil {
			return nil, fmt.Errorf("%s: frame %d: %w", path, i, err)
		}
		rec.Frames[i] = events
	}

	return rec, nil
}

// ToEvents converts wire touch points into tracker events
func ToEvents(points []types.TouchPoint) ([]gestures.TouchEvent, error) {
	events := make([]gestures.TouchEvent, len(points))
	for i, p := range points {
		phase, err := gestures.ParsePhase(p.Phase)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events[i] = gestures.TouchEvent{
			ID:       p.ID,
			Phase:    phase,
			Position: gestures.Vec2{X: p.X, Y: p.Y},
		}
	}
	return events, nil
}

func (r *Recording) EventCount() int {
	n := 0
	for _, f := range r.Frames {
		n += len(f)
	}
	return n
}
