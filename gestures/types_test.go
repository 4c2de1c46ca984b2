package gestures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhase(t *testing.T) {
	tests := []struct {
		input   string
		want    Phase
		wantErr bool
	}{
		{"started", Started, false},
		{"Moved", Moved, false},
		{" ENDED ", Ended, false},
		{"cancelled", Cancelled, false},
		{"canceled", Cancelled, false},
		{"hover", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePhase(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "moved", Moved.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
}
