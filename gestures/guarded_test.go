package gestures

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuarded_IngestAllAppliesInOrder(t *testing.T) {
	g := NewGuarded()
	g.IngestAll([]TouchEvent{
		start(1, 0, 0),
		move(1, 10, 0),
		move(1, 10, 10),
	})

	assert.Equal(t, 1, g.FingerCount())
	assert.Equal(t, Drag{DX: 0, DY: 10}, g.ConsumeDrag())
}

func TestGuarded_ConcurrentIngestAndConsume(t *testing.T) {
	g := NewGuarded()
	g.Ingest(start(1, 0, 0))

	const moves = 1000
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 1; i <= moves; i++ {
			g.Ingest(move(1, float64(i), 0))
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < moves; i++ {
			drag := g.ConsumeDrag()
			// every move is exactly one unit, so a frame sees either one move or none
			assert.True(t, drag.DX == 0 || drag.DX == 1, "unexpected dx %v", drag.DX)
			_ = g.Fingers()
		}
	}()

	wg.Wait()
	assert.Equal(t, 1, g.FingerCount())
	assert.Equal(t, float64(moves), g.Fingers()[0].Position.X)
}

func TestGuarded_Reset(t *testing.T) {
	g := NewGuarded()
	g.IngestAll([]TouchEvent{start(1, 0, 0), start(2, 0, 0)})
	g.Reset()
	assert.Equal(t, 0, g.FingerCount())
}
