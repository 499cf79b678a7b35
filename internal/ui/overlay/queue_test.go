package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sowon/internal/core/input"
	"sowon/internal/logger"
)

func TestQueueDrainKeepsOrder(t *testing.T) {
	queue := NewQueue(logger.Discard())
	assert.Empty(t, queue.Drain())

	queue.Push(input.Press(input.KeyZoomIn))
	queue.Push(input.Close())

	assert.Equal(t, []input.Event{input.Press(input.KeyZoomIn), input.Close()}, queue.Drain())
	assert.Empty(t, queue.Drain())
}

func TestQueueDropsWhenFull(t *testing.T) {
	queue := NewQueue(nil)
	for i := 0; i < queueCapacity+10; i++ {
		queue.Push(input.Press(input.KeyTogglePause))
	}
	assert.Len(t, queue.Drain(), queueCapacity)
}
