package shutdown

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"practice-tracker/internal/logger"
)

func TestShutdownRunsHooksInReverseOrder(t *testing.T) {
	m := NewManager(logger.Nop())

	var order []string
	m.Register("first", func() { order = append(order, "first") })
	m.Register("second", func() { order = append(order, "second") })

	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, order)

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed after shutdown")
	}
}

func TestShutdownRunsOnce(t *testing.T) {
	m := NewManager(logger.Nop())

	calls := 0
	m.Register("component", func() { calls++ })

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
}
