package arena_test

import (
	"testing"

	"github.com/flitlang/flitc/internal/arena"
	"github.com/stretchr/testify/require"
)

func TestAllocBumpsUsed(t *testing.T) {
	a := arena.New(1024)
	require.Equal(t, 0, a.Used())

	type node struct{ x, y int64 }
	n := arena.Alloc[node](a)
	require.NotNil(t, n)
	require.Equal(t, 16, a.Used())
}

func TestAllocPanicsWhenCapacityExhausted(t *testing.T) {
	a := arena.New(4)
	require.Panics(t, func() {
		arena.Alloc[int64](a)
	})
}
