package set

import (
	"testing"

	"github.com/hnimtadd/gridsel/selection/area"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeReceivesChanges(t *testing.T) {
	s := newSet()
	var changes []Change
	sub := s.Subscribe(func(c Change) { changes = append(changes, c) })

	a := row(t, 0, 1)
	require.NoError(t, s.AddArea(a))
	require.NoError(t, s.AddArea(row(t, 1, 1)))
	require.NoError(t, s.ToggleCell(0, 0))
	s.Clear()

	require.Len(t, changes, 4)
	assert.Equal(t, []area.Area{a}, changes[0].Added)
	assert.Empty(t, changes[0].Removed)
	assert.Equal(t, []area.Area{a}, changes[1].Removed)
	assert.Equal(t, 2, changes[1].Added[0].Height)
	assert.Len(t, changes[2].Added, 1)
	assert.True(t, changes[3].Cleared)

	sub.Cancel()
	sub.Cancel()
	require.NoError(t, s.AddArea(a))
	assert.Len(t, changes, 4)
}

func TestRejectedMutationDoesNotNotify(t *testing.T) {
	s := newSet()
	calls := 0
	s.Subscribe(func(Change) { calls++ })
	assert.Error(t, s.ToggleCell(20, 0))
	require.NoError(t, s.RemoveArea(row(t, 0, 1)))
	assert.Equal(t, 0, calls)
}

func TestListenerMayCancelWhileNotified(t *testing.T) {
	s := newSet()
	var first, second int
	var sub *Subscription
	sub = s.Subscribe(func(Change) {
		first++
		sub.Cancel()
	})
	s.Subscribe(func(Change) { second++ })

	require.NoError(t, s.AddArea(row(t, 0, 1)))
	require.NoError(t, s.AddArea(row(t, 3, 1)))
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestClearEmptySetDoesNotNotify(t *testing.T) {
	s := newSet()
	calls := 0
	s.Subscribe(func(Change) { calls++ })

	s.Clear()
	assert.Equal(t, 0, calls)

	require.NoError(t, s.AddArea(row(t, 0, 1)))
	s.Clear()
	s.Clear()
	assert.Equal(t, 2, calls)
}
