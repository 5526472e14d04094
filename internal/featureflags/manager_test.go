package featureflags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerEnabled(t *testing.T) {
	m := NewManager("monthly_calendar=on, weekly_insights=off ,rollout=50%,bad")

	assert.True(t, m.Enabled("monthly_calendar", 1))
	assert.True(t, m.Enabled("MONTHLY_CALENDAR", 1))
	assert.False(t, m.Enabled("weekly_insights", 1))
	assert.False(t, m.Enabled("unknown", 1))
	assert.False(t, m.Enabled("bad", 1))
}

func TestManagerRollout(t *testing.T) {
	m := NewManager("beta=100%,never=0%")

	assert.True(t, m.Enabled("beta", 7))
	assert.False(t, m.Enabled("never", 7))

	// Percentage rollout is deterministic per user.
	half := NewManager("half=50%")
	first := half.Enabled("half", 42)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, half.Enabled("half", 42))
	}

	// Anonymous users are excluded from partial rollouts.
	assert.False(t, half.Enabled("half", 0))
}

func TestManagerSnapshot(t *testing.T) {
	m := NewManager("a=on,b=off")
	snap := m.Snapshot(1)
	assert.Equal(t, map[string]bool{"a": true, "b": false}, snap)
}
