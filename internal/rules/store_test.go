package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreFlagRoundsToNonzero(t *testing.T) {
	s := NewStore()
	s.Rebuild(map[string]float64{KeyFourFingers: 1})
	assert.True(t, s.Flag(KeyFourFingers))
	assert.False(t, s.Flag(KeyShortcut))
}

func TestStoreDirtyTracking(t *testing.T) {
	s := NewStore()
	assert.True(t, s.Dirty())
	s.Rebuild(map[string]float64{})
	assert.False(t, s.Dirty())
	s.MarkDirty()
	assert.True(t, s.Dirty())
}

func TestSnapshotIsDefensiveCopy(t *testing.T) {
	s := NewStore()
	s.Rebuild(map[string]float64{"x": 1})
	snap := s.Snapshot()
	snap["x"] = 99
	assert.Equal(t, 1.0, s.Get("x"))
}
