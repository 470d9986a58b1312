package constellation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/zodiakos-go/internal/domain/constellation"
)

func TestTracker_RegisterAssignsIDAndColor(t *testing.T) {
	tracker := constellation.NewTracker()

	created := tracker.Register([][]int{{1, 2, 3}})

	require.Len(t, created, 1)
	assert.Equal(t, 0, created[0].ID)
	assert.Equal(t, []int{1, 2, 3}, created[0].Stars)
	assert.Equal(t, constellation.ColorForID(0), created[0].Color)
	assert.Equal(t, 1, tracker.Count())
}

func TestTracker_RegisterSameCycleOnce(t *testing.T) {
	tracker := constellation.NewTracker()

	tracker.Register([][]int{{1, 2, 3}})
	created := tracker.Register([][]int{{1, 2, 3}})

	assert.Empty(t, created)
	assert.Equal(t, 1, tracker.Count())
}

func TestTracker_MembershipIsExclusive(t *testing.T) {
	// A cycle sharing any star with an existing constellation is skipped
	tracker := constellation.NewTracker()

	first := tracker.Register([][]int{{1, 2, 3}})
	require.Len(t, first, 1)

	second := tracker.Register([][]int{{3, 4, 5}})

	assert.Empty(t, second)
	assert.False(t, tracker.IsMember(4))
	assert.Equal(t, 1, tracker.Count())
}

func TestTracker_FirstComeFirstServedWithinBatch(t *testing.T) {
	tracker := constellation.NewTracker()

	created := tracker.Register([][]int{
		{1, 2, 3},
		{3, 4, 5}, // overlaps with the first, skipped
		{6, 7, 8},
	})

	require.Len(t, created, 2)
	assert.Equal(t, []int{1, 2, 3}, created[0].Stars)
	assert.Equal(t, []int{6, 7, 8}, created[1].Stars)
}

func TestTracker_BonusFor(t *testing.T) {
	tracker := constellation.NewTracker()
	tracker.Register([][]int{{1, 2, 3}})

	assert.Equal(t, constellation.Bonus, tracker.BonusFor(2))
	assert.Equal(t, 1.0, tracker.BonusFor(9))
}

func TestColorForID_GoldenAngleSpacing(t *testing.T) {
	c0 := constellation.ColorForID(0)
	c1 := constellation.ColorForID(1)
	c3 := constellation.ColorForID(3)

	assert.Equal(t, 0.0, c0.Hue)
	assert.InDelta(t, 137.5, c1.Hue, 1e-9)
	assert.InDelta(t, 52.5, c3.Hue, 1e-9) // 412.5 wrapped around the wheel

	for _, c := range []constellation.Color{c0, c1, c3} {
		assert.Equal(t, 0.7, c.Saturation)
		assert.Equal(t, 0.6, c.Lightness)
	}
}
