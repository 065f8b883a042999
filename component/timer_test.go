package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerOneShot(t *testing.T) {
	tm := NewTimer(100 * time.Millisecond)

	assert.False(t, tm.Tick(60*time.Millisecond))
	assert.False(t, tm.Finished())

	assert.True(t, tm.Tick(60*time.Millisecond))
	assert.True(t, tm.JustFinished())
	assert.Equal(t, 100*time.Millisecond, tm.Elapsed)

	// Latched: never just-finishes twice
	assert.False(t, tm.Tick(60*time.Millisecond))
	assert.True(t, tm.Finished())
	assert.False(t, tm.JustFinished())
}

func TestTimerRepeatingWraps(t *testing.T) {
	tm := NewRepeatingTimer(500 * time.Millisecond)

	require.False(t, tm.Tick(400*time.Millisecond))
	require.True(t, tm.Tick(200*time.Millisecond))
	assert.Equal(t, 1, tm.TimesFinished())
	assert.Equal(t, 100*time.Millisecond, tm.Elapsed)

	require.True(t, tm.Tick(1400*time.Millisecond))
	assert.Equal(t, 3, tm.TimesFinished())
	assert.Equal(t, 0*time.Millisecond, tm.Elapsed)

	assert.False(t, tm.Tick(10*time.Millisecond))
	assert.Equal(t, 0, tm.TimesFinished())
}

func TestTimerReset(t *testing.T) {
	tm := NewTimer(time.Second)
	tm.Tick(2 * time.Second)
	tm.Reset()
	assert.False(t, tm.Finished())
	assert.Equal(t, time.Second, tm.Remaining())
}

func TestBurnedExpiresOnDurationOnly(t *testing.T) {
	b := BurnSourceComponent{Damage: 1, Duration: time.Second, Interval: 300 * time.Millisecond}.Effect()

	assert.False(t, b.TickEffect(300*time.Millisecond))
	assert.True(t, b.Interval.JustFinished())
	assert.False(t, b.TickEffect(300*time.Millisecond))
	assert.False(t, b.TickEffect(300*time.Millisecond))
	assert.True(t, b.TickEffect(300*time.Millisecond))
}

func TestHealNeverExpires(t *testing.T) {
	h := NewHeal(1, 100*time.Millisecond)
	for i := 0; i < 10; i++ {
		assert.False(t, h.TickEffect(100*time.Millisecond))
		assert.True(t, h.Timer.JustFinished())
	}
}

func TestHealthClamp(t *testing.T) {
	h := HealthComponent{HP: 99}
	h.Heal(5)
	assert.Equal(t, 100, h.HP)

	h.Heal(-150)
	assert.Equal(t, 0, h.HP)
	assert.True(t, h.Dead())

	h.Damage(3)
	assert.Equal(t, -3, h.HP, "damage is unclamped")
}
