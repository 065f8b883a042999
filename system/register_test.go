package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shapecraft/parameter"
)

func TestRegisterAllResolvesOrdering(t *testing.T) {
	w, _ := newTestWorld(t)

	pos := make(map[string]int)
	for i, s := range w.Schedule() {
		pos[s.Name()] = i
	}
	require.Len(t, pos, len(Constructors))

	before := func(a, b string) {
		t.Helper()
		assert.Less(t, pos[a], pos[b], "%s should run before %s", a, b)
	}

	before(parameter.SystemMovement, parameter.SystemPhysics)
	before(parameter.SystemRotate, parameter.SystemPhysics)
	before(parameter.SystemPhysics, parameter.SystemDetect)
	before(parameter.SystemDetect, parameter.SystemGrab)
	before(parameter.SystemGrab, parameter.SystemThrow)
	before(parameter.SystemGrab, parameter.SystemHighlight)

	for _, src := range []string{parameter.SystemFreeze, parameter.SystemBurn, parameter.SystemParalyze} {
		before(parameter.SystemPhysics, src)
		before(src, parameter.SystemBurnedTimer)
	}
	before(parameter.SystemBurnedTimer, parameter.SystemEffect)
	before(parameter.SystemHealTimer, parameter.SystemHeal)

	before(parameter.SystemContact, parameter.SystemExplosion)
	before(parameter.SystemExplosion, parameter.SystemDeath)
	before(parameter.SystemDeath, parameter.SystemGameState)
	before(parameter.SystemDeath, parameter.SystemInvariant)
}

func TestDisabledSystemIsSkipped(t *testing.T) {
	w, fp := newTestWorld(t)
	w.SetEnabled(parameter.SystemPhysics, false)
	steps(t, w, 3)
	assert.Zero(t, fp.steps)

	w.SetEnabled(parameter.SystemPhysics, true)
	steps(t, w, 2)
	assert.Equal(t, 2, fp.steps)
}
