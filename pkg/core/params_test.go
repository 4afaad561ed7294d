package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validParams() Parameters {
	return Parameters{
		Mass:           2.7e-3,
		Drag:           5e-4,
		LaunchSpeed:    30,
		StepDistance:   6,
		StepHeight:     1,
		TargetDistance: 8,
		WallDistance:   9,
		Crosswind:      1.5,
		TimeStep:       1e-3,
		Tolerance:      1e-3,
	}
}

func TestParametersValidate(t *testing.T) {
	p := validParams()
	assert.NoError(t, p.Validate())

	cases := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{"zero mass", func(p *Parameters) { p.Mass = 0 }},
		{"negative drag", func(p *Parameters) { p.Drag = -1e-4 }},
		{"zero launch speed", func(p *Parameters) { p.LaunchSpeed = 0 }},
		{"zero time step", func(p *Parameters) { p.TimeStep = 0 }},
		{"negative time step", func(p *Parameters) { p.TimeStep = -1e-3 }},
		{"zero tolerance", func(p *Parameters) { p.Tolerance = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidParams)
		})
	}

	var nilP *Parameters
	assert.ErrorIs(t, nilP.Validate(), ErrInvalidParams)
}

func TestBoundaryEventStringsAndClasses(t *testing.T) {
	assert.Equal(t, "floor", HitFloor.String())
	assert.Equal(t, "step-wall", HitStepWall.String())
	assert.Equal(t, "step-floor", HitStepFloor.String())
	assert.Equal(t, "back-wall", HitBackWall.String())
	assert.Equal(t, "none", HitNone.String())

	assert.True(t, HitFloor.Terminal())
	assert.True(t, HitStepFloor.Terminal())
	assert.False(t, HitStepWall.Terminal())
	assert.False(t, HitBackWall.Terminal())

	assert.True(t, HitStepWall.Wall())
	assert.True(t, HitBackWall.Wall())
	assert.False(t, HitFloor.Wall())
}
