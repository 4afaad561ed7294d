// pkg/core/params.go
package core

import "errors"

// Gravity is the downward gravitational acceleration in m/s².
const Gravity = 9.81

// ErrInvalidParams is returned when a Parameters record fails validation.
var ErrInvalidParams = errors.New("invalid simulation parameters")

// Parameters holds the physical and numerical constants for one simulation.
// The record is immutable for the duration of a run and may be shared
// read-only across concurrently running trajectories.
type Parameters struct {
	Mass           float64 `json:"mass" mapstructure:"mass"`                     // ball mass, kg
	Drag           float64 `json:"drag" mapstructure:"drag"`                     // drag coefficient k, kg/m
	LaunchSpeed    float64 `json:"launchSpeed" mapstructure:"launchSpeed"`       // |v| at launch, m/s
	StepDistance   float64 `json:"stepDistance" mapstructure:"stepDistance"`     // x of the step front face, m
	StepHeight     float64 `json:"stepHeight" mapstructure:"stepHeight"`         // height of the step top, m
	TargetDistance float64 `json:"targetDistance" mapstructure:"targetDistance"` // x the search wants to land at, m
	WallDistance   float64 `json:"wallDistance" mapstructure:"wallDistance"`     // x of the back wall, m
	Crosswind      float64 `json:"crosswind" mapstructure:"crosswind"`           // horizontal wind speed, m/s
	TimeStep       float64 `json:"timeStep" mapstructure:"timeStep"`             // fixed integration step, s
	Tolerance      float64 `json:"tolerance" mapstructure:"tolerance"`           // root-finder residual tolerance
}

// Validate checks the preconditions the engine assumes. A failed check is a
// caller error, not a runtime state the engine defends against mid-flight.
func (p *Parameters) Validate() error {
	switch {
	case p == nil:
		return ErrInvalidParams
	case p.Mass <= 0:
		return errors.Join(ErrInvalidParams, errors.New("mass must be positive"))
	case p.Drag < 0:
		return errors.Join(ErrInvalidParams, errors.New("drag coefficient must be non-negative"))
	case p.LaunchSpeed <= 0:
		return errors.Join(ErrInvalidParams, errors.New("launch speed must be positive"))
	case p.TimeStep <= 0:
		return errors.Join(ErrInvalidParams, errors.New("time step must be positive"))
	case p.Tolerance <= 0:
		return errors.Join(ErrInvalidParams, errors.New("tolerance must be positive"))
	}
	return nil
}
