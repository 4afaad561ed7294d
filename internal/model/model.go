package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DatabaseModels lists every struct migrated as a table by the database
// backend.
var DatabaseModels = []interface{}{
	&Arena{},
	&Sweep{},
	&Run{},
	&TrajectorySample{},
}

// Arena is one geometric configuration of the bench: the step front face,
// step height, target distance and back wall.
type Arena struct {
	gorm.Model
	Name           string  `json:"name" gorm:"size:127"`
	StepDistance   float64 `json:"stepDistance"`
	StepHeight     float64 `json:"stepHeight"`
	TargetDistance float64 `json:"targetDistance"`
	WallDistance   float64 `json:"wallDistance"`
}

// Sweep is one angle-search session over an arena.
type Sweep struct {
	gorm.Model
	ArenaID   uint           `json:"arenaId" gorm:"index"`
	Arena     Arena          `gorm:"foreignkey:ArenaID"`
	StartTime time.Time      `json:"startTime" gorm:"index:idx_sweep_start"`
	Params    datatypes.JSON `json:"params"`
	Solutions datatypes.JSON `json:"solutions"`
}

// Run is one simulated trajectory: launch angle, terminal classification,
// landing state, and the flight path as a WKB linestring.
type Run struct {
	gorm.Model
	SweepID       uint    `json:"sweepId" gorm:"index:idx_run_sweep"`
	Sweep         Sweep   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:SweepID"`
	AngleRad      float64 `json:"angleRad" gorm:"index:idx_run_angle"`
	Outcome       string  `json:"outcome" gorm:"size:16"`
	TerminalEvent string  `json:"terminalEvent" gorm:"size:16"`
	LandingX      float64 `json:"landingX"`
	LandingY      float64 `json:"landingY"`
	LandingError  float64 `json:"landingError"`
	Steps         int     `json:"steps"`
	Solution      bool    `json:"solution" gorm:"index"`
	Path          []byte  `json:"-"` // WKB linestring of the sampled flight path
}

// TrajectorySample is a single sampled position of a run. Bulk-inserted;
// no gorm.Model overhead per row.
type TrajectorySample struct {
	ID        uint    `gorm:"primarykey"`
	RunID     uint    `gorm:"index:idx_sample_run"`
	StepIndex int     `gorm:"index:idx_sample_step"`
	T         float64 // seconds since launch
	X         float64
	Y         float64
}
