// internal/storage/db.go
package storage

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/stepshot/stepshot/internal/database"
	"github.com/stepshot/stepshot/internal/geo"
	"github.com/stepshot/stepshot/internal/model"
	"github.com/stepshot/stepshot/pkg/core"
)

// DatabaseBackend records sweeps through gorm: Postgres when reachable,
// local SQLite otherwise. Samples are bulk-inserted per run.
type DatabaseBackend struct {
	log zerolog.Logger
	db  *database.Manager

	mu    sync.Mutex
	sweep *model.Sweep
}

// NewDatabaseBackend creates a database-backed recorder.
func NewDatabaseBackend(log zerolog.Logger) *DatabaseBackend {
	return &DatabaseBackend{
		log: log,
		db:  database.NewManager(log),
	}
}

// Init connects and migrates the schema.
func (b *DatabaseBackend) Init() error {
	if err := b.db.Connect(); err != nil {
		return err
	}
	return b.db.Setup()
}

// Close releases the connection.
func (b *DatabaseBackend) Close() error {
	return b.db.Close()
}

// StartSweep creates the arena and sweep rows.
func (b *DatabaseBackend) StartSweep(params *core.Parameters, startedAt time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	arena := model.Arena{
		Name:           "default",
		StepDistance:   params.StepDistance,
		StepHeight:     params.StepHeight,
		TargetDistance: params.TargetDistance,
		WallDistance:   params.WallDistance,
	}
	if err := b.db.DB.
		Where(&model.Arena{
			StepDistance:   params.StepDistance,
			StepHeight:     params.StepHeight,
			TargetDistance: params.TargetDistance,
			WallDistance:   params.WallDistance,
		}).
		FirstOrCreate(&arena).Error; err != nil {
		return fmt.Errorf("creating arena: %w", err)
	}

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshaling params: %w", err)
	}

	sweep := model.Sweep{
		ArenaID:   arena.ID,
		StartTime: startedAt,
		Params:    paramsJSON,
	}
	if err := b.db.DB.Create(&sweep).Error; err != nil {
		return fmt.Errorf("creating sweep: %w", err)
	}

	b.sweep = &sweep
	return nil
}

// RecordRun stores the run row and bulk-inserts its samples.
func (b *DatabaseBackend) RecordRun(run *Run) error {
	b.mu.Lock()
	sweep := b.sweep
	b.mu.Unlock()
	if sweep == nil {
		return fmt.Errorf("no active sweep")
	}

	wkb, err := geo.PathWKB(run.Positions)
	if err != nil {
		return fmt.Errorf("encoding path: %w", err)
	}

	row := model.Run{
		SweepID:       sweep.ID,
		AngleRad:      run.Angle,
		Outcome:       run.Outcome.String(),
		TerminalEvent: run.Event.String(),
		LandingX:      run.Landing.X,
		LandingY:      run.Landing.Y,
		LandingError:  run.LandingError,
		Steps:         len(run.Positions),
		Solution:      run.Solution,
		Path:          wkb,
	}
	if err := b.db.DB.Create(&row).Error; err != nil {
		return fmt.Errorf("creating run: %w", err)
	}

	samples := make([]model.TrajectorySample, len(run.Positions))
	for i, p := range run.Positions {
		samples[i] = model.TrajectorySample{
			RunID:     row.ID,
			StepIndex: i,
			T:         float64(i) * run.TimeStep,
			X:         p.X,
			Y:         p.Y,
		}
	}
	if len(samples) > 0 {
		if err := b.db.DB.CreateInBatches(samples, 2000).Error; err != nil {
			return fmt.Errorf("creating samples: %w", err)
		}
	}

	return nil
}

// EndSweep stores the solution angles and flags the matching runs.
func (b *DatabaseBackend) EndSweep(solutions []float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sweep == nil {
		return fmt.Errorf("no active sweep")
	}

	solJSON, err := json.Marshal(solutions)
	if err != nil {
		return fmt.Errorf("marshaling solutions: %w", err)
	}
	if err := b.db.DB.Model(b.sweep).Update("solutions", solJSON).Error; err != nil {
		return fmt.Errorf("updating sweep: %w", err)
	}

	for _, angle := range solutions {
		if err := b.db.DB.Model(&model.Run{}).
			Where("sweep_id = ? AND angle_rad = ?", b.sweep.ID, angle).
			Update("solution", true).Error; err != nil {
			return fmt.Errorf("flagging solution run: %w", err)
		}
	}

	b.sweep = nil
	return nil
}
