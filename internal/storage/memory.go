// internal/storage/memory.go
package storage

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/rs/zerolog"

	"github.com/stepshot/stepshot/internal/config"
	"github.com/stepshot/stepshot/internal/geo"
	"github.com/stepshot/stepshot/pkg/core"
)

// MemoryBackend accumulates a sweep in RAM and writes a single JSON export
// (optionally gzipped) when the sweep ends. The export carries a GeoJSON
// feature per run so the plotting collaborator can draw the paths directly.
type MemoryBackend struct {
	cfg config.MemoryConfig
	log zerolog.Logger

	mu        sync.Mutex
	params    *core.Parameters
	startedAt time.Time
	runs      []*Run

	exportedPath string
}

// NewMemoryBackend creates an in-memory backend writing to cfg.OutputDir.
func NewMemoryBackend(cfg config.MemoryConfig, log zerolog.Logger) *MemoryBackend {
	return &MemoryBackend{cfg: cfg, log: log}
}

// Init creates the output directory.
func (b *MemoryBackend) Init() error {
	return os.MkdirAll(b.cfg.OutputDir, 0o755)
}

// Close is a no-op; the export happens at EndSweep.
func (b *MemoryBackend) Close() error { return nil }

// StartSweep resets the backend for a new sweep.
func (b *MemoryBackend) StartSweep(params *core.Parameters, startedAt time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.params = params
	b.startedAt = startedAt
	b.runs = nil
	return nil
}

// RecordRun stores one completed trajectory.
func (b *MemoryBackend) RecordRun(run *Run) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.runs = append(b.runs, run)
	return nil
}

// Runs returns the recorded runs in arrival order.
func (b *MemoryBackend) Runs() []*Run {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Run, len(b.runs))
	copy(out, b.runs)
	return out
}

type sweepExport struct {
	Params    *core.Parameters               `json:"params"`
	StartedAt time.Time                      `json:"startedAt"`
	Solutions []float64                      `json:"solutions"`
	Runs      []runExport                    `json:"runs"`
	Paths     geom.GeoJSONFeatureCollection `json:"paths"`
}

type runExport struct {
	Angle        float64    `json:"angle"`
	Outcome      string     `json:"outcome"`
	Event        string     `json:"event"`
	Landing      core.Point `json:"landing"`
	LandingError float64    `json:"landingError"`
	Steps        int        `json:"steps"`
	Solution     bool       `json:"solution"`
}

// EndSweep writes the export file and remembers its path.
func (b *MemoryBackend) EndSweep(solutions []float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	export := sweepExport{
		Params:    b.params,
		StartedAt: b.startedAt,
		Solutions: solutions,
	}

	paths := make([][]core.Point, 0, len(b.runs))
	props := make([]map[string]interface{}, 0, len(b.runs))
	for _, run := range b.runs {
		export.Runs = append(export.Runs, runExport{
			Angle:        run.Angle,
			Outcome:      run.Outcome.String(),
			Event:        run.Event.String(),
			Landing:      run.Landing,
			LandingError: run.LandingError,
			Steps:        len(run.Positions),
			Solution:     run.Solution,
		})
		paths = append(paths, run.Positions)
		props = append(props, map[string]interface{}{
			"angle":    run.Angle,
			"solution": run.Solution,
		})
	}

	fc, err := geo.FeatureCollection(paths, props)
	if err != nil {
		return fmt.Errorf("building path features: %w", err)
	}
	export.Paths = fc

	name := fmt.Sprintf("sweep.%s.json", b.startedAt.Format("20060102_150405"))
	if b.cfg.CompressOutput {
		name += ".gz"
	}
	path := filepath.Join(b.cfg.OutputDir, name)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer file.Close()

	if b.cfg.CompressOutput {
		gz := gzip.NewWriter(file)
		if err := json.NewEncoder(gz).Encode(export); err != nil {
			return fmt.Errorf("encoding export: %w", err)
		}
		if err := gz.Close(); err != nil {
			return fmt.Errorf("closing gzip writer: %w", err)
		}
	} else {
		enc := json.NewEncoder(file)
		enc.SetIndent("", "  ")
		if err := enc.Encode(export); err != nil {
			return fmt.Errorf("encoding export: %w", err)
		}
	}

	b.exportedPath = path
	b.log.Info().Str("path", path).Int("runs", len(b.runs)).Msg("Sweep exported")
	return nil
}

// GetExportedFilePath returns the path of the last written export.
func (b *MemoryBackend) GetExportedFilePath() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.exportedPath
}
