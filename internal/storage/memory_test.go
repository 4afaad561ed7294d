package storage

import (
	"compress/gzip"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepshot/stepshot/internal/config"
	"github.com/stepshot/stepshot/pkg/core"
)

func testRun(angle float64, solution bool) *Run {
	return &Run{
		Angle:   angle,
		Outcome: core.OutcomeLanded,
		Event:   core.HitFloor,
		Landing: core.Point{X: 8.0, Y: -0.001},
		Positions: []core.Point{
			{X: 0, Y: 0},
			{X: 1, Y: 0.5},
			{X: 2, Y: 0.7},
			{X: 8, Y: -0.001},
		},
		TimeStep: 1e-3,
		Solution: solution,
	}
}

func testParams() *core.Parameters {
	return &core.Parameters{
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

func TestMemoryBackendSweepExport(t *testing.T) {
	dir := t.TempDir()
	b := NewMemoryBackend(config.MemoryConfig{OutputDir: dir}, zerolog.Nop())
	require.NoError(t, b.Init())

	require.NoError(t, b.StartSweep(testParams(), time.Now().UTC()))
	require.NoError(t, b.RecordRun(testRun(0.45, true)))
	require.NoError(t, b.RecordRun(testRun(0.80, false)))
	assert.Len(t, b.Runs(), 2)

	require.NoError(t, b.EndSweep([]float64{0.45}))

	path := b.GetExportedFilePath()
	require.NotEmpty(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var export struct {
		Params    *core.Parameters `json:"params"`
		Solutions []float64        `json:"solutions"`
		Runs      []struct {
			Angle    float64 `json:"angle"`
			Outcome  string  `json:"outcome"`
			Event    string  `json:"event"`
			Steps    int     `json:"steps"`
			Solution bool    `json:"solution"`
		} `json:"runs"`
		Paths []struct {
			Type     string                 `json:"type"`
			Geometry map[string]interface{} `json:"geometry"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(data, &export))

	assert.Equal(t, 30.0, export.Params.LaunchSpeed)
	assert.Equal(t, []float64{0.45}, export.Solutions)

	require.Len(t, export.Runs, 2)
	assert.Equal(t, 0.45, export.Runs[0].Angle)
	assert.Equal(t, "landed", export.Runs[0].Outcome)
	assert.Equal(t, "floor", export.Runs[0].Event)
	assert.Equal(t, 4, export.Runs[0].Steps)
	assert.True(t, export.Runs[0].Solution)
	assert.False(t, export.Runs[1].Solution)

	require.Len(t, export.Paths, 2)
	assert.Equal(t, "Feature", export.Paths[0].Type)
	assert.Equal(t, "LineString", export.Paths[0].Geometry["type"])
}

func TestMemoryBackendCompressedExport(t *testing.T) {
	dir := t.TempDir()
	b := NewMemoryBackend(config.MemoryConfig{OutputDir: dir, CompressOutput: true}, zerolog.Nop())
	require.NoError(t, b.Init())

	require.NoError(t, b.StartSweep(testParams(), time.Now().UTC()))
	require.NoError(t, b.RecordRun(testRun(0.45, false)))
	require.NoError(t, b.EndSweep(nil))

	path := b.GetExportedFilePath()
	require.NotEmpty(t, path)
	assert.Contains(t, path, ".json.gz")

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	gz, err := gzip.NewReader(file)
	require.NoError(t, err)
	defer gz.Close()

	var export map[string]interface{}
	require.NoError(t, json.NewDecoder(gz).Decode(&export))
	assert.Contains(t, export, "runs")
}

func TestMemoryBackendStartSweepResets(t *testing.T) {
	b := NewMemoryBackend(config.MemoryConfig{OutputDir: t.TempDir()}, zerolog.Nop())
	require.NoError(t, b.Init())

	require.NoError(t, b.StartSweep(testParams(), time.Now()))
	require.NoError(t, b.RecordRun(testRun(0.1, false)))
	require.NoError(t, b.StartSweep(testParams(), time.Now()))
	assert.Empty(t, b.Runs())
}

func TestNewBackendFactory(t *testing.T) {
	b, err := NewBackend(config.StorageConfig{Type: "memory"}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &MemoryBackend{}, b)

	b, err = NewBackend(config.StorageConfig{Type: "database"}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &DatabaseBackend{}, b)

	_, err = NewBackend(config.StorageConfig{Type: "redis"}, zerolog.Nop())
	assert.Error(t, err)
}
