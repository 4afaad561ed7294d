package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	// Empty dir: no config file, defaults apply.
	require.NoError(t, Load(t.TempDir()))

	p := GetParameters()
	assert.Equal(t, 2.7e-3, p.Mass)
	assert.Equal(t, 5e-4, p.Drag)
	assert.Equal(t, 30.0, p.LaunchSpeed)
	assert.Equal(t, 6.0, p.StepDistance)
	assert.Equal(t, 1.0, p.StepHeight)
	assert.Equal(t, 8.0, p.TargetDistance)
	assert.Equal(t, 9.0, p.WallDistance)
	assert.Equal(t, 1.5, p.Crosswind)
	assert.Equal(t, 1e-3, p.TimeStep)
	assert.Equal(t, 1e-3, p.Tolerance)
	assert.NoError(t, p.Validate())

	sc := GetSearchConfig()
	assert.Equal(t, 1.0, sc.MinAngleDeg)
	assert.Equal(t, 89.0, sc.MaxAngleDeg)
	assert.Equal(t, 4, sc.MaxSolutions)
	assert.Equal(t, 4, sc.Workers)

	st := GetStorageConfig()
	assert.Equal(t, "memory", st.Type)
	assert.Equal(t, "./recordings", st.Memory.OutputDir)
	assert.False(t, st.Memory.CompressOutput)

	assert.False(t, GetInfluxConfig().Enabled)
	assert.Equal(t, "info", GetString("logLevel"))
	assert.False(t, GetBool("graylog.enabled"))
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"physics": {
			"launchSpeed": 42.0,
			"crosswind": 0.0
		},
		"search": {
			"workers": 8
		},
		"storage": {
			"type": "database"
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stepshot.cfg.json"), []byte(cfg), 0o644))

	require.NoError(t, Load(dir))

	p := GetParameters()
	assert.Equal(t, 42.0, p.LaunchSpeed)
	assert.Equal(t, 0.0, p.Crosswind)
	// Untouched keys keep their defaults.
	assert.Equal(t, 2.7e-3, p.Mass)

	assert.Equal(t, 8, GetSearchConfig().Workers)
	assert.Equal(t, "database", GetStorageConfig().Type)
	assert.Equal(t, "debug", GetString("logLevel"))
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stepshot.cfg.json"), []byte("{nope"), 0o644))

	assert.Error(t, Load(dir))
}
