// Command stepshot simulates drag-affected projectile trajectories over
// the stepped bench arena and searches for the launch angles that land on
// the target distance. Results go to the configured storage backend and,
// optionally, to InfluxDB.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/stepshot/stepshot/internal/config"
	"github.com/stepshot/stepshot/internal/influx"
	"github.com/stepshot/stepshot/internal/logging"
	"github.com/stepshot/stepshot/internal/metrics"
	"github.com/stepshot/stepshot/internal/search"
	"github.com/stepshot/stepshot/internal/storage"
	"github.com/stepshot/stepshot/pkg/core"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "stepshot:", err)
		os.Exit(1)
	}
}

func run() error {
	configDir := flag.String("config", ".", "directory containing stepshot.cfg.json")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		return err
	}

	sessionStart := time.Now().UTC()
	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}
	logFile, err := os.Create(logging.LogFilePath(logsDir, sessionStart))
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}
	defer logFile.Close()

	log, err := logging.Setup(logging.Options{
		Level:          config.GetString("logLevel"),
		File:           logFile,
		GraylogEnabled: config.GetBool("graylog.enabled"),
		GraylogAddress: config.GetString("graylog.address"),
	})
	if err != nil {
		return err
	}

	params := config.GetParameters()
	if err := params.Validate(); err != nil {
		return fmt.Errorf("invalid physics parameters: %w", err)
	}
	log.Info().
		Float64("launchSpeed", params.LaunchSpeed).
		Float64("targetDistance", params.TargetDistance).
		Float64("timeStep", params.TimeStep).
		Msg("Parameters loaded")

	backend, err := storage.NewBackend(config.GetStorageConfig(), log)
	if err != nil {
		return err
	}
	if err := backend.Init(); err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close storage backend")
		}
	}()

	ins, err := metrics.New()
	if err != nil {
		return fmt.Errorf("creating instruments: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	searcher, err := search.New(&params, config.GetSearchConfig(), backend, log, ins)
	if err != nil {
		return err
	}

	solutions, err := searcher.FindSolutions(ctx)
	if err != nil {
		return err
	}

	if len(solutions) == 0 {
		log.Warn().Msg("No launch angle lands on the target")
	}
	for _, sol := range solutions {
		log.Info().
			Float64("angleDeg", sol.Angle*180.0/math.Pi).
			Float64("landingX", sol.Landing.X).
			Float64("landingY", sol.Landing.Y).
			Msg("Launch angle solution")
	}

	if config.GetInfluxConfig().Enabled {
		if err := exportInflux(ctx, log, backend, &params, solutions, sessionStart); err != nil {
			log.Error().Err(err).Msg("Influx export failed")
		}
	}

	if exp, ok := backend.(storage.Exportable); ok {
		if path := exp.GetExportedFilePath(); path != "" {
			log.Info().Str("path", path).Msg("Sweep export written")
		}
	}

	return nil
}

// exportInflux pushes the recorded runs and the solution summary. Only the
// memory backend keeps runs around after the sweep; with the database
// backend only the summary goes out.
func exportInflux(ctx context.Context, log zerolog.Logger, backend storage.Backend,
	params *core.Parameters, solutions []search.Solution, sessionStart time.Time) error {

	backupPath := logging.LogFilePath(config.GetString("logsDir"), sessionStart) + ".influx.gz"
	mgr := influx.NewManager(log, backupPath)
	if err := mgr.Connect(); err != nil {
		return err
	}
	defer func() {
		if err := mgr.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close influx manager")
		}
	}()

	if mb, ok := backend.(*storage.MemoryBackend); ok {
		for _, run := range mb.Runs() {
			if err := mgr.WriteRun(ctx, run, sessionStart); err != nil {
				return err
			}
		}
	}

	angles := make([]float64, len(solutions))
	for i, sol := range solutions {
		angles[i] = sol.Angle
	}
	return mgr.WriteSweepSummary(ctx, params, angles, sessionStart)
}
