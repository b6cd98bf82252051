// Package cli implements the command-line interface for cubecipher.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecipher"
	"github.com/SeamusWaldron/cubecipher/internal/config"
	"github.com/SeamusWaldron/cubecipher/internal/logging"
	"github.com/SeamusWaldron/cubecipher/internal/render"
	"github.com/SeamusWaldron/cubecipher/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger = zerolog.Nop()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubecipher",
	Short: "Rubik's cube solver and transposition cipher",
	Long: `cubecipher solves 3x3x3 cube states given as facet strings and uses the
cube as a transposition cipher: text laid on the stickers travels with them
through every turn.

Solve a state, scramble one, apply moves, encrypt with a move sequence as
the key, reveal text hidden on a scrambled cube, browse saved solves, or
serve the solver over HTTP.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.cubecipher/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubecipher/cubecipher.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	logCfg := cfg.Log
	if verbose {
		logCfg.Level = "debug"
	}
	logger = logging.New(logCfg, cmd.ErrOrStderr())
	logger.Debug().Str("config", path).Msg("configuration loaded")
	return nil
}

// currentConfig returns the loaded configuration, or the defaults when a
// command runs without the root pre-run.
func currentConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

// getDBPath returns the database path from flag, config, or default.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return currentConfig().DBPath // "" means the default
}

func openDB() (*storage.DB, error) {
	path := getDBPath()
	var db *storage.DB
	var err error

	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	logger.Debug().Str("path", db.Path()).Msg("database opened")
	return db, nil
}

// solverOptions builds the solver options from config.
func solverOptions() []cubecipher.SolverOption {
	opts := []cubecipher.SolverOption{
		cubecipher.WithLogger(logging.Component(logger, "solver")),
	}
	if n := currentConfig().Solver.MaxIterations; n > 0 {
		opts = append(opts, cubecipher.WithMaxIterations(n))
	}
	return opts
}

func newRenderer() *render.Renderer {
	return render.New(currentConfig().Render.Palette)
}
