package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecipher/internal/logging"
	"github.com/SeamusWaldron/cubecipher/internal/server"
	"github.com/SeamusWaldron/cubecipher/internal/storage"
)

var (
	serveAddr string
	serveSave bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver over HTTP",
	Long: `Serve the solver over HTTP until interrupted.

Routes:
  GET  /cube?U=...&L=...&F=...&R=...&B=...&D=...   solution as plain text
  POST /solve                                      JSON solve with payload
  GET  /metrics                                    Prometheus metrics
  GET  /healthz                                    liveness

With --save every solve is recorded in the database.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: from config, :8080)")
	serveCmd.Flags().BoolVar(&serveSave, "save", false, "Record every solve in the database")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := serveAddr
	if addr == "" {
		addr = currentConfig().Server.Addr
	}

	opts := []server.Option{
		server.WithLogger(logging.Component(logger, "server")),
		server.WithSolverOptions(solverOptions()...),
	}

	if serveSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		opts = append(opts, server.WithStore(storage.NewSolveRepository(db)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(opts...).ListenAndServe(ctx, addr)
}
