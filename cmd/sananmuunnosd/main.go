package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/haavikko/sananmuunnos/internal/config"
	"github.com/haavikko/sananmuunnos/internal/metrics"
	"github.com/haavikko/sananmuunnos/internal/server"
)

var (
	cfgPath string
	addr    string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sananmuunnosd",
	Short: "HTTP service for the sananmuunnos word transform",
	Long: `sananmuunnosd serves the sananmuunnos word transform over HTTP.

POST a JSON-quoted string to /transform and the response is the same
string with the heads of each pair of words swapped. /healthz reports
liveness and /metrics exposes Prometheus metrics.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	logger, err := buildLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	collector := metrics.NewCollector("sananmuunnos")

	handler, err := server.NewHandler(cfg, collector, logger)
	if err != nil {
		return fmt.Errorf("create handler: %w", err)
	}

	mgr := server.NewManager(handler.Routes(), cfg.Server, logger)
	if err := mgr.Start(); err != nil {
		return err
	}
	mgr.WaitForShutdown()
	return nil
}

func buildLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		zapCfg.Level = zap.NewAtomicLevelAt(parsed)
	}
	return zapCfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
