package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"segmentd/internal/config"
	"segmentd/internal/detect"
	"segmentd/internal/httpapi"
	"segmentd/internal/relay"
	"segmentd/internal/weights"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "segmentd",
		Short:         "Human-segmentation detection daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var (
		cfgPath    string
		addr       string
		weightsDir string
		stubModel  bool
		logLevel   string
	)
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP detection server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cfgPath, addr, weightsDir, stubModel, logLevel)
		},
	}
	defaultAddr := ":8080"
	if v := os.Getenv("SEGMENTD_ADDR"); v != "" {
		defaultAddr = v
	}
	serve.Flags().StringVarP(&cfgPath, "config", "c", "", "Config file (.yaml/.json/.toml)")
	serve.Flags().StringVar(&addr, "addr", defaultAddr, "HTTP listen address, e.g. :8080")
	serve.Flags().StringVar(&weightsDir, "weights-dir", "", "Directory holding model weight bundles")
	serve.Flags().BoolVar(&stubModel, "stub-model", false, "Serve the deterministic stub model instead of a real runtime")
	serve.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	root.AddCommand(serve)
	return root
}

func runServe(cfgPath, addr, weightsDir string, stubModel bool, logLevel string) error {
	var cfg config.Config
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
	}
	if cfg.Addr != "" {
		addr = cfg.Addr
	}
	if cfg.WeightsDir != "" {
		weightsDir = cfg.WeightsDir
	}
	if cfg.StubModel {
		stubModel = true
	}
	if cfg.LogLevel != "" {
		logLevel = cfg.LogLevel
	}

	lvl, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Str("svc", "segmentd").Logger()
	httpapi.SetLogger(logger)
	if cfg.MaxFrameBytes > 0 {
		httpapi.SetMaxFrameBytes(cfg.MaxFrameBytes)
	}

	var (
		loader  detect.Loader
		runtime detect.Runtime
	)
	if stubModel {
		loader = detect.StubLoader{}
		runtime = detect.NewStubRuntime()
		logger.Warn().Msg("serving the stub segmentation model")
	}
	if weightsDir != "" {
		if f, err := weights.Locate(weightsDir); err != nil {
			logger.Warn().Err(err).Str("dir", weightsDir).Msg("no weight bundle found")
		} else {
			logger.Info().Str("weights", f.Path).Int64("size_bytes", f.SizeBytes).Msg("weight bundle located")
		}
	}

	svc := detect.New(detect.Config{Loader: loader, Runtime: runtime, Logger: &logger})
	mux := httpapi.NewMux(svc, relay.NewMailbox())
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("segmentd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	svc.Dispose()
	return nil
}
