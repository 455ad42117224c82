package main

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/c360studio/apcheck/config"
	"github.com/c360studio/apcheck/narrative"
	validatorsvc "github.com/c360studio/apcheck/processor/validator"
)

func serveCmd() *cobra.Command {
	var (
		configPath  string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the NATS validation service",
		Long: `Serve answers validation requests over NATS request/reply and
exposes Prometheus metrics over HTTP. Narrative overrides, when
configured, are watched and reloaded live.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cfg.NATS.URL == "" {
				return fmt.Errorf("nats.url is required to serve (set it in config or APCHECK_NATS_URL)")
			}
			return runServe(cmd, cfg, metricsAddr)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "Prometheus metrics listen address")

	return cmd
}

func runServe(cmd *cobra.Command, cfg *config.Config, metricsAddr string) error {
	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Live narrative reloads while serving. The watcher re-applies the
	// override directory the engine's lookups already read from.
	if cfg.Narrative.OverrideDir != "" {
		watcher, err := narrative.NewWatcher(engine.catalog, cfg.Narrative.OverrideDir, nil)
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer watcher.Stop()
	}

	service := validatorsvc.New(validatorsvc.Config{
		URL:     cfg.NATS.URL,
		Subject: cfg.NATS.Subject,
	}, engine.validator, nil)

	if err := service.Start(ctx); err != nil {
		return err
	}
	defer service.Stop()

	metricsServer := &http.Server{
		Addr:              metricsAddr,
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(cmd.ErrOrStderr(), "metrics server: %v\n", err)
		}
	}()
	defer metricsServer.Close()

	<-ctx.Done()
	return nil
}
