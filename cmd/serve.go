// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/social-widgets/event-widget-service/internal/config"
	"github.com/social-widgets/event-widget-service/internal/db"
	"github.com/social-widgets/event-widget-service/internal/logging"
	"github.com/social-widgets/event-widget-service/internal/monitoring/prometheus"
	"github.com/social-widgets/event-widget-service/internal/social"
	"github.com/social-widgets/event-widget-service/internal/storage"
	"github.com/social-widgets/event-widget-service/internal/tracing"
	"github.com/social-widgets/event-widget-service/pkg/instance"
	"github.com/social-widgets/event-widget-service/pkg/web"
	"github.com/social-widgets/event-widget-service/pkg/widget"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	_ = godotenv.Load()

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("event_widget_service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	socialClient := social.NewClient(
		specs.GraphAPIURL,
		specs.GraphAppID,
		specs.GraphAppSecret,
		specs.GraphTimeout,
		tracer,
		monitor,
		logger,
	)

	verifier := instance.NewVerifier([]byte(specs.PlatformSecretKey), tracer, monitor, logger)
	instanceMiddleware := instance.NewMiddleware(verifier, tracer, monitor, logger)

	widgetService := widget.NewService(s, socialClient, tracer, monitor, logger)
	authorizer := widget.NewAuthorizer(tracer, monitor, logger)
	widgetAPI := widget.NewAPI(widgetService, authorizer, tracer, monitor, logger)

	router := web.NewRouter(
		widgetAPI,
		instanceMiddleware,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
