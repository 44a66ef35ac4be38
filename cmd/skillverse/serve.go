package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/skillverse-api/internal/config"
	"github.com/saulo-duarte/skillverse-api/internal/container"
	"github.com/saulo-duarte/skillverse-api/internal/router"
	"github.com/saulo-duarte/skillverse-api/internal/schema"
)

var (
	addr        string
	autoMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (as a Lambda handler when running on AWS Lambda)",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default :$PORT or :8080)")
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "apply schema migrations before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := container.Bootstrap(ctx); err != nil {
		return err
	}
	if autoMigrate {
		if err := schema.Migrate(config.DB); err != nil {
			return err
		}
	}

	c, err := container.New(ctx, config.DB)
	if err != nil {
		return err
	}
	handler := router.New(c.RouterConfig())

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		config.Log.Info("Starting Lambda handler")
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return nil
	}

	if addr == "" {
		addr = ":" + config.Getenv("PORT", "8080")
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		config.Log.Infof("Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-stop.Done():
	}

	config.Log.Info("Shutting down")
	shutdownCtx, done := context.WithTimeout(context.Background(), 15*time.Second)
	defer done()
	return srv.Shutdown(shutdownCtx)
}
