package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logistics/cmd"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portal HTTP API",
	Long: `Starts the portal as an HTTP service.
The session persisted for AGENT_ID is restored first. Toast eviction and session
expiry run in the background until the process receives SIGINT or SIGTERM.`,
	RunE: func(c *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		c.SetContext(ctx)

		return withRoot(c, func(ctx context.Context, root *cmd.CompositionRoot) error {
			port, _ := c.Flags().GetString("port")
			if port == "" {
				port = root.Config().HTTPPort
			}

			e, err := root.CreateHTTPServer()
			if err != nil {
				return err
			}

			jobManager := root.CreateJobManager()
			if err = jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			logger := root.Logger()
			serveErr := make(chan error, 1)
			go func() {
				logger.Info("portal listening", "port", port)
				serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
			}()

			select {
			case err = <-serveErr:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down portal")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("port", "", "Port to listen on (defaults to HTTP_PORT)")
}
