package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"logistics/cmd"
	"logistics/internal/core/domain/model/toast"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "portal",
	Short:         "Customer and admin portal for the logistics backend",
	Long:          `portal signs users in against the logistics backend, creates shipment orders and lets admins move them through their lifecycle.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().String("env", ".env", "Path to the .env file with the portal settings")
}

// withRoot builds the composition root for one command invocation. Toasts raised
// while fn runs are printed to stderr before the root is closed.
func withRoot(c *cobra.Command, fn func(ctx context.Context, root *cmd.CompositionRoot) error) (err error) {
	envFile, _ := c.Flags().GetString("env")

	cfg, err := cmd.LoadConfig(envFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	root, err := cmd.NewCompositionRoot(ctx, cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		printToasts(c.ErrOrStderr(), root.Queue().List())
		err = errors.Join(err, root.Close())
	}()

	return fn(ctx, root)
}

func printToasts(w io.Writer, toasts []toast.Toast) {
	for _, t := range toasts {
		_, _ = fmt.Fprintf(w, "[%s] %s\n", t.Kind, t.Message)
	}
}
