package main

import (
	"context"
	"fmt"
	"time"

	"logistics/cmd"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session for AGENT_ID",
	RunE: func(c *cobra.Command, _ []string) error {
		email, _ := c.Flags().GetString("email")
		password, _ := c.Flags().GetString("password")

		return withRoot(c, func(ctx context.Context, root *cmd.CompositionRoot) error {
			sess, err := root.Sessions().Login(ctx, email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(c.OutOrStdout(), "signed in as %s (%s)\n", sess.Email(), sess.Role())
			return nil
		})
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a client account",
	RunE: func(c *cobra.Command, _ []string) error {
		email, _ := c.Flags().GetString("email")
		password, _ := c.Flags().GetString("password")

		return withRoot(c, func(ctx context.Context, root *cmd.CompositionRoot) error {
			return root.Sessions().Register(ctx, email, password)
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(c *cobra.Command, _ []string) error {
		return withRoot(c, func(ctx context.Context, root *cmd.CompositionRoot) error {
			return root.Sessions().Logout(ctx)
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(c *cobra.Command, _ []string) error {
		return withRoot(c, func(ctx context.Context, root *cmd.CompositionRoot) error {
			if _, err := root.Sessions().ExpireIfNeeded(ctx); err != nil {
				return err
			}
			sess := root.Sessions().Current()
			out := c.OutOrStdout()
			if !sess.IsAuthenticated() {
				_, _ = fmt.Fprintln(out, "not signed in")
				return nil
			}
			_, _ = fmt.Fprintf(out, "user:  %d\nemail: %s\nrole:  %s\n", sess.UserID(), sess.Email(), sess.Role())
			if !sess.ExpiresAt().IsZero() {
				_, _ = fmt.Fprintf(out, "until: %s\n", sess.ExpiresAt().Local().Format(time.RFC1123))
			}
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().String("email", "", "Account email")
		c.Flags().String("password", "", "Account password")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
