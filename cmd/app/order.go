package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"logistics/cmd"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/application/workflow"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/spf13/cobra"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Create, view and update shipment orders",
}

var orderCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an order from the signed-in user's addresses",
	RunE: func(c *cobra.Command, _ []string) error {
		flags := c.Flags()
		origin, _ := flags.GetUint64("origin")
		destination, _ := flags.GetUint64("destination")
		weight, _ := flags.GetFloat64("weight")
		quantity, _ := flags.GetInt("quantity")
		observations, _ := flags.GetString("observations")
		notes, _ := flags.GetString("internal-notes")

		return withWorkflow(c, func(ctx context.Context, root *cmd.CompositionRoot, ctrl *workflow.Controller) error {
			if err := ctrl.OpenForCreate(ctx); err != nil {
				return err
			}

			out := c.OutOrStdout()
			if classification := ctrl.Classify(weight); classification.Described {
				_, _ = fmt.Fprintf(out, "package type: %s\n", classification.Bracket.Label())
			}

			created, err := ctrl.SubmitCreate(ctx, workflow.Form{
				OriginAddressID:      kernel.ID(origin),
				DestinationAddressID: kernel.ID(destination),
				WeightKg:             weight,
				Quantity:             quantity,
				Observations:         observations,
				InternalNotes:        notes,
			})
			if err != nil {
				return err
			}
			if created.ID().IsSet() {
				_, _ = fmt.Fprintf(out, "order %d created (%s)\n", created.ID(), created.OrderNumber())
			}
			return nil
		})
	},
}

var orderViewCmd = &cobra.Command{
	Use:   "view <order-id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		orderID, err := kernel.ParseID(args[0])
		if err != nil {
			return err
		}

		return withWorkflow(c, func(ctx context.Context, root *cmd.CompositionRoot, ctrl *workflow.Controller) error {
			if err := ctrl.OpenForView(ctx, orderID); err != nil {
				return err
			}
			snap := ctrl.Snapshot()
			if snap.Detail == nil {
				return nil
			}
			printDetail(c.OutOrStdout(), *snap.Detail, snap.Catalogs.StatusLabel(snap.Detail.Status.String()),
				root.Sessions().Current().Role().IsAdmin())
			return nil
		})
	},
}

var orderStatusCmd = &cobra.Command{
	Use:   "status <order-id> <status>",
	Short: "Move an order to a new status (admin only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		orderID, err := kernel.ParseID(args[0])
		if err != nil {
			return err
		}
		notes, _ := c.Flags().GetString("internal-notes")

		return withWorkflow(c, func(ctx context.Context, root *cmd.CompositionRoot, ctrl *workflow.Controller) error {
			if err := ctrl.OpenForView(ctx, orderID); err != nil {
				return err
			}
			if !c.Flags().Changed("internal-notes") {
				if snap := ctrl.Snapshot(); snap.Detail != nil {
					notes = snap.Detail.InternalNotes
				}
			}
			return ctrl.SubmitStatusUpdate(ctx, orderID, args[1], notes)
		})
	},
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders visible to the signed-in user",
	RunE: func(c *cobra.Command, _ []string) error {
		all, _ := c.Flags().GetBool("all")

		return withRoot(c, func(ctx context.Context, root *cmd.CompositionRoot) error {
			sess := root.Sessions().Current()
			query, err := queries.NewListOrdersQuery(sess.Token(), sess.Role(), all)
			if err != nil {
				return err
			}
			orders, err := root.CreateListOrdersQueryHandler().Handle(ctx, query)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(c.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ID\tNUMBER\tSTATUS\tWEIGHT\tQTY\tCREATED")
			for _, o := range orders {
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
					o.ID(), o.OrderNumber(), o.Status(), o.Weight(), o.Quantity(), o.CreatedAt().Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		})
	},
}

// withWorkflow opens a workflow instance for the duration of fn.
func withWorkflow(
	c *cobra.Command,
	fn func(ctx context.Context, root *cmd.CompositionRoot, ctrl *workflow.Controller) error,
) error {
	return withRoot(c, func(ctx context.Context, root *cmd.CompositionRoot) error {
		ctrl, err := root.Workflows().Open(workflow.Hooks{})
		if err != nil {
			return err
		}
		defer func() { _ = root.Workflows().Close(ctrl.ID()) }()
		return fn(ctx, root, ctrl)
	})
}

func printDetail(w io.Writer, d order.Detail, statusLabel string, showNotes bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "order\t%d (%s)\n", d.ID, d.OrderNumber)
	_, _ = fmt.Fprintf(tw, "owner\t%s\n", d.OwnerName)
	_, _ = fmt.Fprintf(tw, "status\t%s\n", statusLabel)
	_, _ = fmt.Fprintf(tw, "origin\t%s %s, %s, %s\n", d.Origin.Street, d.Origin.Exterior, d.Origin.Neighborhood, d.Origin.City)
	_, _ = fmt.Fprintf(tw, "destination\t%s %s, %s, %s\n",
		d.Destination.Street, d.Destination.Exterior, d.Destination.Neighborhood, d.Destination.City)
	_, _ = fmt.Fprintf(tw, "package\t%s, %.2f kg x %d\n", d.SizeCode, d.ActualWeightKg, d.Quantity)
	if d.Observations != "" {
		_, _ = fmt.Fprintf(tw, "observations\t%s\n", d.Observations)
	}
	if showNotes && d.InternalNotes != "" {
		_, _ = fmt.Fprintf(tw, "internal notes\t%s\n", d.InternalNotes)
	}
	_, _ = fmt.Fprintf(tw, "created\t%s\n", d.CreatedAt.Format("2006-01-02 15:04"))
	_ = tw.Flush()
}

func init() {
	createFlags := orderCreateCmd.Flags()
	createFlags.Uint64("origin", 0, "Origin address ID")
	createFlags.Uint64("destination", 0, "Destination address ID")
	createFlags.Float64("weight", 0, "Actual weight in kg")
	createFlags.Int("quantity", 1, "Number of packages")
	createFlags.String("observations", "", "Notes visible to the customer")
	createFlags.String("internal-notes", "", "Notes visible to admins only")

	orderStatusCmd.Flags().String("internal-notes", "", "Replace the internal notes")
	orderListCmd.Flags().Bool("all", false, "List every order (admin only)")

	orderCmd.AddCommand(orderCreateCmd, orderViewCmd, orderStatusCmd, orderListCmd)
	rootCmd.AddCommand(orderCmd)
}
