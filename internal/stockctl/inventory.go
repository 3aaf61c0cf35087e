package stockctl

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kiosk404/stockmind/internal/inventory"
	"github.com/kiosk404/stockmind/internal/inventory/client"
)

var inventoryExample = heredoc.Doc(`
		# Show the current stock
		stockctl inventory get

		# Add 5 tshirts
		stockctl inventory update tshirts 5

		# Sell 3 pants
		stockctl inventory update pants -3
`)

type InventoryOptions struct {
	Server  string
	Timeout time.Duration

	IOStreams
}

func NewCmdInventory(streams IOStreams) *cobra.Command {
	o := &InventoryOptions{
		Server:    "http://127.0.0.1:8000",
		Timeout:   5 * time.Second,
		IOStreams: streams,
	}

	cmd := &cobra.Command{
		Use:     "inventory",
		Short:   "Read or adjust stock directly on the inventory service",
		Example: inventoryExample,
		Run:     runHelp,
	}

	cmd.PersistentFlags().StringVar(&o.Server, "server", o.Server, "Inventory HTTP server address.")
	cmd.PersistentFlags().DurationVar(&o.Timeout, "timeout", o.Timeout, "Timeout for the inventory call.")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the current stock counts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.RunGet(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "update <item> <change>",
			Short: "Adjust an item's count by a signed amount",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				change, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("change must be an integer, got %q", args[1])
				}

				return o.RunUpdate(cmd.Context(), args[0], change)
			},
		},
	)

	return cmd
}

func (o *InventoryOptions) RunGet(ctx context.Context) error {
	c := client.New(o.Server, client.WithTimeout(o.Timeout))

	snapshot, err := c.Fetch(ctx)
	if err != nil {
		return renderClientError(err)
	}

	o.print(snapshot)

	return nil
}

func (o *InventoryOptions) RunUpdate(ctx context.Context, item string, change int) error {
	c := client.New(o.Server, client.WithTimeout(o.Timeout))

	snapshot, err := c.Apply(ctx, item, change)
	if err != nil {
		return renderClientError(err)
	}

	fmt.Fprintf(o.Out, "%s %s by %+d\n", color.GreenString("updated"), item, change)
	o.print(snapshot)

	return nil
}

func (o *InventoryOptions) print(snapshot inventory.Snapshot) {
	items := make([]string, 0, len(snapshot))
	for item := range snapshot {
		items = append(items, item)
	}
	sort.Strings(items)

	for _, item := range items {
		fmt.Fprintf(o.Out, "%-10s %d\n", item, snapshot[item])
	}
}

func renderClientError(err error) error {
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Errorf("%s %s", color.RedString("inventory error (%d):", statusErr.StatusCode), statusErr.Detail)
	}

	return err
}
