// Package stockctl implements the stockctl command line client for the
// inventory and stockmind services.
package stockctl

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// IOStreams carries the standard streams for subcommands, so tests can
// capture output.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// NewDefaultStockCtlCommand creates the `stockctl` command with default
// arguments.
func NewDefaultStockCtlCommand() *cobra.Command {
	return NewStockCtlCommand(IOStreams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr})
}

func NewStockCtlCommand(streams IOStreams) *cobra.Command {
	cmds := &cobra.Command{
		Use:           "stockctl",
		Short:         "stockctl talks to the inventory and stockmind services",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run:           runHelp,
	}
	cmds.SetOut(streams.Out)
	cmds.SetErr(streams.ErrOut)

	cmds.AddCommand(
		NewCmdQuery(streams),
		NewCmdInventory(streams),
		NewCmdOpenAPI(streams),
	)

	return cmds
}

func runHelp(cmd *cobra.Command, args []string) {
	_ = cmd.Help()
}
