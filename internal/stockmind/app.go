// Package stockmind implements the natural language inventory server.
package stockmind

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kiosk404/stockmind/internal/agent"
	"github.com/kiosk404/stockmind/internal/inventory/client"
	"github.com/kiosk404/stockmind/internal/llm"
	"github.com/kiosk404/stockmind/internal/mcpserver"
	"github.com/kiosk404/stockmind/internal/pkg/app"
	genericapiserver "github.com/kiosk404/stockmind/internal/pkg/server"
	"github.com/kiosk404/stockmind/internal/stockmind/options"
	"github.com/kiosk404/stockmind/internal/tools"
)

const AppName = "stockmind"

func NewApp(basename string) *app.App {
	opts := options.NewOptions()
	application := app.NewApp(AppName,
		basename,
		app.WithOptions(opts),
		app.WithDescription(`The stockmind server answers natural language inventory
queries by driving a tool calling chat model against the inventory service.`),
		app.WithRunFunc(run(opts)),
		app.WithCommands(newMCPCommand(opts)),
	)

	return application
}

// buildAgent assembles the client, tools, registry, model and agent from
// the configuration.
func buildAgent(ctx context.Context, opts *options.Options, log *logrus.Logger) (*agent.Agent, *agent.Registry, error) {
	inv := client.New(opts.Agent.InventoryURL, client.WithTimeout(opts.Agent.RequestTimeout))

	registry, err := agent.NewRegistry(ctx, tools.All(inv))
	if err != nil {
		return nil, nil, fmt.Errorf("build tool registry: %w", err)
	}

	chatModel, err := llm.BuildChatModel(ctx, opts.Model)
	if err != nil {
		return nil, nil, fmt.Errorf("build chat model: %w", err)
	}

	a, err := agent.New(chatModel, registry, log, agent.WithMaxTurns(opts.Agent.MaxTurns))
	if err != nil {
		return nil, nil, err
	}

	return a, registry, nil
}

func run(opts *options.Options) app.RunFunc {
	return func(basename string) error {
		log := opts.Log.NewLogger()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, registry, err := buildAgent(ctx, opts, log)
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"addr":      opts.Serving.Addr(),
			"provider":  opts.Model.Provider,
			"model":     opts.Model.Model,
			"inventory": opts.Agent.InventoryURL,
			"tools":     registry.Names(),
		}).Info("starting stockmind server")

		server := genericapiserver.New(opts.Serving, log)
		initRouter(server.Engine, a, log)

		return server.Run(ctx)
	}
}

// newMCPCommand serves the inventory tools over MCP stdio instead of
// starting the HTTP server. The chat model is not needed in this mode.
func newMCPCommand(opts *options.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the inventory tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if errs := opts.Agent.Validate(); len(errs) != 0 {
				return errs[0]
			}

			log := opts.Log.NewLogger()

			inv := client.New(opts.Agent.InventoryURL, client.WithTimeout(opts.Agent.RequestTimeout))
			registry, err := agent.NewRegistry(cmd.Context(), tools.All(inv))
			if err != nil {
				return fmt.Errorf("build tool registry: %w", err)
			}

			srv, err := mcpserver.New(registry, log)
			if err != nil {
				return err
			}

			return srv.ServeStdio()
		},
	}
}
