// Package inventoryd implements the inventory HTTP service.
package inventoryd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/kiosk404/stockmind/internal/inventory"
	"github.com/kiosk404/stockmind/internal/inventoryd/options"
	"github.com/kiosk404/stockmind/internal/inventoryd/store"
	"github.com/kiosk404/stockmind/internal/pkg/app"
	genericapiserver "github.com/kiosk404/stockmind/internal/pkg/server"
)

const AppName = "inventoryd"

func NewApp(basename string) *app.App {
	opts := options.NewOptions()
	application := app.NewApp(AppName,
		basename,
		app.WithOptions(opts),
		app.WithDescription(`The inventoryd server keeps item stock counts in memory
and serves them over a small HTTP API.`),
		app.WithRunFunc(run(opts)),
	)

	return application
}

func run(opts *options.Options) app.RunFunc {
	return func(basename string) error {
		log := opts.Log.NewLogger()

		s := store.New(inventory.Snapshot(opts.Store.Initial), opts.Store.StrictItems)

		server := genericapiserver.New(opts.Serving, log)
		initRouter(server.Engine, s, log)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log.WithField("addr", opts.Serving.Addr()).Info("starting inventory server")

		return server.Run(ctx)
	}
}
