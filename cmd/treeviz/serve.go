package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/csePriyanshu/tree-visualizer/concurrent"
	"github.com/csePriyanshu/tree-visualizer/logs"
	"github.com/csePriyanshu/tree-visualizer/playground"
	"github.com/csePriyanshu/tree-visualizer/rpcs"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(app *AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the tree playground over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, app)
		},
	}
}

// newHandler creates the http handler of the playground, with the
// metrics of the registry mounted on /metrics
func newHandler(app *AppConfig, logger logs.Logger, registry *prometheus.Registry) (http.Handler, error) {
	metrics, err := playground.NewMetrics(registry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register metrics")
	}

	session := playground.NewSession(playground.SessionProps{
		Kind:    app.Tree.Kind,
		Logger:  logger,
		Metrics: metrics,
	})

	binder := rpcs.NewHttpBinder(rpcs.HttpBinderProperties{
		Encoder:        &rpcs.JsonEncoder{},
		Logger:         logger,
		HandlerFactory: rpcs.NewHttpJsonHandlerFactory(logger, app.Server.BodyLimit),
	})
	binder.AddPreProcessor(rpcs.NewHttpCorsPreProcessor(rpcs.HttpCorsPreProcessorProps{
		Enabled:        true,
		AllowedOrigins: app.Server.Origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", rpcs.HttpHeaderTraceID},
		ExposedHeaders: []string{rpcs.HttpHeaderTraceID},
	}))
	playground.Bind(binder, session)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.Handle("/", binder.Build())
	return mux, nil
}

// listen binds the server address, retrying while the address
// is still held by a previous process
func listen(ctx context.Context, address string, logger logs.Logger) (net.Listener, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err := concurrent.Retry(ctx, concurrent.SupplierFunc(func(ctx context.Context) (interface{}, error) {
		var lc net.ListenConfig
		l, err := lc.Listen(ctx, "tcp", address)
		if err != nil {
			logger.Warn(ctx, "failed to bind address", logs.MapFields{
				"address": address,
				"err":     err.Error(),
			})
			return nil, err
		}
		return l, nil
	}))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to listen on %s", address)
	}

	return v.(net.Listener), nil
}

func serve(ctx context.Context, app *AppConfig) error {
	base := app.Logger()
	logger := base.ForClass("main", "serve")

	handler, err := newHandler(app, base, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	l, err := listen(ctx, app.Server.Address, logger)
	if err != nil {
		return err
	}

	return serveListener(ctx, l, handler, app, logger)
}

// serveListener serves requests on l until the context is done, then
// waits for the requests in flight to complete
func serveListener(ctx context.Context, l net.Listener, handler http.Handler, app *AppConfig, logger logs.Logger) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		errC <- server.Serve(l)
	}()

	logger.Info(ctx, "playground listening", logs.MapFields{
		"address": l.Addr().String(),
		"kind":    app.Tree.Kind.String(),
	})

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info(shutdownCtx, "playground shutting down")
	return server.Shutdown(shutdownCtx)
}
