package main

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/cccteam/logger"
	"github.com/cccteam/rolegate"
	"github.com/cccteam/rolegate/internal/config"
	"github.com/cccteam/rolegate/login"
	"github.com/cccteam/rolegate/snapshot"
	"github.com/go-playground/errors/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP server",
		Long: `Start the dashboard HTTP server.

The session snapshot is kept in an encrypted cookie by default. Set
snapshot.backend to memory, postgres or spanner to keep it server side,
keyed by the client ID cookie.

Example:
  ROLEGATE_COOKIE_KEY=$(head -c 96 /dev/urandom | base64 -w0) rolegate serve --addr :9090`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if err := cfg.ValidateServer(); err != nil {
				return err
			}

			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "address to listen on (overrides server.addr)")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	options := []rolegate.Option{
		rolegate.WithCookieName(cfg.Server.CookieName),
		rolegate.WithTokenIssuer(issuer(cfg)),
	}
	if cfg.Server.CookieDomain != "" {
		options = append(options, rolegate.WithCookieDomain(cfg.Server.CookieDomain))
	}

	table, closeTable, err := snapshotTable(ctx, cfg.Snapshot)
	if err != nil {
		return err
	}
	defer closeTable()
	if table != nil {
		options = append(options, rolegate.WithSnapshotTable(table))
	}

	g, err := rolegate.New(cfg.Server.CookieKey, options...)
	if err != nil {
		return errors.Wrap(err, "rolegate.New()")
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           logger.NewConsoleExporter().Middleware()(g.Routes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		return errors.Wrap(err, "http.Server.ListenAndServe()")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "http.Server.Shutdown()")
	}

	return nil
}

// snapshotTable opens the server side snapshot table. The cookie backend has
// no table and returns nil.
func snapshotTable(ctx context.Context, cfg config.SnapshotConfig) (table snapshot.Table, closeFn func(), err error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return snapshot.NewMemory(), func() {}, nil
	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, nil, errors.Wrap(err, "pgxpool.New()")
		}

		return snapshot.NewPostgres(pool), pool.Close, nil
	case config.BackendSpanner:
		client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
		if err != nil {
			return nil, nil, errors.Wrap(err, "spanner.NewClient()")
		}

		spannerTable := snapshot.NewSpanner(client)
		spannerTable.SetTableName(cfg.SpannerTable)

		return spannerTable, client.Close, nil
	}

	return nil, func() {}, nil
}

func issuer(cfg *config.Config) login.TokenIssuer {
	if cfg.Login.Issuer == config.IssuerUUID {
		return login.UUIDIssuer{}
	}

	return login.PlaceholderIssuer{}
}
