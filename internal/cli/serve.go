package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/internal/server"
	"github.com/matzehuels/chartframe/pkg/cache"
	"github.com/matzehuels/chartframe/pkg/pipeline"
	"github.com/matzehuels/chartframe/pkg/store"
)

// serveCommand creates the serve command for running the HTTP layout API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		noCache  bool
		redisURL string
		mongoURL string
		mongoDB  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout API",
		Long: `Run the HTTP layout API.

The server exposes the layout pipeline over HTTP: one-shot layout
computation plus CRUD for named, persisted layouts. Without --redis and
--mongo it runs standalone with the local file cache and an in-memory
store, which is fine for a single instance. Multi-instance deployments
should point --redis at a shared cache and --mongo at a shared store.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache, redisURL, mongoURL, mongoDB)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable layout caching")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis address for a shared cache (host:port)")
	cmd.Flags().StringVar(&mongoURL, "mongo", "", "MongoDB URI for a shared store")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", "", "MongoDB database name")

	return cmd
}

// runServe wires up the cache, store, and server, then serves until ctx ends.
func (c *CLI) runServe(ctx context.Context, addr string, noCache bool, redisURL, mongoURL, mongoDB string) error {
	layoutCache, err := c.serveCache(ctx, noCache, redisURL)
	if err != nil {
		return err
	}

	st, err := c.serveStore(ctx, mongoURL, mongoDB)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())

	runner := pipeline.NewRunner(layoutCache, nil, c.Logger)
	defer runner.Close()

	srv := server.New(server.Config{Addr: addr}, runner, st, c.Logger)
	return srv.ListenAndServe(ctx)
}

// serveCache picks the cache backend for server mode.
func (c *CLI) serveCache(ctx context.Context, noCache bool, redisURL string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisURL != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisURL})
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c.Logger.Info("using redis cache", "addr", redisURL)
		return rc, nil
	}
	return newCache(false)
}

// serveStore picks the store backend for server mode.
func (c *CLI) serveStore(ctx context.Context, mongoURL, mongoDB string) (store.Store, error) {
	if mongoURL == "" {
		return store.NewMemoryStore(), nil
	}
	st, err := store.NewMongoStore(ctx, store.MongoConfig{URI: mongoURL, Database: mongoDB})
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	c.Logger.Info("using mongodb store", "db", mongoDB)
	return st, nil
}
