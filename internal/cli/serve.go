package cli

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pchuan98/livecharts/internal/api"
	"github.com/pchuan98/livecharts/pkg/cache"
	"github.com/pchuan98/livecharts/pkg/pipeline"
)

// Environment variables read by serve when the matching flag is unset.
const (
	envRedisAddr = "LIVECHARTS_REDIS_ADDR"
	envMongoURI  = "LIVECHARTS_MONGO_URI"
)

const defaultAddr = ":8080"

// serveOptions holds the flags of the serve command.
type serveOptions struct {
	addr    string
	redis   string
	mongo   string
	mongoDB string
	prefix  string
	maxBody int64
	timeout time.Duration
	noCache bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the measure and render API over HTTP",
		Long: `Serve the measure and render API over HTTP.

Definitions are POSTed to /v1/measure or /v1/render. Results are cached in
Redis or MongoDB when configured, and in the local file cache otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			ch, backend, err := opts.cache(ctx)
			if err != nil {
				return err
			}
			var keyer cache.Keyer
			if opts.prefix != "" {
				keyer = cache.NewScopedKeyer(nil, opts.prefix)
			}
			runner := pipeline.NewRunner(cache.Instrument(ch), keyer, logger)
			defer runner.Close()

			srv := api.New(runner, logger,
				api.WithMaxBodyBytes(opts.maxBody),
				api.WithTimeout(opts.timeout))

			printSuccess("Serving the chart API")
			printKeyValue("Address", opts.addr)
			printKeyValue("Cache", backend)
			logger.Debug("listening", "addr", opts.addr, "max_body", opts.maxBody, "timeout", opts.timeout)
			err = srv.ListenAndServe(ctx, opts.addr)
			if errors.Is(err, context.Canceled) {
				logger.Info("server stopped")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis address for the shared cache (env "+envRedisAddr+")")
	cmd.Flags().StringVar(&opts.mongo, "mongo", "", "MongoDB URI for the shared cache (env "+envMongoURI+")")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", cache.DefaultMongoDatabase, "MongoDB database")
	cmd.Flags().StringVar(&opts.prefix, "cache-prefix", "", "prefix for shared cache keys (e.g. staging:)")
	cmd.Flags().Int64Var(&opts.maxBody, "max-body", api.DefaultMaxBodyBytes, "maximum request body in bytes")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "per-request timeout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// cache opens the configured backend and names it. Redis wins over
// MongoDB, and both win over the local file cache.
func (o serveOptions) cache(ctx context.Context) (cache.Cache, string, error) {
	if o.noCache {
		return cache.NewNullCache(), "disabled", nil
	}
	redisAddr := firstNonEmpty(o.redis, os.Getenv(envRedisAddr))
	mongoURI := firstNonEmpty(o.mongo, os.Getenv(envMongoURI))

	switch {
	case redisAddr != "":
		c, err := cache.NewRedisCache(ctx, redisAddr)
		return c, "redis " + redisAddr, err
	case mongoURI != "":
		c, err := cache.NewMongoCache(ctx, mongoURI, o.mongoDB, cache.DefaultMongoCollection)
		return c, "mongodb " + o.mongoDB, err
	default:
		c, err := newCache(false)
		return c, "file", err
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
