package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/finsight/finsight/advisor"
	"github.com/finsight/finsight/server"
	"github.com/finsight/finsight/store"
)

// serveCmd runs the JSON API server.
type serveCmd struct {
	addr      string
	redisAddr string
	redisPass string
	redisDB   int
	secret    string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the JSON API server" }
func (*serveCmd) Usage() string {
	return `fin serve -secret <jwt-secret> [-addr :8080] [-redis <host:port>]

  Serves the record API for web clients. With -redis the records live in
  Redis; without it they stay in the local data folder. The advisor
  endpoint activates when GEMINI_API_KEY or OPENAI_API_KEY is set.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", ":8080", "Listen address.")
	f.StringVar(&c.redisAddr, "redis", "", "Redis address. Empty selects the file store.")
	f.StringVar(&c.redisPass, "redis-password", "", "Redis password.")
	f.IntVar(&c.redisDB, "redis-db", 0, "Redis database number.")
	f.StringVar(&c.secret, "secret", "", "HMAC secret used to verify bearer tokens.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.secret == "" {
		c.secret = os.Getenv("FINSIGHT_JWT_SECRET")
	}
	if c.secret == "" {
		fmt.Fprintln(os.Stderr, "Error: a JWT secret is required (-secret or FINSIGHT_JWT_SECRET)")
		return subcommands.ExitUsageError
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var st store.Store
	if c.redisAddr != "" {
		rs, err := store.NewRedisStore(ctx, c.redisAddr, c.redisPass, c.redisDB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to Redis: %v\n", err)
			return subcommands.ExitFailure
		}
		defer rs.Close()
		st = rs
	} else {
		st = store.NewFileStore(*dataDir)
	}

	var adv *advisor.Advisor
	if models, err := buildModels(ctx); err == nil {
		adv = advisor.New(log, models...)
	} else {
		log.Warn().Err(err).Msg("advisor disabled")
	}

	srv := server.New(server.Config{
		Store:     st,
		Advisor:   adv,
		JWTSecret: []byte(c.secret),
		Logger:    log,
	})
	defer srv.Close()

	if err := srv.Run(c.addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
