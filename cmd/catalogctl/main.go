// Command catalogctl is the operator CLI for catalog moderation.
//
// Example:
//
//	catalogctl --actor=<uuid> --kind=tag approve <id> --name="Vegan"
//	catalogctl --actor=<uuid> merge <source-id> <target-id>
//	catalogctl --actor=<uuid> departure --contributor=<uuid> --community=<uuid>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/heartmarshall/cookbook-backend/internal/adapter/notify"
	"github.com/heartmarshall/cookbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cookbook-backend/internal/app"
	"github.com/heartmarshall/cookbook-backend/internal/auth"
	"github.com/heartmarshall/cookbook-backend/internal/cli"
	"github.com/heartmarshall/cookbook-backend/internal/config"
	"github.com/heartmarshall/cookbook-backend/internal/eventbus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand(cli.Env{
		Open: open,
		Issuer: func() (cli.TokenIssuer, error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, err
			}
			return auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer), nil
		},
	})

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// open connects to PostgreSQL and, when enabled, forwards events to Redis
// so creators hear about operator decisions too.
func open(ctx context.Context) (*cli.Services, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	closers := []func(){pool.Close}

	bus := eventbus.New(logger)
	if cfg.Redis.Enabled {
		client, err := notify.NewClient(ctx, cfg.Redis)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		closers = append(closers, func() { client.Close() }) //nolint:errcheck
		bus.Subscribe("notify", notify.NewPublisher(client, cfg.Redis.Channel, logger).Handle)
	}

	c := app.NewContainer(cfg, pool, bus, logger)
	svc := &cli.Services{
		Ingredients:     c.Ingredients,
		Tags:            c.Tags,
		IngredientMerge: c.IngredientMerge,
		TagMerge:        c.TagMerge,
		Orphans:         c.Orphans,
	}
	return svc, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}, nil
}
