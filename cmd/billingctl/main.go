package main

import (
	"context"
	"fmt"
	"os"

	"medipay/internal/bootstrap"
	"medipay/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

var Version = "dev"

func main() {
	root := newRootCmd(openServices)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openServices builds the same container the API server uses.
func openServices(ctx context.Context) (services, error) {
	cfg, err := config.Load()
	if err != nil {
		return services{}, err
	}
	c, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		return services{}, err
	}
	return services{
		commission: c.Commission,
		payments:   c.Payments,
		pendingTTL: cfg.PendingOrderTTL,
		close:      c.Close,
	}, nil
}
