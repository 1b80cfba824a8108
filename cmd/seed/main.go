// Command seed wipes the database and loads the demo fixture.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/hic-health/hic-be/internal/config"
	"github.com/hic-health/hic-be/internal/seed"
	"github.com/hic-health/hic-be/internal/storage/open"
)

func main() {
	if err := run(); err != nil {
		log.Printf("seed failed: %v", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := context.Background()
	store, err := open.Store(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer store.Close()

	sum, err := seed.New(store).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d users and %d appointments.\n\nDemo credentials:\n", len(sum.Users), len(sum.Appointments))
	for _, c := range sum.Credentials {
		fmt.Printf("  %-8s %-26s %s\n", c.Role, c.Email, c.Password)
	}
	return nil
}
