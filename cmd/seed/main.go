package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"talentmatch/internal/app"
	"talentmatch/internal/config"
	"talentmatch/internal/database/seeder"
)

func main() {
	withDemo := flag.Bool("demo", false, "also insert demo company, jobs, and candidate")
	flag.Parse()

	_ = godotenv.Load()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	r := seeder.Runner{Seeders: seeder.Defaults(*withDemo), Logger: logger}
	if err := r.Run(ctx, c.DB); err != nil {
		logger.Fatalf("seed failed: %v", err)
	}

	logger.Printf("[Seed] done")
}
