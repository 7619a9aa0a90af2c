// Command dbcheck verifies that the configured database is reachable and
// reports how many productos it holds.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"moviles/internal/config"
	"moviles/internal/database"
	"moviles/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	dbName, count, err := check(ctx, pool, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Successfully connected to database: %s (%d productos)\n", dbName, count)
	return nil
}

// check returns the current database name and the number of stored productos.
func check(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) (string, int, error) {
	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		return "", 0, fmt.Errorf("failed to query database name: %w", err)
	}

	productos, err := repository.NewProductoRepository(pool, logger).ListAll(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("failed to list productos (has the API run once?): %w", err)
	}

	return dbName, len(productos), nil
}
