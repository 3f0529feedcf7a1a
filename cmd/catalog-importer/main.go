package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/vinquiz/internal/catalog"
	"github.com/saulo-duarte/vinquiz/internal/config"
	"github.com/saulo-duarte/vinquiz/internal/container"
)

func main() {
	grapes := flag.String("grapes", "", "path to the grape varieties TSV")
	designations := flag.String("designations", "", "path to the wine designations TSV")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *grapes, *designations); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, grapesPath, designationsPath string) error {
	if grapesPath == "" && designationsPath == "" {
		return fmt.Errorf("nothing to import: pass -grapes and/or -designations")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	config.Init(cfg.LogLevel)

	db, err := config.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	if err := container.Migrate(db); err != nil {
		return err
	}

	// Drop the cached id lists of a shared redis too, so running servers
	// see the new rows right away.
	cache := catalog.NewMemoryCache(cfg.Catalog.CacheTTL)
	if cfg.Redis.URL != "" {
		rdb, err := container.OpenRedis(ctx, cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer rdb.Close()
		cache = catalog.NewRedisCache(rdb, cfg.Catalog.CacheTTL)
	}
	importer := catalog.NewImporter(catalog.NewRepository(db), cache)

	if grapesPath != "" {
		if err := importFile(ctx, grapesPath, importer.ImportGrapes); err != nil {
			return fmt.Errorf("importing grapes: %w", err)
		}
	}
	if designationsPath != "" {
		if err := importFile(ctx, designationsPath, importer.ImportDesignations); err != nil {
			return fmt.Errorf("importing designations: %w", err)
		}
	}
	return nil
}

func importFile(ctx context.Context, path string, load func(context.Context, io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := load(ctx, f)
	if err != nil {
		return err
	}
	config.Logger.WithFields(logrus.Fields{"file": path, "rows": n}).Info("Import finished")
	return nil
}
