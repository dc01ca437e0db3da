package main

import (
	"bytes"
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JaimeStill/advocates/internal/advocates"
	"github.com/JaimeStill/advocates/internal/config"
	"github.com/JaimeStill/advocates/pkg/database"
	"github.com/JaimeStill/advocates/pkg/formatting"
	"github.com/JaimeStill/advocates/pkg/storage"
)

//go:embed seed.json
var defaultRecords []byte

type options struct {
	file     string
	blob     string
	truncate bool
	maxSize  string
}

func main() {
	var opts options
	flag.StringVar(&opts.file, "file", "", "Read records from a local JSON file")
	flag.StringVar(&opts.blob, "blob", "", "Read records from this blob in the configured storage container")
	flag.BoolVar(&opts.truncate, "truncate", false, "Empty the advocates table before inserting")
	flag.StringVar(&opts.maxSize, "max-size", "", "Override storage max_download_size for -blob (e.g. 16MB)")
	flag.Parse()

	if opts.file != "" && opts.blob != "" {
		log.Fatal("-file and -blob are mutually exclusive")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("system", "seed")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts, logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, opts options, logger *slog.Logger) error {
	data, source, err := readSource(ctx, cfg, opts, logger)
	if err != nil {
		return err
	}
	logger.Info("records loaded", "source", source, "size", formatting.FormatBytes(int64(len(data))))

	records, err := advocates.DecodeRecords(bytes.NewReader(data))
	if err != nil {
		return err
	}

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return err
	}
	defer db.Connection().Close()

	n, err := advocates.Seed(ctx, db.Connection(), records, advocates.SeedOptions{Truncate: opts.truncate})
	if err != nil {
		return err
	}

	logger.Info("seed complete", "inserted", n, "truncated", opts.truncate)
	return nil
}

func readSource(ctx context.Context, cfg *config.Config, opts options, logger *slog.Logger) ([]byte, string, error) {
	switch {
	case opts.file != "":
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return nil, "", fmt.Errorf("read %s: %w", opts.file, err)
		}
		return data, opts.file, nil
	case opts.blob != "":
		storeCfg := cfg.Storage
		if opts.maxSize != "" {
			storeCfg.Merge(&storage.Config{MaxDownloadSize: opts.maxSize})
			if err := storeCfg.Finalize(nil); err != nil {
				return nil, "", fmt.Errorf("storage: %w", err)
			}
		}

		store, err := storage.New(&storeCfg, logger)
		if err != nil {
			return nil, "", err
		}
		data, err := download(ctx, store, opts.blob)
		if err != nil {
			return nil, "", err
		}
		return data, storeCfg.ContainerName + "/" + opts.blob, nil
	default:
		return defaultRecords, "embedded", nil
	}
}

func download(ctx context.Context, store storage.System, key string) ([]byte, error) {
	ok, err := store.Exists(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("blob %s: %w", key, storage.ErrNotFound)
	}
	return store.Download(ctx, key)
}
