package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kaiyo-foods/receiptlines/constants"
	"github.com/kaiyo-foods/receiptlines/internal/alias"
	"github.com/kaiyo-foods/receiptlines/internal/common"
	"github.com/kaiyo-foods/receiptlines/internal/entity"
	"github.com/kaiyo-foods/receiptlines/internal/export"
	"github.com/kaiyo-foods/receiptlines/internal/pipeline"
	"github.com/kaiyo-foods/receiptlines/internal/rules"
	"github.com/kaiyo-foods/receiptlines/internal/store"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir       = flag.String("dir", "", "directory of OCR .txt dumps to process")
		file      = flag.String("file", "", "single OCR .txt dump to process")
		vendorTag = flag.String("vendor", "", "vendor tag for the receipts (required)")
		out       = flag.String("out", "", "output XLSX file path (optional)")
		dbPath    = flag.String("db", "", "sqlite results database path (optional, overrides RECEIPTS_DB)")
	)
	flag.Parse()

	if *dir == "" && *file == "" {
		printError("Error: one of --dir or --file is required\n")
		os.Exit(1)
	}
	if *vendorTag == "" {
		printError("Error: --vendor is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if *dbPath != "" {
		cfg.Store.DBPath = *dbPath
	}

	aliases, err := alias.Load(cfg.Pipeline.AliasPath, logger)
	if err != nil {
		printError("Error: load aliases: %v\n", err)
		os.Exit(1)
	}
	reg, err := rules.Load(cfg.Pipeline.RulesPath, logger)
	if err != nil {
		printError("Error: load vendor rules: %v\n", err)
		os.Exit(1)
	}

	var db *store.Store
	if cfg.Store.DBPath != "" {
		db, err = store.Open(ctx, cfg.Store.DBPath, logger)
		if err != nil {
			printError("Error: open results database: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = db.Close() }()
	}

	paths, err := collectInputs(*dir, *file)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		printError("Error: no .txt inputs found\n")
		os.Exit(1)
	}

	p := pipeline.New(logger, aliases, reg, nil)
	vendor := constants.ParseVendor(*vendorTag)

	var allItems []*entity.ItemRecord
	processed, failed := 0, 0
	for _, path := range paths {
		res, err := processFile(ctx, p, vendor, path)
		if err != nil {
			// a bad receipt never aborts the batch
			logger.Error("receipt.failed", "path", path, "error", err)
			failed++
			continue
		}
		if db != nil {
			if err := db.SaveResult(ctx, path, res); err != nil {
				logger.Error("receipt.save_failed", "path", path, "error", err)
				failed++
				continue
			}
		}
		allItems = append(allItems, res.Items...)
		processed++
	}

	if *out != "" {
		b, err := export.ItemsXLSX(allItems, logger)
		if err != nil {
			printError("Error: export: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, b, 0o644); err != nil {
			printError("Error: write %s: %v\n", *out, err)
			os.Exit(1)
		}
	}

	logger.Info("batch.done",
		"receipts", processed, "failed", failed, "items", len(allItems),
	)
	if failed > 0 && processed == 0 {
		os.Exit(1)
	}
}

func collectInputs(dir, file string) ([]string, error) {
	if file != "" {
		return []string{file}, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".txt") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func processFile(ctx context.Context, p *pipeline.Pipeline, vendor constants.Vendor, path string) (pipeline.Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	rec := entity.Receipt{
		Vendor: vendor,
		Source: path,
		Lines:  strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n"),
	}
	return p.Run(ctx, rec)
}
