// Package main provides the collector command that joins case files, transcripts
// and the lookup dataset into one JSON dataset.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"casecorpus/internal/assembler"
	"casecorpus/internal/collector"
	"casecorpus/internal/config"
	"casecorpus/internal/logger"
	"casecorpus/internal/lookup"
	"casecorpus/internal/models"
	"casecorpus/internal/report"
)

const defaultConfigPath = "configs/collector.yaml"

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file (default: "+defaultConfigPath+" if present)")
	dumpConfig := flag.String("dump-config", "", "Write the effective configuration to this path and exit")
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Error loading config: %v\n", err)
	}

	if *dumpConfig != "" {
		if err := cfg.SaveConfig(*dumpConfig); err != nil {
			log.Fatalf("Error saving config: %v\n", err)
		}

		fmt.Printf("✅ Saved config to: %s\n", *dumpConfig)

		return
	}

	logr := logger.NewLogger(cfg.Collector.Logging.Level)

	if err := run(cfg, logr); err != nil {
		logr.Error("❌ Collection failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig uses path when given, the default config file when it exists,
// and the built-in defaults otherwise.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err != nil {
			return config.Default(), nil
		}

		path = defaultConfigPath
	}

	return config.LoadConfig(path)
}

func run(cfg *config.Config, logr *logger.Logger) error {
	paths := cfg.Collector.Paths

	logr.Info("🚀 Starting case collection", "config", cfg.String())

	// 1. Lookup dataset
	// -----------------
	loader := lookup.NewLoader()

	table, err := loader.LoadFile(paths.LookupCSV)
	if err != nil {
		return err
	}

	if len(loader.MissingColumns) > 0 {
		logr.Warn("⚠️  Lookup dataset is missing columns, reading them as empty", "columns", loader.MissingColumns)
	}

	logr.Info("Loaded lookup dataset", "path", paths.LookupCSV, "rows", len(table))

	// 2. Base case files
	// ------------------
	c := collector.NewCollector(paths.CasesDir, table, logr.With("dir", paths.CasesDir))
	set := collector.NewCaseSet()

	baseCount, err := c.CollectBaseCases(set)
	if err != nil {
		return err
	}

	logr.Info("Collected cases", "files", baseCount)

	// 3. Transcripts
	// --------------
	transcriptCount, err := c.AttachTranscripts(set)
	if err != nil {
		return err
	}

	logr.Info("Transcript loading complete", "files", transcriptCount)

	// 4. Assembly
	// -----------
	dataset, summary := assembler.Assemble(set, models.Stats{
		TotalBaseCaseFiles:   set.Len(),
		TotalTranscriptFiles: transcriptCount,
	})

	logr.Info("Decision split",
		"first_party_wins", summary.FirstPartyWins,
		"second_party_wins", summary.SecondPartyWins)

	if cfg.Collector.Lock.Enabled {
		unlock, err := lockOutput(cfg.LockPath())
		if err != nil {
			return err
		}
		defer unlock()
	}

	data, err := assembler.WriteFile(paths.Output, dataset, cfg.Indent())
	if err != nil {
		return err
	}

	logr.Info("✅ Dataset written",
		"path", paths.Output,
		"cases", summary.Included,
		"skipped", summary.Skipped,
		"bytes", len(data))

	rep := report.New(paths.Output, summary)

	if err := rep.WriteConsole(os.Stdout); err != nil {
		return fmt.Errorf("error printing summary: %w", err)
	}

	if paths.Report != "" {
		if err := rep.WriteMarkdown(paths.Report, data, time.Now()); err != nil {
			return err
		}

		logr.Info("Report written", "path", paths.Report)
	}

	return nil
}

// lockOutput takes an exclusive lock beside the output file. The returned
// func removes the lock file and releases the lock.
func lockOutput(lockPath string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return nil, fmt.Errorf("error creating directory: %w", err)
	}

	lock := flock.New(lockPath)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	if !ok {
		return nil, errors.New("another collector run is writing " + lockPath)
	}

	return func() {
		_ = os.Remove(lockPath)
		_ = lock.Unlock()
	}, nil
}
