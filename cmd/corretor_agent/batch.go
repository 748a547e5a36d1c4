package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pbarbosa/corretor/internal/config"
	"github.com/pbarbosa/corretor/internal/observability"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse a directory of raw upstream responses",
	Long:  "Parse every .txt file in a directory concurrently, writing one typed JSON result per input. Detection inputs with no usable result are skipped, not failed.",
	RunE:  runBatch,
}

var (
	batchOperation  string
	batchInDir      string
	batchOutDir     string
	batchWorkers    int
	batchConfigFile string
)

func init() {
	batchCmd.Flags().StringVar(&batchOperation, "op", "", "Operation: correction | rewrite | tone | detection")
	batchCmd.Flags().StringVar(&batchInDir, "in-dir", "", "Directory of raw response .txt files")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "Output directory (default: same as --in-dir)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Parallel workers (0 = number of CPUs)")
	batchCmd.Flags().StringVar(&batchConfigFile, "config", "", "Path to JSON config file supplying defaults")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	if batchConfigFile != "" {
		cfg, err := config.LoadConfig(batchConfigFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		mergeBatchConfig(cfg)
	}

	if batchInDir == "" {
		return fmt.Errorf("must provide --in-dir (or 'in_dir' in a config file)")
	}
	if batchOperation == "" {
		batchOperation = "correction"
	}
	if batchOutDir == "" {
		batchOutDir = batchInDir
	}
	if batchWorkers <= 0 {
		batchWorkers = runtime.NumCPU()
	}

	entries, err := os.ReadDir(batchInDir)
	if err != nil {
		return fmt.Errorf("failed to read input directory: %w", err)
	}

	runID := uuid.New()
	logger := log.With().Str("run_id", runID.String()).Str("operation", batchOperation).Logger()

	if err := os.MkdirAll(batchOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var parsed, skipped atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(batchWorkers)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		name := entry.Name()
		g.Go(func() error {
			inPath := filepath.Join(batchInDir, name)
			outPath := filepath.Join(batchOutDir, strings.TrimSuffix(name, ".txt")+".json")

			raw, err := readInput(inPath)
			if err != nil {
				return err
			}

			result, err := runOperation(batchOperation, raw)
			if errors.Is(err, errDetectionUnavailable) {
				logger.Warn().Str("file", name).Msg("no detection result in response, skipping")
				skipped.Add(1)
				return nil
			}
			if err != nil {
				return err
			}

			if err := writeResult(outPath, result); err != nil {
				return err
			}
			logger.Debug().Str("file", name).Str("out", outPath).Msg("parsed response")
			parsed.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info().
		Int64("parsed", parsed.Load()).
		Int64("skipped", skipped.Load()).
		Msg("batch complete")

	if rootVerbose {
		observability.NewPrinter(os.Stderr).PrintBatchSummary(int(parsed.Load()), int(skipped.Load()))
	}
	return nil
}

// mergeBatchConfig fills unset flags from a loaded config file; flags win.
func mergeBatchConfig(cfg *config.Config) {
	if batchInDir == "" {
		batchInDir = cfg.InDir
	}
	if batchOutDir == "" {
		batchOutDir = cfg.OutDir
	}
	if batchOperation == "" {
		batchOperation = cfg.Operation
	}
	if batchWorkers == 0 {
		batchWorkers = cfg.Workers
	}
	if cfg.Verbose {
		rootVerbose = true
	}
}
