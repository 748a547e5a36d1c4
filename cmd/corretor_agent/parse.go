package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pbarbosa/corretor/internal/observability"
	"github.com/pbarbosa/corretor/internal/parsing"
	"github.com/pbarbosa/corretor/internal/types"
)

// errDetectionUnavailable reports input that carries no usable detection result.
// The parser signals this with a nil result, never an exception.
var errDetectionUnavailable = errors.New("detection result unavailable for this input")

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse one raw upstream response into a typed JSON result",
	Long:  "Parse a raw response file (or stdin) with the chosen operation parser and write the typed result as indented JSON.",
	RunE:  runParse,
}

var (
	parseOperation string
	parseInputFile string
	parseOutput    string
)

func init() {
	parseCmd.Flags().StringVar(&parseOperation, "op", "correction", "Operation: correction | rewrite | tone | detection")
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to raw response file (default: stdin)")
	parseCmd.Flags().StringVarP(&parseOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	raw, err := readInput(parseInputFile)
	if err != nil {
		return err
	}

	log.Debug().
		Str("operation", parseOperation).
		Str("format", parsing.DetectFormat(raw).String()).
		Int("bytes", len(raw)).
		Msg("parsing response")

	result, err := runOperation(parseOperation, raw)
	if err != nil {
		return err
	}

	if rootVerbose {
		printResult(observability.NewPrinter(os.Stderr), result)
	}

	return writeResult(parseOutput, result)
}

// runOperation dispatches raw to the parser for op. Only detection can fail:
// the three text parsers always produce a result.
func runOperation(op, raw string) (any, error) {
	switch op {
	case "correction":
		return parsing.ParseCorrection(raw), nil
	case "rewrite":
		return parsing.ParseRewrite(raw), nil
	case "tone":
		return parsing.ParseTone(raw), nil
	case "detection":
		result := parsing.ParseDetection(raw)
		if result == nil {
			return nil, errDetectionUnavailable
		}
		return result, nil
	default:
		return nil, fmt.Errorf("unknown operation %q (expected correction, rewrite, tone or detection)", op)
	}
}

func printResult(printer *observability.Printer, result any) {
	switch r := result.(type) {
	case types.CorrectionResult:
		printer.PrintEvaluation(&r.Evaluation)
	case types.RewriteResult:
		printer.PrintEvaluation(&r.Evaluation)
	case types.ToneResult:
		printer.PrintEvaluation(&r.Evaluation)
	case *types.DetectionResult:
		printer.PrintDetection(r)
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

func writeResult(path string, result any) error {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
