// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/pbarbosa/corretor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList appends up to maxItemsToShow items under a label.
func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintEvaluation outputs a human-readable summary of a parsed evaluation.
func (p *Printer) PrintEvaluation(ev *types.Evaluation) {
	if ev == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %.1f\n\n", ev.Score))

	writeList(&sb, "Strengths", ev.Strengths)
	writeList(&sb, "Weaknesses", ev.Weaknesses)
	writeList(&sb, "Suggestions", ev.Suggestions)
	writeList(&sb, "Changes", ev.Changes)
	writeList(&sb, "Tone changes", ev.ToneChanges)

	if ev.ToneApplied != "" {
		sb.WriteString(fmt.Sprintf("Tone applied:  %s\n", ev.ToneApplied))
	}
	if ev.StyleApplied != "" {
		sb.WriteString(fmt.Sprintf("Style applied: %s\n", ev.StyleApplied))
	}
	if ev.Model != "" {
		sb.WriteString(fmt.Sprintf("Model:         %s\n", ev.Model))
	}

	p.printBox("EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDetection outputs a human-readable summary of a detection result.
func (p *Printer) PrintDetection(result *types.DetectionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Verdict:     %s\n", result.Result.Verdict))
	sb.WriteString(fmt.Sprintf("Probability: %.0f%%\n", result.Result.Probability))
	sb.WriteString(fmt.Sprintf("Confidence:  %s\n\n", result.Result.Confidence))

	writeList(&sb, "Signals", result.Result.Signals)

	sb.WriteString(fmt.Sprintf("Words: %d  Characters: %d  Sentences: %d\n",
		result.TextStats.Words, result.TextStats.Characters, result.TextStats.Sentences))

	if result.LinguisticAnalysis != nil {
		sb.WriteString("\n")
		writeList(&sb, "Brazilianisms", result.LinguisticAnalysis.Brazilianisms)
		if result.LinguisticAnalysis.GrammarSummary != "" {
			sb.WriteString(fmt.Sprintf("Grammar: %s\n", result.LinguisticAnalysis.GrammarSummary))
		}
	}

	p.printBox("AI AUTHORSHIP DETECTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs the final counts of a batch run.
func (p *Printer) PrintBatchSummary(parsed, skipped int) {
	content := fmt.Sprintf("Parsed:  %d\nSkipped: %d", parsed, skipped)
	p.printBox("BATCH SUMMARY", content)
}
