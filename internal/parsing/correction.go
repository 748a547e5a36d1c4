package parsing

import "github.com/pbarbosa/corretor/internal/types"

// ParseCorrection extracts the corrected text and its evaluation from a raw
// upstream response. It never fails: when no structure is recognized the
// corrected text is the trimmed input and the evaluation is the default.
func ParseCorrection(raw string) types.CorrectionResult {
	text, ev := parseTextOperation(raw, textOperation{
		tokens:   []string{tokenCorrected},
		headings: []string{headingCorrected},
	})
	return types.CorrectionResult{CorrectedText: text, Evaluation: ev}
}
