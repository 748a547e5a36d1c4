package parsing

import "github.com/pbarbosa/corretor/internal/types"

// ParseTone extracts the tone-adjusted text and its evaluation from a raw
// upstream response, falling back to the correction markers when the
// tone-specific ones are absent.
func ParseTone(raw string) types.ToneResult {
	text, ev := parseTextOperation(raw, textOperation{
		tokens:   []string{tokenAdjusted, tokenCorrected},
		headings: []string{headingAdjusted, headingCorrected},
	})
	return types.ToneResult{AdjustedText: text, Evaluation: ev}
}
