package parsing

import (
	"strings"

	"github.com/pbarbosa/corretor/internal/types"
)

// textOperation names the primary-text markers of one of the three text
// operations. Tokens and headings are tried in order; rewrite and tone fall back
// to the correction markers, which historical upstream prompts reused.
type textOperation struct {
	tokens   []string
	headings []string
}

// parseTextOperation runs the shared three-state driver: the format is detected
// once up front and never re-evaluated mid-parse. The result is always usable;
// the unstructured state echoes the trimmed input with the default evaluation.
func parseTextOperation(raw string, op textOperation) (string, types.Evaluation) {
	switch DetectFormat(raw) {
	case FormatLegacy:
		return legacyPrimary(raw, op.tokens), legacyEvaluation(raw)
	case FormatHeading:
		return headingPrimary(raw, op.headings), AssembleEvaluation(raw)
	default:
		return strings.TrimSpace(raw), types.DefaultEvaluation()
	}
}

func legacyPrimary(raw string, tokens []string) string {
	for _, token := range tokens {
		if text, ok := BetweenMarkers(raw, token, tokenEnd); ok {
			return text
		}
	}
	return strings.TrimSpace(raw)
}

func headingPrimary(raw string, names []string) string {
	for _, name := range names {
		if text, ok := HeadingSection(raw, name); ok {
			return text
		}
	}
	return strings.TrimSpace(raw)
}
