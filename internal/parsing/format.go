// Package parsing extracts typed results from raw upstream generation responses.
//
// The upstream service has shipped at least three incompatible response shapes
// over time: a legacy format delimiting blocks with <<<TOKEN>>> pairs (whose
// evaluation block may carry embedded JSON or heading-structured text), a newer
// pure heading-structured document, and plain unstructured text. Every parser in
// this package is pure, total, and never panics or returns an error for malformed
// input; the worst case for the text operations is echoing the trimmed input with
// a default evaluation.
package parsing

import "strings"

// Format classifies which wire shape an upstream response arrived in.
type Format int

const (
	// FormatUnstructured is free text with no recognizable structure.
	FormatUnstructured Format = iota
	// FormatLegacy uses paired <<<TOKEN>>> delimiters around blocks.
	FormatLegacy
	// FormatHeading uses leveled "#"/"##" headings to delimit sections.
	FormatHeading
)

// String returns a short name for logging.
func (f Format) String() string {
	switch f {
	case FormatLegacy:
		return "legacy"
	case FormatHeading:
		return "heading"
	default:
		return "unstructured"
	}
}

// Legacy delimiter tokens. The correction open token doubles as the fallback for
// rewrite and tone: historical upstream prompts reused it across operations.
const (
	tokenCorrected     = "<<<CORRIGIDO>>>"
	tokenRewritten     = "<<<REESCRITO>>>"
	tokenAdjusted      = "<<<AJUSTADO>>>"
	tokenEnd           = "<<<FIM>>>"
	tokenEvaluation    = "<<<AVALIACAO>>>"
	tokenEvaluationEnd = "<<<FIM_AVALIACAO>>>"

	markerOpen = "<<<"
)

// Heading section names for the primary text and evaluation blocks.
const (
	headingCorrected  = "TEXTO_CORRIGIDO"
	headingRewritten  = "TEXTO_REESCRITO"
	headingAdjusted   = "TEXTO_AJUSTADO"
	headingEvaluation = "AVALIACAO"
)

// headingSignatures identify the heading-structured format. Probing for a handful
// of known headings is deliberate: the format carries no version marker.
var headingSignatures = []string{
	"# " + headingCorrected,
	"# " + headingEvaluation,
	"## Nota",
	"## Pontos Fortes",
}

// DetectFormat classifies raw into one of the three supported wire shapes.
// Legacy tokens win over heading signatures: malformed documents sometimes carry
// both, and the delimiter is the stronger backward-compatibility signal. The
// check is presence-only; well-formedness is the extractors' problem.
func DetectFormat(raw string) Format {
	if strings.Contains(raw, tokenCorrected) || strings.Contains(raw, tokenEvaluation) {
		return FormatLegacy
	}
	for _, sig := range headingSignatures {
		if strings.Contains(raw, sig) {
			return FormatHeading
		}
	}
	return FormatUnstructured
}
