package parsing

import "github.com/pbarbosa/corretor/internal/types"

// ParseRewrite extracts the rewritten text and its evaluation from a raw
// upstream response. The rewrite markers are tried first, then the correction
// markers the upstream has historically reused for rewrites.
func ParseRewrite(raw string) types.RewriteResult {
	text, ev := parseTextOperation(raw, textOperation{
		tokens:   []string{tokenRewritten, tokenCorrected},
		headings: []string{headingRewritten, headingCorrected},
	})
	return types.RewriteResult{RewrittenText: text, Evaluation: ev}
}
