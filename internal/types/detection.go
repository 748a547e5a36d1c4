package types

import "github.com/go-playground/validator/v10"

// Accepted verdict values for AI-authorship detection.
const (
	VerdictHuman     = "human"
	VerdictAI        = "ai"
	VerdictMixed     = "mixed"
	VerdictUncertain = "uncertain"
)

// Accepted confidence levels for AI-authorship detection.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// DetectionVerdict holds the verdict block of an AI-authorship detection result.
// Verdict and Confidence are closed enumerations; values outside them are
// discarded by the parser and the defaults kept.
type DetectionVerdict struct {
	Verdict     string   `json:"verdict" validate:"oneof=human ai mixed uncertain"`
	Probability float64  `json:"probability"`
	Confidence  string   `json:"confidence" validate:"oneof=high medium low"`
	Explanation string   `json:"explanation"`
	Signals     []string `json:"signals"`
}

// TextStats holds basic counts over the analyzed text.
type TextStats struct {
	Words      int `json:"words"`
	Characters int `json:"characters"`
	Sentences  int `json:"sentences"`
}

// LinguisticAnalysis holds the optional Portuguese-specific analysis block.
type LinguisticAnalysis struct {
	Brazilianisms  []string `json:"brazilianisms"`
	GrammarSummary string   `json:"grammarSummary"`
}

// DetectionResult is the typed output of the AI-authorship detection parser.
// LinguisticAnalysis is present only when the upstream response carried the
// corresponding section.
type DetectionResult struct {
	Result             DetectionVerdict    `json:"result"`
	TextStats          TextStats           `json:"textStats"`
	LinguisticAnalysis *LinguisticAnalysis `json:"linguisticAnalysis,omitempty"`
}

// DefaultDetectionVerdict returns the verdict block used before any field is
// extracted: an honest "don't know".
func DefaultDetectionVerdict() DetectionVerdict {
	return DetectionVerdict{
		Verdict:     VerdictUncertain,
		Probability: 50,
		Confidence:  ConfidenceMedium,
		Signals:     []string{},
	}
}

// ValidVerdict reports whether v is one of the accepted verdict values.
func ValidVerdict(v string) bool {
	validate := validator.New()
	return validate.Var(v, "oneof=human ai mixed uncertain") == nil
}

// ValidConfidence reports whether c is one of the accepted confidence levels.
func ValidConfidence(c string) bool {
	validate := validator.New()
	return validate.Var(c, "oneof=high medium low") == nil
}

// Validate validates the enum fields of the DetectionResult using the validator.
func (r *DetectionResult) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
