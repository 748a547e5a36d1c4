// Package types provides type definitions for structured data used throughout the corretor system.
package types

// Evaluation represents the structured side-channel data accompanying the primary
// text of a correction, rewrite, or tone-adjustment response. The optional fields
// are populated only when the upstream response carried the matching section;
// absence means "not applicable", never an error.
type Evaluation struct {
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
	Score       float64  `json:"score"`

	ToneChanges  []string `json:"toneChanges,omitempty"`
	ToneApplied  string   `json:"toneApplied,omitempty"`
	StyleApplied string   `json:"styleApplied,omitempty"`
	Changes      []string `json:"changes,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
	Analysis     string   `json:"analysis,omitempty"`
	Model        string   `json:"model,omitempty"`
}

// DefaultEvaluation returns the floor value every assembled evaluation starts
// from. Fields are overwritten only when a matching section is found and yields a
// non-empty extraction, so a structureless response still produces a usable
// evaluation. Each call returns a fresh value; callers may mutate it freely.
func DefaultEvaluation() Evaluation {
	return Evaluation{
		Strengths:   []string{"Texto processado com sucesso"},
		Weaknesses:  []string{},
		Suggestions: []string{},
		Score:       7,
	}
}
