package types

// CorrectionResult is the typed output of the grammar-correction parser.
type CorrectionResult struct {
	CorrectedText string     `json:"correctedText"`
	Evaluation    Evaluation `json:"evaluation"`
}

// RewriteResult is the typed output of the stylistic-rewrite parser.
type RewriteResult struct {
	RewrittenText string     `json:"rewrittenText"`
	Evaluation    Evaluation `json:"evaluation"`
}

// ToneResult is the typed output of the tone-adjustment parser.
type ToneResult struct {
	AdjustedText string     `json:"adjustedText"`
	Evaluation   Evaluation `json:"evaluation"`
}
