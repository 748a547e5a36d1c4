package parsing

import (
	"encoding/json"
	"strings"

	"github.com/pbarbosa/corretor/internal/types"
)

// evaluationRules is the ordered catalog of evaluation sections. Heading names
// are matched exactly; spelling variants (with and without diacritics) are tried
// in order and the first existing section wins. Each apply func overwrites its
// field only when the extraction is non-empty: a heading that exists but is
// blank must not erase the safe default.
var evaluationRules = []struct {
	names []string
	apply func(ev *types.Evaluation, section string)
}{
	{[]string{"Nota"}, func(ev *types.Evaluation, s string) {
		if score, ok := Number(s, true); ok {
			ev.Score = score
		}
	}},
	{[]string{"Pontos Fortes"}, func(ev *types.Evaluation, s string) {
		if items := ListItems(s); len(items) > 0 {
			ev.Strengths = items
		}
	}},
	{[]string{"Pontos Fracos"}, func(ev *types.Evaluation, s string) {
		if items := ListItems(s); len(items) > 0 {
			ev.Weaknesses = items
		}
	}},
	{[]string{"Sugestoes", "Sugestões"}, func(ev *types.Evaluation, s string) {
		if items := ListItems(s); len(items) > 0 {
			ev.Suggestions = items
		}
	}},
	{[]string{"Melhorias"}, func(ev *types.Evaluation, s string) {
		if items := ListItems(s); len(items) > 0 {
			ev.Improvements = items
		}
	}},
	{[]string{"Analise", "Análise"}, func(ev *types.Evaluation, s string) {
		if text := PlainText(s); text != "" {
			ev.Analysis = text
		}
	}},
	{[]string{"Modelo"}, func(ev *types.Evaluation, s string) {
		if text := PlainText(s); text != "" {
			ev.Model = text
		}
	}},
	{[]string{"Tom Aplicado"}, func(ev *types.Evaluation, s string) {
		if text := PlainText(s); text != "" {
			ev.ToneApplied = text
		}
	}},
	{[]string{"Estilo Aplicado"}, func(ev *types.Evaluation, s string) {
		if text := PlainText(s); text != "" {
			ev.StyleApplied = text
		}
	}},
	{[]string{"Mudancas", "Mudanças"}, func(ev *types.Evaluation, s string) {
		if items := ListItems(s); len(items) > 0 {
			ev.Changes = items
		}
	}},
	{[]string{"Mudancas de Tom", "Mudanças de Tom"}, func(ev *types.Evaluation, s string) {
		if items := ListItems(s); len(items) > 0 {
			ev.ToneChanges = items
		}
	}},
}

// AssembleEvaluation builds an evaluation from the heading sections of raw,
// starting from the default value and overwriting a field only when its section
// exists and yields a non-empty extraction.
func AssembleEvaluation(raw string) types.Evaluation {
	ev := types.DefaultEvaluation()
	for _, rule := range evaluationRules {
		if section, ok := firstHeadingSection(raw, rule.names...); ok {
			rule.apply(&ev, section)
		}
	}
	return ev
}

// assembleLegacyJSON builds an evaluation from the embedded-JSON form of the
// legacy evaluation block. Fields are taken only when they carry the expected
// JSON type; a wrong-typed field keeps its default instead of failing the whole
// parse. The score is kept verbatim, unclamped, and defaults to 7 when absent.
// A decode error is returned to the caller, which falls back to heading parsing
// of the same block: some upstream responses wrap heading-structured text in
// what merely looks like a JSON block.
func assembleLegacyJSON(block string) (types.Evaluation, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(block), &payload); err != nil {
		return types.Evaluation{}, err
	}

	ev := types.DefaultEvaluation()
	if items, ok := stringList(payload["strengths"]); ok {
		ev.Strengths = items
	}
	if items, ok := stringList(payload["weaknesses"]); ok {
		ev.Weaknesses = items
	}
	if items, ok := stringList(payload["suggestions"]); ok {
		ev.Suggestions = items
	}
	if score, ok := payload["score"].(float64); ok {
		ev.Score = score
	}

	if items, ok := stringList(payload["toneChanges"]); ok && len(items) > 0 {
		ev.ToneChanges = items
	}
	if items, ok := stringList(payload["changes"]); ok && len(items) > 0 {
		ev.Changes = items
	}
	if items, ok := stringList(payload["improvements"]); ok && len(items) > 0 {
		ev.Improvements = items
	}
	if text, ok := payload["toneApplied"].(string); ok && text != "" {
		ev.ToneApplied = text
	}
	if text, ok := payload["styleApplied"].(string); ok && text != "" {
		ev.StyleApplied = text
	}
	if text, ok := payload["analysis"].(string); ok && text != "" {
		ev.Analysis = text
	}
	if text, ok := payload["model"].(string); ok && text != "" {
		ev.Model = text
	}
	return ev, nil
}

// legacyEvaluation extracts and assembles the evaluation block of a legacy
// document. A block whose trimmed text starts with "{" goes through the JSON
// path first; any decode failure silently retries with heading parsing over the
// same block. A missing block yields the default evaluation.
func legacyEvaluation(raw string) types.Evaluation {
	block, ok := BetweenMarkers(raw, tokenEvaluation, tokenEvaluationEnd)
	if !ok {
		return types.DefaultEvaluation()
	}
	body := StripFence(block)
	if strings.HasPrefix(body, "{") {
		if ev, err := assembleLegacyJSON(body); err == nil {
			return ev
		}
	}
	return AssembleEvaluation(block)
}

// stringList converts a decoded JSON value to a string slice. Only arrays count;
// non-string elements inside an array are skipped.
func stringList(v any) ([]string, bool) {
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	items := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			items = append(items, s)
		}
	}
	return items, true
}
