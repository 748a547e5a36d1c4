package parsing

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/pbarbosa/corretor/internal/schemas"
	"github.com/pbarbosa/corretor/internal/types"
)

// Top-level heading names of the heading-structured detection document.
const (
	headingDetectionResult   = "RESULTADO"
	headingDetectionStats    = "ESTATISTICAS"
	headingDetectionAnalysis = "ANALISE_LINGUISTICA"
)

// ParseDetection extracts an AI-authorship detection result from a raw upstream
// response. Unlike the text-operation parsers it may return nil: detection has
// no sensible "echo the input" fallback, so input that is neither an acceptable
// JSON payload nor a document carrying the detection headings means "detection
// result unavailable". Out-of-enum verdict and confidence values are discarded
// and the defaults kept; they are never an error.
func ParseDetection(raw string) *types.DetectionResult {
	cleaned := StripFence(raw)
	if strings.HasPrefix(cleaned, "{") {
		if result := detectionFromJSON(cleaned); result != nil {
			return result
		}
	}
	return detectionFromHeadings(raw)
}

// detectionFromJSON accepts a payload when it matches the expected shape, first
// as-is and then after a repair pass: generation is regularly cut off or sloppy
// with commas, and repairing beats discarding.
func detectionFromJSON(payload string) *types.DetectionResult {
	data := []byte(payload)
	if schemas.ValidateDetectionPayload(data) != nil {
		repaired, err := jsonrepair.JSONRepair(payload)
		if err != nil {
			return nil
		}
		data = []byte(repaired)
		if schemas.ValidateDetectionPayload(data) != nil {
			return nil
		}
	}

	var result types.DetectionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}

	defaults := types.DefaultDetectionVerdict()
	if !types.ValidVerdict(result.Result.Verdict) {
		result.Result.Verdict = defaults.Verdict
	}
	if !types.ValidConfidence(result.Result.Confidence) {
		result.Result.Confidence = defaults.Confidence
	}
	if result.Result.Signals == nil {
		result.Result.Signals = []string{}
	}
	return &result
}

// detectionFromHeadings builds a result from the RESULTADO, ESTATISTICAS and
// ANALISE_LINGUISTICA sections. At least one must exist; otherwise nil.
func detectionFromHeadings(raw string) *types.DetectionResult {
	resultSection, hasResult := HeadingSection(raw, headingDetectionResult)
	statsSection, hasStats := HeadingSection(raw, headingDetectionStats)
	analysisSection, hasAnalysis := HeadingSection(raw, headingDetectionAnalysis)
	if !hasResult && !hasStats && !hasAnalysis {
		return nil
	}

	result := &types.DetectionResult{Result: types.DefaultDetectionVerdict()}

	if hasResult {
		if section, ok := HeadingSection(resultSection, "Veredito"); ok {
			verdict := strings.ToLower(PlainText(section))
			if types.ValidVerdict(verdict) {
				result.Result.Verdict = verdict
			}
		}
		if section, ok := HeadingSection(resultSection, "Probabilidade"); ok {
			if p, found := Number(section, false); found {
				result.Result.Probability = math.Min(100, math.Max(0, p))
			}
		}
		if section, ok := firstHeadingSection(resultSection, "Confianca", "Confiança"); ok {
			confidence := strings.ToLower(PlainText(section))
			if types.ValidConfidence(confidence) {
				result.Result.Confidence = confidence
			}
		}
		if section, ok := firstHeadingSection(resultSection, "Explicacao", "Explicação"); ok {
			if text := PlainText(section); text != "" {
				result.Result.Explanation = text
			}
		}
		if section, ok := HeadingSection(resultSection, "Sinais"); ok {
			if items := ListItems(section); len(items) > 0 {
				result.Result.Signals = items
			}
		}
	}

	if hasStats {
		result.TextStats.Words = intStat(statsSection, "Palavras")
		result.TextStats.Characters = intStat(statsSection, "Caracteres")
		result.TextStats.Sentences = intStat(statsSection, "Sentencas", "Sentenças")
	}

	if hasAnalysis {
		analysis := &types.LinguisticAnalysis{Brazilianisms: []string{}}
		if section, ok := HeadingSection(analysisSection, "Brazilianismos"); ok {
			if items := ListItems(section); len(items) > 0 {
				analysis.Brazilianisms = items
			}
		}
		if section, ok := HeadingSection(analysisSection, "Resumo Gramatical"); ok {
			analysis.GrammarSummary = PlainText(section)
		}
		result.LinguisticAnalysis = analysis
	}

	return result
}

// intStat reads a non-negative integer stat from a sub-section, truncating any
// fraction. Missing or non-numeric sections yield 0.
func intStat(section string, names ...string) int {
	sub, ok := firstHeadingSection(section, names...)
	if !ok {
		return 0
	}
	value, found := Number(sub, false)
	if !found || value < 0 {
		return 0
	}
	return int(value)
}
