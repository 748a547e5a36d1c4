package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Format
	}{
		{
			name: "Correction token means legacy",
			raw:  "<<<CORRIGIDO>>>\ntexto\n<<<FIM>>>",
			want: FormatLegacy,
		},
		{
			name: "Evaluation token alone means legacy",
			raw:  "algo\n<<<AVALIACAO>>>\n{}\n<<<FIM_AVALIACAO>>>",
			want: FormatLegacy,
		},
		{
			name: "Legacy token beats heading signatures",
			raw:  "<<<CORRIGIDO>>>\n# TEXTO_CORRIGIDO\ntexto",
			want: FormatLegacy,
		},
		{
			name: "Corrected-text heading",
			raw:  "# TEXTO_CORRIGIDO\n\ntexto",
			want: FormatHeading,
		},
		{
			name: "Evaluation heading",
			raw:  "# AVALIACAO\n\n## Nota\n8",
			want: FormatHeading,
		},
		{
			name: "Score heading alone",
			raw:  "## Nota\n8",
			want: FormatHeading,
		},
		{
			name: "Strengths heading alone",
			raw:  "## Pontos Fortes\n- Claro",
			want: FormatHeading,
		},
		{
			name: "Free text",
			raw:  "Apenas texto simples.",
			want: FormatUnstructured,
		},
		{
			name: "Empty string",
			raw:  "",
			want: FormatUnstructured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.raw))
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "legacy", FormatLegacy.String())
	assert.Equal(t, "heading", FormatHeading.String())
	assert.Equal(t, "unstructured", FormatUnstructured.String())
}
