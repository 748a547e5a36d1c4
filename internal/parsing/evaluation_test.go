package parsing

import (
	"testing"

	"github.com/pbarbosa/corretor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleEvaluation(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		validate func(*testing.T, types.Evaluation)
	}{
		{
			name: "Full catalog",
			raw: "# AVALIACAO\n\n" +
				"## Nota\n9\n\n" +
				"## Pontos Fortes\n- Claro\n\n" +
				"## Pontos Fracos\n- Longo\n\n" +
				"## Sugestoes\n- Encurte\n\n" +
				"## Melhorias\n- Coesao\n\n" +
				"## Analise\nTexto bem estruturado.\n\n" +
				"## Modelo\nformal-v2\n\n" +
				"## Tom Aplicado\nformal\n\n" +
				"## Estilo Aplicado\nconciso\n\n" +
				"## Mudancas\n- Trocou voz passiva\n\n" +
				"## Mudancas de Tom\n- Mais direto\n",
			validate: func(t *testing.T, ev types.Evaluation) {
				assert.Equal(t, 9.0, ev.Score)
				assert.Equal(t, []string{"Claro"}, ev.Strengths)
				assert.Equal(t, []string{"Longo"}, ev.Weaknesses)
				assert.Equal(t, []string{"Encurte"}, ev.Suggestions)
				assert.Equal(t, []string{"Coesao"}, ev.Improvements)
				assert.Equal(t, "Texto bem estruturado.", ev.Analysis)
				assert.Equal(t, "formal-v2", ev.Model)
				assert.Equal(t, "formal", ev.ToneApplied)
				assert.Equal(t, "conciso", ev.StyleApplied)
				assert.Equal(t, []string{"Trocou voz passiva"}, ev.Changes)
				assert.Equal(t, []string{"Mais direto"}, ev.ToneChanges)
			},
		},
		{
			name: "Diacritic spelling variants win when plain form is absent",
			raw:  "# AVALIACAO\n\n## Sugestões\n- Use voz ativa\n\n## Análise\nBom texto.\n\n## Mudanças de Tom\n- Suavizado",
			validate: func(t *testing.T, ev types.Evaluation) {
				assert.Equal(t, []string{"Use voz ativa"}, ev.Suggestions)
				assert.Equal(t, "Bom texto.", ev.Analysis)
				assert.Equal(t, []string{"Suavizado"}, ev.ToneChanges)
			},
		},
		{
			name: "Score above range is clamped on the heading path",
			raw:  "## Nota\n15",
			validate: func(t *testing.T, ev types.Evaluation) {
				assert.Equal(t, 10.0, ev.Score)
			},
		},
		{
			name: "Blank section must not erase the default",
			raw:  "# AVALIACAO\n\n## Pontos Fortes\n\n## Nota\n8",
			validate: func(t *testing.T, ev types.Evaluation) {
				assert.Equal(t, types.DefaultEvaluation().Strengths, ev.Strengths)
				assert.Equal(t, 8.0, ev.Score)
			},
		},
		{
			name: "Prose under a list heading yields no overwrite",
			raw:  "# AVALIACAO\n\n## Pontos Fortes\nnenhum item em forma de lista",
			validate: func(t *testing.T, ev types.Evaluation) {
				assert.Equal(t, types.DefaultEvaluation().Strengths, ev.Strengths)
			},
		},
		{
			name: "No sections at all yields the exact default",
			raw:  "texto sem estrutura",
			validate: func(t *testing.T, ev types.Evaluation) {
				assert.Equal(t, types.DefaultEvaluation(), ev)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, AssembleEvaluation(tt.raw))
		})
	}
}

func TestAssembleLegacyJSON(t *testing.T) {
	tests := []struct {
		name      string
		block     string
		wantError bool
		validate  func(*testing.T, types.Evaluation)
	}{
		{
			name:  "Well-formed payload",
			block: `{"strengths":["Bom"],"weaknesses":["Longo"],"suggestions":["Encurte"],"score":8.5,"toneApplied":"formal"}`,
			validate: func(t *testing.T, ev types.Evaluation) {
				assert.Equal(t, []string{"Bom"}, ev.Strengths)
				assert.Equal(t, []string{"Longo"}, ev.Weaknesses)
				assert.Equal(t, []string{"Encurte"}, ev.Suggestions)
				assert.Equal(t, 8.5, ev.Score)
				assert.Equal(t, "formal", ev.ToneApplied)
			},
		},
		{
			name:  "Score is verbatim, never clamped",
			block: `{"score":15}`,
			validate: func(t *testing.T, ev types.Evaluation) {
				assert.Equal(t, 15.0, ev.Score)
			},
		},
		{
			name:  "Absent score defaults to seven",
			block: `{"strengths":["Bom"]}`,
			validate: func(t *testing.T, ev types.Evaluation) {
				assert.Equal(t, 7.0, ev.Score)
			},
		},
		{
			name:  "Wrong-typed fields keep their defaults",
			block: `{"strengths":"nao e lista","score":"nove"}`,
			validate: func(t *testing.T, ev types.Evaluation) {
				assert.Equal(t, types.DefaultEvaluation().Strengths, ev.Strengths)
				assert.Equal(t, 7.0, ev.Score)
			},
		},
		{
			name:  "Empty arrays do overwrite, matching the historical contract",
			block: `{"weaknesses":[]}`,
			validate: func(t *testing.T, ev types.Evaluation) {
				assert.Equal(t, []string{}, ev.Weaknesses)
			},
		},
		{
			name:      "Malformed JSON reports the decode error",
			block:     `{"score":7 // bad`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := assembleLegacyJSON(tt.block)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, ev)
		})
	}
}

func TestLegacyEvaluation_FallbackChain(t *testing.T) {
	t.Run("JSON block", func(t *testing.T) {
		raw := "<<<AVALIACAO>>>\n{\"strengths\":[\"Bom\"],\"score\":8}\n<<<FIM_AVALIACAO>>>"
		ev := legacyEvaluation(raw)
		assert.Equal(t, 8.0, ev.Score)
		assert.Equal(t, []string{"Bom"}, ev.Strengths)
	})

	t.Run("Malformed JSON falls back to heading parsing of the same block", func(t *testing.T) {
		raw := "<<<AVALIACAO>>>\n{\"score\":7 // bad\n## Pontos Fortes\n- Claro\n<<<FIM_AVALIACAO>>>"
		ev := legacyEvaluation(raw)
		assert.Equal(t, 7.0, ev.Score)
		assert.Equal(t, []string{"Claro"}, ev.Strengths)
	})

	t.Run("Heading-structured block goes straight to heading parsing", func(t *testing.T) {
		raw := "<<<AVALIACAO>>>\n## Nota\n6\n<<<FIM_AVALIACAO>>>"
		ev := legacyEvaluation(raw)
		assert.Equal(t, 6.0, ev.Score)
	})

	t.Run("Missing block yields the default", func(t *testing.T) {
		ev := legacyEvaluation("<<<CORRIGIDO>>>\ntexto\n<<<FIM>>>")
		assert.Equal(t, types.DefaultEvaluation(), ev)
	})

	t.Run("Fenced JSON block", func(t *testing.T) {
		raw := "<<<AVALIACAO>>>\n```json\n{\"score\":9}\n```\n<<<FIM_AVALIACAO>>>"
		ev := legacyEvaluation(raw)
		assert.Equal(t, 9.0, ev.Score)
	})
}
