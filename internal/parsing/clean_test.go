package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "JSON fence",
			input: "```json\n{\"score\": 8}\n```",
			want:  `{"score": 8}`,
		},
		{
			name:  "Bare fence",
			input: "```\n{\"score\": 8}\n```",
			want:  `{"score": 8}`,
		},
		{
			name:  "Fence with language identifier",
			input: "```text\nconteudo\n```",
			want:  "conteudo",
		},
		{
			name:  "No fence is trimmed only",
			input: "  {\"score\": 8}  ",
			want:  `{"score": 8}`,
		},
		{
			name:  "Unclosed fence",
			input: "```json\n{\"score\": 8}",
			want:  `{"score": 8}`,
		},
		{
			name:  "Empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFence(tt.input))
		})
	}
}
