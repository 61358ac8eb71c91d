package formatter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefing-proxy/internal/infra/formatter"
)

func TestMarkdown_ToHTML(t *testing.T) {
	f := formatter.NewMarkdown()

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "headings and lists",
			input:    "## Key themes\n\n- **AI** spending\n- Rates",
			contains: []string{"<h2", "Key themes</h2>", "<li><strong>AI</strong> spending</li>", "<li>Rates</li>"},
		},
		{
			name:        "raw script is neutralised",
			input:       "Hello <script>alert(1)</script>",
			notContains: []string{"<script>"},
		},
		{
			name:     "links open safely",
			input:    "[source](https://example.com/a)",
			contains: []string{`href="https://example.com/a"`, `rel="nofollow noopener"`, `target="_blank"`},
		},
		{
			name:        "javascript links are stripped",
			input:       "[x](javascript:alert(1))",
			notContains: []string{"javascript:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.ToHTML(tt.input)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestMarkdown_ToHTML_Empty(t *testing.T) {
	got, err := formatter.NewMarkdown().ToHTML("  \n ")
	require.NoError(t, err)
	assert.Empty(t, got)
}
