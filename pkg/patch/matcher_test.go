package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSpec_Find_Literal(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		text      string
		wantSpans []Span
	}{
		{
			name:      "no_match",
			pattern:   "missing",
			text:      "Hello World",
			wantSpans: nil,
		},
		{
			name:      "one_match",
			pattern:   "World",
			text:      "Hello World",
			wantSpans: []Span{{Start: 6, End: 11}},
		},
		{
			name:      "many_matches",
			pattern:   "ab",
			text:      "ab ab ab",
			wantSpans: []Span{{Start: 0, End: 2}, {Start: 3, End: 5}, {Start: 6, End: 8}},
		},
		{
			name:      "overlapping_occurrences_do_not_double_count",
			pattern:   "aa",
			text:      "aaa",
			wantSpans: []Span{{Start: 0, End: 2}},
		},
		{
			name:      "multiline_block_is_whitespace_sensitive",
			pattern:   "line one\nline two",
			text:      "line one\n line two",
			wantSpans: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := NewLiteralSpec(tt.pattern, false)
			require.NoError(t, err)

			result := spec.Find(tt.text)
			assert.Equal(t, tt.wantSpans, result.Spans)
		})
	}
}

func TestMatchSpec_Find_Regex(t *testing.T) {
	spec, err := NewRegexSpec(`fn (\w+)\(`, false)
	require.NoError(t, err)

	result := spec.Find("fn alpha() {}\nfn beta() {}")
	require.True(t, result.ManyMatches())
	assert.Equal(t, []Span{{Start: 0, End: 9}, {Start: 14, End: 22}}, result.Spans)
}

func TestMatchSpec_SpanResult_Classification(t *testing.T) {
	spec, err := NewLiteralSpec("x", false)
	require.NoError(t, err)

	assert.True(t, spec.Find("abc").NoMatch())
	assert.True(t, spec.Find("axc").OneMatch())
	assert.True(t, spec.Find("xax").ManyMatches())
}

func TestNewRegexSpec_CompileFailure(t *testing.T) {
	_, err := NewRegexSpec(`(unclosed`, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compiling regex")
}

func TestNewSpec_EmptyPattern(t *testing.T) {
	_, err := NewLiteralSpec("", false)
	require.Error(t, err)

	_, err = NewRegexSpec("", false)
	require.Error(t, err)
}
