package report

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/patchrc/pkg/patch"
)

func sampleResults() []patch.ApplyResult {
	return []patch.ApplyResult{
		{TransformID: "declare_module", Path: "src/lib.rs", Outcome: patch.OutcomeApplied, Detail: "replaced 1 occurrence(s)"},
		{TransformID: "register_module", Path: "src/main.rs", Outcome: patch.OutcomeApplied, Detail: "replaced 1 occurrence(s)"},
		{TransformID: "add_partialeq", Path: "src/commands/error_tracker.rs", Outcome: patch.OutcomeAlreadyApplied, Detail: "change already present"},
		{TransformID: "fix_lifetime", Path: "src/commands/system.rs", Outcome: patch.OutcomeNotFound, Detail: "literal pattern not found"},
		{TransformID: "fix_clone", Path: "src/commands/transfer.rs", Outcome: patch.OutcomeError, Detail: "reading file: permission denied"},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleResults())
	assert.Equal(t, 2, s.Applied)
	assert.Equal(t, 1, s.AlreadyApplied)
	assert.Equal(t, 1, s.NotFound)
	assert.Equal(t, 0, s.Ambiguous)
	assert.Equal(t, 1, s.Errors)
	assert.False(t, s.Ok())
}

func TestSummary_Ok(t *testing.T) {
	ok := Summarize([]patch.ApplyResult{
		{TransformID: "a", Outcome: patch.OutcomeApplied},
		{TransformID: "b", Outcome: patch.OutcomeAlreadyApplied},
	})
	assert.True(t, ok.Ok())

	ambiguous := Summarize([]patch.ApplyResult{
		{TransformID: "a", Outcome: patch.OutcomeAmbiguousMatch},
	})
	assert.False(t, ambiguous.Ok())
}

func TestRenderer_Render(t *testing.T) {
	// Keep output deterministic regardless of terminal detection.
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	out := NewRenderer().Render(sampleResults())

	// One line per transform.
	for _, id := range []string{"declare_module", "register_module", "add_partialeq", "fix_lifetime", "fix_clone"} {
		assert.Contains(t, out, id)
	}

	// Grouped by outcome, in fixed order (headings are "<symbol> <outcome>").
	appliedAt := strings.Index(out, "✓ applied")
	notFoundAt := strings.Index(out, "? not-found")
	errorAt := strings.Index(out, "✗ error")
	require.GreaterOrEqual(t, appliedAt, 0)
	assert.Less(t, appliedAt, notFoundAt)
	assert.Less(t, notFoundAt, errorAt)

	// Final counts line.
	assert.Contains(t, out, "2 applied, 1 already applied, 1 not found, 0 ambiguous, 1 errors")

	// Details survive rendering.
	assert.Contains(t, out, "reading file: permission denied")
}

func TestRenderer_Render_Empty(t *testing.T) {
	out := NewRenderer().Render(nil)
	assert.Equal(t, "0 applied, 0 already applied, 0 not found, 0 ambiguous, 0 errors\n", out)
}
