// Package report turns a run's results into human-readable output. It is pure
// formatting; no file or network I/O happens here.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/walteh/patchrc/pkg/patch"
)

// 🎨 Display configuration
const (
	lineIndent = 4  // spaces to indent per-transform lines
	idWidth    = 30 // base width for transform ids
)

// 📊 Summary counts results per outcome
type Summary struct {
	Applied        int
	AlreadyApplied int
	NotFound       int
	Ambiguous      int
	Errors         int
}

// 🧮 Summarize tallies the results of one run
func Summarize(results []patch.ApplyResult) Summary {
	var s Summary
	for _, res := range results {
		switch res.Outcome {
		case patch.OutcomeApplied:
			s.Applied++
		case patch.OutcomeAlreadyApplied:
			s.AlreadyApplied++
		case patch.OutcomeNotFound:
			s.NotFound++
		case patch.OutcomeAmbiguousMatch:
			s.Ambiguous++
		case patch.OutcomeError:
			s.Errors++
		}
	}
	return s
}

// ✅ Ok reports whether the run should exit zero
func (s Summary) Ok() bool {
	return s.NotFound == 0 && s.Ambiguous == 0 && s.Errors == 0
}

// 📝 String renders the per-outcome counts on one line
func (s Summary) String() string {
	return fmt.Sprintf("%d applied, %d already applied, %d not found, %d ambiguous, %d errors",
		s.Applied, s.AlreadyApplied, s.NotFound, s.Ambiguous, s.Errors)
}

// outcomeOrder fixes the section order of the rendered summary
var outcomeOrder = []patch.Outcome{
	patch.OutcomeApplied,
	patch.OutcomeAlreadyApplied,
	patch.OutcomeNotFound,
	patch.OutcomeAmbiguousMatch,
	patch.OutcomeError,
}

// 🖨️ Renderer formats results into a grouped text summary
type Renderer struct{}

// 🏭 NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// 📝 Render groups results by outcome, one line per transform, with final
// counts per outcome kind.
func (r *Renderer) Render(results []patch.ApplyResult) string {
	var b strings.Builder

	for _, outcome := range outcomeOrder {
		var lines []string
		for _, res := range results {
			if res.Outcome == outcome {
				lines = append(lines, r.formatResult(res))
			}
		}
		if len(lines) == 0 {
			continue
		}
		symbol, attr := outcomeStyle(outcome)
		fmt.Fprintf(&b, "%s %s\n", color.New(attr).Sprint(symbol), outcome)
		for _, line := range lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	b.WriteString(Summarize(results).String())
	b.WriteByte('\n')
	return b.String()
}

// 📝 formatResult formats a single transform line
func (r *Renderer) formatResult(res patch.ApplyResult) string {
	return fmt.Sprintf("%s%-*s %s %s",
		strings.Repeat(" ", lineIndent),
		idWidth, res.TransformID,
		color.New(color.Faint).Sprint(res.Path),
		res.Detail)
}

// outcomeStyle maps an outcome to its console symbol and color
func outcomeStyle(o patch.Outcome) (string, color.Attribute) {
	switch o {
	case patch.OutcomeApplied:
		return "✓", color.FgGreen
	case patch.OutcomeAlreadyApplied:
		return "•", color.FgCyan
	case patch.OutcomeNotFound:
		return "?", color.FgYellow
	case patch.OutcomeAmbiguousMatch:
		return "≈", color.FgYellow
	default:
		return "✗", color.FgRed
	}
}
