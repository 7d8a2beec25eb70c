package patch

import (
	"fmt"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🎯 Outcome classifies what happened to a single transform during a run
type Outcome int

const (
	// OutcomeApplied means the transform changed the file's text
	OutcomeApplied Outcome = iota
	// OutcomeAlreadyApplied means the intended change was already present
	OutcomeAlreadyApplied
	// OutcomeNotFound means the expected prior text was absent
	OutcomeNotFound
	// OutcomeAmbiguousMatch means the pattern occurred more than once without a replace-all opt-in
	OutcomeAmbiguousMatch
	// OutcomeError means the transform could not be attempted (file I/O failure)
	OutcomeError
)

// 📝 String returns the outcome's name
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeAlreadyApplied:
		return "already-applied"
	case OutcomeNotFound:
		return "not-found"
	case OutcomeAmbiguousMatch:
		return "ambiguous-match"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// ✅ Ok reports whether the outcome counts as success for exit-status purposes
func (o Outcome) Ok() bool {
	return o == OutcomeApplied || o == OutcomeAlreadyApplied
}

// 📦 ApplyResult records the outcome of one transform; immutable once created
type ApplyResult struct {
	TransformID string
	Path        string
	Outcome     Outcome
	Detail      string
}

// 🔄 Transform is one named, idempotent textual edit targeting one file
type Transform struct {
	id          string
	targetPath  string
	spec        MatchSpec
	replacement string
	replaceFunc func(captures []string) string
	appliedWhen string
}

// 🔧 Options configures a transform
type Options struct {
	// ID uniquely names the transform within a patch set
	ID string
	// TargetPath is the file the transform edits
	TargetPath string
	// Spec locates the text to replace
	Spec MatchSpec
	// Replacement is the new text (a template with capture references for regex specs)
	Replacement string
	// ReplaceFunc computes the new text from the matched captures (index 0 is
	// the full match). Mutually exclusive with Replacement; requires AppliedWhen.
	ReplaceFunc func(captures []string) string
	// AppliedWhen is a substring whose presence marks the edit as already done.
	// Defaults to the replacement text.
	AppliedWhen string
}

// captureRef matches $1 / $name / ${name} style references in a replacement template
var captureRef = regexp.MustCompile(`\$(\w+|\{\w+\})`)

// 🏭 New validates opts and builds a transform
func New(opts Options) (*Transform, error) {
	if opts.ID == "" {
		return nil, errors.Errorf("transform id is required")
	}
	if opts.TargetPath == "" {
		return nil, errors.Errorf("transform %s: target path is required", opts.ID)
	}
	if opts.Spec.Pattern == "" {
		return nil, errors.Errorf("transform %s: match pattern is required", opts.ID)
	}
	if opts.ReplaceFunc != nil && opts.Replacement != "" {
		return nil, errors.Errorf("transform %s: replacement and replace func are mutually exclusive", opts.ID)
	}
	if opts.AppliedWhen == "" {
		// Without an explicit marker the replacement text doubles as one, which
		// only works when it is a non-empty string free of capture references.
		if opts.ReplaceFunc != nil {
			return nil, errors.Errorf("transform %s: applied_when is required with a replace func", opts.ID)
		}
		if opts.Replacement == "" {
			return nil, errors.Errorf("transform %s: applied_when is required when the replacement is empty", opts.ID)
		}
		if opts.Spec.Kind == MatchRegex && captureRef.MatchString(opts.Replacement) {
			return nil, errors.Errorf("transform %s: applied_when is required when the replacement references captures", opts.ID)
		}
	}
	return &Transform{
		id:          opts.ID,
		targetPath:  opts.TargetPath,
		spec:        opts.Spec,
		replacement: opts.Replacement,
		replaceFunc: opts.ReplaceFunc,
		appliedWhen: opts.AppliedWhen,
	}, nil
}

// 🆔 ID returns the transform's unique name
func (t *Transform) ID() string { return t.id }

// 📄 TargetPath returns the file the transform edits
func (t *Transform) TargetPath() string { return t.targetPath }

// 🔍 Applied reports whether the transform's edit is already present in text
func (t *Transform) Applied(text string) bool {
	marker := t.appliedWhen
	if marker == "" {
		marker = t.replacement
	}
	return strings.Contains(text, marker)
}

// 🔄 Apply runs the transform against the file's current text. The returned
// text equals the input except on an Applied outcome.
func (t *Transform) Apply(text string) (string, ApplyResult) {
	if t.Applied(text) {
		return text, t.result(OutcomeAlreadyApplied, "change already present")
	}

	found := t.spec.Find(text)
	switch {
	case found.NoMatch():
		return text, t.result(OutcomeNotFound, fmt.Sprintf("%s pattern not found", t.spec.Kind))
	case found.ManyMatches() && !t.spec.ReplaceAll:
		return text, t.result(OutcomeAmbiguousMatch,
			fmt.Sprintf("%s pattern matched %d times without replace_all", t.spec.Kind, len(found.Spans)))
	default:
		newText := t.spec.replaceWith(text, found, func(i int) string {
			if t.replaceFunc != nil {
				return t.replaceFunc(t.spec.captures(text, found, i))
			}
			return t.spec.expand(text, found, i, t.replacement)
		})
		return newText, t.result(OutcomeApplied,
			fmt.Sprintf("replaced %d occurrence(s)", len(found.Spans)))
	}
}

func (t *Transform) result(outcome Outcome, detail string) ApplyResult {
	return ApplyResult{
		TransformID: t.id,
		Path:        t.targetPath,
		Outcome:     outcome,
		Detail:      detail,
	}
}
