package patch

import (
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔍 MatchKind discriminates how a pattern is interpreted
type MatchKind int

const (
	// MatchLiteral matches the pattern as an exact, whitespace-sensitive substring
	MatchLiteral MatchKind = iota
	// MatchRegex matches the pattern as a compiled regular expression
	MatchRegex
)

// 📝 String returns the kind's name
func (k MatchKind) String() string {
	switch k {
	case MatchLiteral:
		return "literal"
	case MatchRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// 🎯 MatchSpec describes how a transform locates the text it replaces
type MatchSpec struct {
	Kind       MatchKind
	Pattern    string
	ReplaceAll bool // opt-in to replacing every occurrence

	re *regexp.Regexp // compiled once for MatchRegex
}

// 🏭 NewLiteralSpec creates a spec matching pattern as an exact substring
func NewLiteralSpec(pattern string, replaceAll bool) (MatchSpec, error) {
	if pattern == "" {
		return MatchSpec{}, errors.Errorf("literal pattern is required")
	}
	return MatchSpec{
		Kind:       MatchLiteral,
		Pattern:    pattern,
		ReplaceAll: replaceAll,
	}, nil
}

// 🏭 NewRegexSpec compiles pattern up front so a bad regex fails before any file I/O
func NewRegexSpec(pattern string, replaceAll bool) (MatchSpec, error) {
	if pattern == "" {
		return MatchSpec{}, errors.Errorf("regex pattern is required")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return MatchSpec{}, errors.Errorf("compiling regex %q: %w", pattern, err)
	}
	return MatchSpec{
		Kind:       MatchRegex,
		Pattern:    pattern,
		ReplaceAll: replaceAll,
		re:         re,
	}, nil
}

// 📍 Span identifies one half-open byte range within a file's text
type Span struct {
	Start int
	End   int
}

// 📦 SpanResult is the outcome of locating a MatchSpec within text
type SpanResult struct {
	Spans []Span

	// submatches holds the regex submatch index slices, parallel to Spans
	submatches [][]int
}

// 🔍 NoMatch reports whether the pattern was absent
func (r SpanResult) NoMatch() bool { return len(r.Spans) == 0 }

// 🔍 OneMatch reports whether the pattern occurred exactly once
func (r SpanResult) OneMatch() bool { return len(r.Spans) == 1 }

// 🔍 ManyMatches reports whether the pattern occurred more than once
func (r SpanResult) ManyMatches() bool { return len(r.Spans) > 1 }

// 🔎 Find locates every non-overlapping occurrence of the spec within text
func (s MatchSpec) Find(text string) SpanResult {
	if s.Kind == MatchRegex {
		return s.findRegex(text)
	}
	return s.findLiteral(text)
}

func (s MatchSpec) findLiteral(text string) SpanResult {
	var result SpanResult
	offset := 0
	for {
		i := strings.Index(text[offset:], s.Pattern)
		if i < 0 {
			return result
		}
		start := offset + i
		end := start + len(s.Pattern)
		result.Spans = append(result.Spans, Span{Start: start, End: end})
		offset = end
	}
}

func (s MatchSpec) findRegex(text string) SpanResult {
	var result SpanResult
	for _, m := range s.re.FindAllStringSubmatchIndex(text, -1) {
		result.Spans = append(result.Spans, Span{Start: m[0], End: m[1]})
		result.submatches = append(result.submatches, m)
	}
	return result
}

// expand renders the replacement for the i-th located span, resolving capture
// references ($1, ${name}) for regex specs
func (s MatchSpec) expand(text string, found SpanResult, i int, replacement string) string {
	if s.Kind != MatchRegex || s.re == nil {
		return replacement
	}
	return string(s.re.ExpandString(nil, replacement, text, found.submatches[i]))
}

// captures returns the matched text and capture groups for the i-th span.
// Index 0 is the full match; unmatched optional groups are empty strings.
func (s MatchSpec) captures(text string, found SpanResult, i int) []string {
	span := found.Spans[i]
	if s.Kind != MatchRegex {
		return []string{text[span.Start:span.End]}
	}
	m := found.submatches[i]
	out := make([]string, 0, len(m)/2)
	for j := 0; j < len(m); j += 2 {
		if m[j] < 0 {
			out = append(out, "")
			continue
		}
		out = append(out, text[m[j]:m[j+1]])
	}
	return out
}

// replaceWith substitutes render(i) into every located span, back to front so
// earlier offsets stay valid while the text shrinks or grows
func (s MatchSpec) replaceWith(text string, found SpanResult, render func(i int) string) string {
	out := text
	for i := len(found.Spans) - 1; i >= 0; i-- {
		span := found.Spans[i]
		out = out[:span.Start] + render(i) + out[span.End:]
	}
	return out
}
