/*
Package patch implements the matching and transformation primitives of patchrc.

	+-------------+
	|  Transform  |
	| (One Edit)  |
	+------+------+
	       |
	+------+------+
	|   Matcher   |
	| (Locate)    |
	+------+------+

🎯 Purpose:
- Locates the span(s) a transform replaces (literal or regex)
- Applies a single named, idempotent edit to in-memory text
- Classifies every attempt as a stable, reportable outcome

🔄 Flow:
1. Transform checks its idempotency marker (already applied → no-op)
2. MatchSpec locates zero/one/many spans in the current text
3. Unique (or opted-in replace-all) spans are substituted
4. The result is returned alongside an immutable ApplyResult

⚡ Key Responsibilities:
- Whitespace-sensitive literal matching, byte for byte
- Regex compilation up front, before any file is touched
- Refusing ambiguous matches instead of guessing an occurrence
- Re-running a transform against its own output is always a no-op

📝 Design Philosophy:
The package never performs file I/O. It is a pure text-in, text-out layer so
the engine can stage a file once and apply every transform against the staged
content. Ambiguity is a first-class outcome rather than a silent pick of the
first occurrence, because patching the wrong occurrence is exactly the class
of bug this tool exists to prevent.

🔍 Example:

	spec, _ := patch.NewLiteralSpec("old text", false)
	t, _ := patch.New(patch.Options{
		ID:          "fix_old_text",
		TargetPath:  "src/lib.rs",
		Spec:        spec,
		Replacement: "new text",
	})
	newText, res := t.Apply(current)
*/
package patch
