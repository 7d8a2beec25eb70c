/*
Package engine executes a patch set against the filesystem.

	+-------------+
	|   Engine    |
	| (Run Loop)  |
	+------+------+
	       |
	+------+------+
	| FileSession |
	| (Staging)   |
	+------+------+

🎯 Purpose:
- Resolves the global transform order (dependency edges beat declaration order)
- Stages each target file once and applies its transforms against the staging
- Writes a file back only when its staged text actually changed

🔄 Flow:
1. PatchSet.ResolveOrder validates the DAG before any I/O happens
2. A FileSession is opened lazily on the first transform touching a file
3. Transforms run strictly sequentially in the resolved order
4. Dirty sessions are flushed; clean ones leave the file untouched

⚡ Key Responsibilities:
- One read and at most one write per target file per run
- Folding read/write failures into per-transform error results
- Continuing the run when one file fails, since independent fixes to
  independent files should not block each other

📝 Design Philosophy:
The engine is deliberately single threaded. Transforms with cross-file
ordering dependencies make parallel application unsafe to reason about, and
the workloads are small local files. The only side effects are reading the
target files, writing changed ones back, and producing the result sequence.
*/
package engine
