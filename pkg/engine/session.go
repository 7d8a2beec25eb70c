package engine

// 📄 fileSession stages one file's text across every transform touching it
// during a run. The engine owns the session exclusively; the file is written
// back once, at the end, and only when the staged text differs from what was
// first read.
type fileSession struct {
	path     string // resolved path handed to the filesystem
	original string // text as first read
	text     string // current staged text
	readErr  error  // set when the initial read failed

	// results holds the indexes of this file's entries in the run's result
	// slice, so a failed write can be attributed to each of its transforms.
	results []int
}

// dirty reports whether the staged text must be written back
func (s *fileSession) dirty() bool {
	return s.readErr == nil && s.text != s.original
}
