package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	// Width caps rendered source lines; 0 means unlimited.
	Width int
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// IncludePositions adds line/col to every location.
	IncludePositions bool
	IncludeNotes     bool
	// Max truncates the output, not the bag.
	Max int
}
