package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"vhdlparse/internal/diag"
	"vhdlparse/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
	pathColor    = color.New(color.Bold)
)

// Pretty renders diagnostics in a human-readable form. It walks
// bag.Items() in order (call bag.Sort() beforehand for stable output).
// Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline for the span, then
// any notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, fs, d.Primary, d.Severity, d.Code.ID(), d.Message, opts)
		writeSnippet(w, fs, d.Primary, opts)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeHeading(w, fs, note.Span, diag.SevInfo, "note", note.Msg, opts)
				writeSnippet(w, fs, note.Span, opts)
			}
		}
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, span source.Span, sev diag.Severity, code, msg string, opts PrettyOpts) {
	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)

	location := fmt.Sprintf("%s:%d:%d", file.DisplayPath(fs.BaseDir()), start.Line, start.Col)
	heading := fmt.Sprintf("%s %s", sev.String(), code)
	if opts.Color {
		location = pathColor.Sprint(location)
		heading = severityColor(sev).Sprint(heading)
	}
	fmt.Fprintf(w, "%s: %s: %s\n", location, heading, msg)
}

func writeSnippet(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)

	line := strings.TrimRight(file.GetLine(start.Line), "\r\n")
	if line == "" && span.Empty() {
		return
	}
	if opts.Width > 0 {
		line = runewidth.Truncate(line, opts.Width, "...")
	}

	prefix := fmt.Sprintf("%5d | ", start.Line)
	fmt.Fprintf(w, "%s%s\n", prefix, line)

	// Underline in display columns so wide runes stay aligned.
	before := lineSlice(line, int(start.Col)-1)
	pad := strings.Repeat(" ", runewidth.StringWidth(before))
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = runewidth.StringWidth(lineSlice(line, int(end.Col)-1)) - runewidth.StringWidth(before)
	}
	underline := "^"
	if width > 1 {
		underline += strings.Repeat("~", width-1)
	}
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", len(prefix)), pad, underline)
}

// lineSlice returns the first n bytes of line, clamped to its length.
func lineSlice(line string, n int) string {
	if n < 0 {
		return ""
	}
	if n > len(line) {
		n = len(line)
	}
	return line[:n]
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	}
	return infoColor
}
