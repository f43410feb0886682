package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Diagnostic describes one compile error at a token position, with
// enough context to reproduce the offending source line.
type Diagnostic struct {
	Path       string
	Line       int
	Column     int
	Length     int
	Lexeme     string
	Message    string
	SourceLine string
}

// CompileError is the error returned for the first (and only) invalid
// construct the compiler detects.
type CompileError struct {
	Diagnostic
}

func (err *CompileError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", err.Path, err.Line, err.Column, err.Message)
}

// Reporter renders diagnostics; the compiler calls it once per error,
// which is to say at most once per pass.
type Reporter interface {
	Report(d Diagnostic)
}

// NewReporter creates a Reporter that writes the standard diagnostic
// layout to w: a red header, the path:line:column arrow, the source
// line, and a caret run spanning the token.
func NewReporter(w io.Writer) Reporter {
	return &writeReporter{
		w:   w,
		red: color.New(color.FgRed),
	}
}

type writeReporter struct {
	w   io.Writer
	red *color.Color
}

func (r *writeReporter) Report(d Diagnostic) {
	caretLen := d.Length
	if caretLen < 1 {
		caretLen = 1
	}
	fmt.Fprintf(r.w, "%s at '%s': %s\n", r.red.Sprint("Compiler Error"), d.Lexeme, d.Message)
	fmt.Fprintf(r.w, "       --> %s:%d:%d\n", d.Path, d.Line, d.Column)
	fmt.Fprintf(r.w, "        |\n")
	fmt.Fprintf(r.w, "%7d | %s\n", d.Line, d.SourceLine)
	fmt.Fprintf(r.w, "        | %s%s\n",
		strings.Repeat(" ", d.Column-1),
		r.red.Sprint(strings.Repeat("^", caretLen)))
}
