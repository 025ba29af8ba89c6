package engine

import (
	"fmt"
	"io"
	"os"
	"time"

	isatty "github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Verbosity controls how much a Reporter prints (§6 "Progress reporting").
type Verbosity int

const (
	VerbositySilent Verbosity = iota
	VerbosityNormal
	VerbosityVerbose
)

// Reporter drives a terminal progress bar across an AnalyzeFiles run,
// grounded on the teacher's output.Logger/IsTTY pairing: progress display is
// a TTY-only nicety. When the writer isn't a terminal (e.g. CI logs) it
// prints one "analyzing N files..." line, plus one line per completed file
// path at VerbosityVerbose only.
type Reporter struct {
	verbosity Verbosity
	writer    io.Writer
	isTTY     bool
	bar       *progressbar.ProgressBar
}

// NewReporter builds a Reporter writing to stderr, matching the teacher's
// choice to keep stdout free for findings output.
func NewReporter(v Verbosity) *Reporter {
	return NewReporterWithWriter(v, os.Stderr)
}

// NewReporterWithWriter builds a Reporter against an explicit writer
// (primarily for tests).
func NewReporterWithWriter(v Verbosity, w io.Writer) *Reporter {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Reporter{verbosity: v, writer: w, isTTY: tty}
}

// Start begins tracking total files to analyze.
func (r *Reporter) Start(total int) {
	if r.verbosity == VerbositySilent {
		return
	}
	if !r.isTTY {
		fmt.Fprintf(r.writer, "analyzing %d files...\n", total)
		return
	}
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("analyzing"),
		progressbar.OptionSetWriter(r.writer),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() { fmt.Fprint(r.writer, "\n") }),
	)
}

// FileDone advances the bar by one completed file.
func (r *Reporter) FileDone(path string) {
	if r.verbosity == VerbositySilent {
		return
	}
	if r.bar != nil {
		_ = r.bar.Add(1)
		return
	}
	if r.verbosity == VerbosityVerbose {
		fmt.Fprintf(r.writer, "  %s\n", path)
	}
}

// Finish completes and clears the bar, if one is active.
func (r *Reporter) Finish() {
	if r.bar == nil {
		return
	}
	_ = r.bar.Finish()
	r.bar = nil
}
