// Package diag provides Diagnostics sinks for a web: a slog-backed sink for
// services, a line writer for terminals and a Recorder for tests and scripted
// runs.
package diag

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Level classifies a report.
type Level string

const (
	LevelError Level = "error"
	LevelInfo  Level = "info"
	LevelFatal Level = "fatal"
)

// Report is one recorded diagnostic. Fatal reports have no title.
type Report struct {
	Level   Level
	Title   string
	Message string
}

func (r Report) String() string {
	if r.Title == "" {
		return fmt.Sprintf("[%s] %s", r.Level, r.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", r.Level, r.Title, r.Message)
}

// Logger writes reports as structured log records.
type Logger struct {
	log *slog.Logger
}

// NewLogger returns a Logger writing to l. A nil l uses slog.Default().
func NewLogger(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}
	return &Logger{log: l}
}

func (d *Logger) ReportError(title, msg string) {
	d.log.Error(msg, slog.String("title", title))
}

func (d *Logger) ReportInfo(title, msg string) {
	d.log.Info(msg, slog.String("title", title))
}

func (d *Logger) ReportFatal(msg string) {
	d.log.Error(msg, slog.Bool("fatal", true))
}

// Writer prints one line per report.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter returns a Writer printing to w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

func (d *Writer) ReportError(title, msg string) { d.write(Report{LevelError, title, msg}) }
func (d *Writer) ReportInfo(title, msg string)  { d.write(Report{LevelInfo, title, msg}) }
func (d *Writer) ReportFatal(msg string)        { d.write(Report{Level: LevelFatal, Message: msg}) }

func (d *Writer) write(r Report) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintln(d.w, r)
}

// Recorder keeps every report in arrival order. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	reports []Report
}

func (d *Recorder) ReportError(title, msg string) { d.add(Report{LevelError, title, msg}) }
func (d *Recorder) ReportInfo(title, msg string)  { d.add(Report{LevelInfo, title, msg}) }
func (d *Recorder) ReportFatal(msg string)        { d.add(Report{Level: LevelFatal, Message: msg}) }

func (d *Recorder) add(r Report) {
	d.mu.Lock()
	d.reports = append(d.reports, r)
	d.mu.Unlock()
}

// Reports returns a copy of everything recorded so far.
func (d *Recorder) Reports() []Report {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Report(nil), d.reports...)
}

// Filter returns the recorded reports of one level.
func (d *Recorder) Filter(l Level) []Report {
	var out []Report
	for _, r := range d.Reports() {
		if r.Level == l {
			out = append(out, r)
		}
	}
	return out
}

// Reset forgets every report.
func (d *Recorder) Reset() {
	d.mu.Lock()
	d.reports = nil
	d.mu.Unlock()
}

// Discard drops every report.
type Discard struct{}

func (Discard) ReportError(string, string) {}
func (Discard) ReportInfo(string, string)  {}
func (Discard) ReportFatal(string)         {}
