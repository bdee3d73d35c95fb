package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// Observer receives snapshots while an audit runs.
type Observer interface {
	Publish(Snapshot)
	Done(Snapshot)
}

type NoopObserver struct{}

func (NoopObserver) Publish(Snapshot) {}
func (NoopObserver) Done(Snapshot)    {}

// ObserverFunc adapts a function to Observer; Done is ignored.
type ObserverFunc func(Snapshot)

func (f ObserverFunc) Publish(s Snapshot) { f(s) }
func (ObserverFunc) Done(Snapshot)        {}

// ShouldShow decides whether progress is drawn: --no-progress wins, then
// --progress, otherwise only for multi-file runs on an interactive stderr.
func ShouldShow(force, no bool, files int) bool {
	switch {
	case no:
		return false
	case force:
		return true
	default:
		return files > 1 && IsTTY(os.Stderr)
	}
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// NewAutoObserver redraws one status line on terminals and prints one
// key=value line per update elsewhere.
func NewAutoObserver(w io.Writer) Observer {
	if w == nil {
		w = os.Stderr
	}
	if f, ok := w.(*os.File); ok && IsTTY(f) {
		return &writerObserver{w: w, render: statusLine, redraw: true}
	}
	return NewLineObserver(w)
}

func NewLineObserver(w io.Writer) Observer {
	if w == nil {
		w = os.Stderr
	}
	return &writerObserver{w: w, render: logLine}
}

type writerObserver struct {
	mu     sync.Mutex
	w      io.Writer
	render func(Snapshot) string
	redraw bool
}

func (o *writerObserver) Publish(s Snapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.redraw {
		_, _ = fmt.Fprintf(o.w, "\r\033[K%s", o.render(s))
		return
	}
	_, _ = fmt.Fprintln(o.w, o.render(s))
}

func (o *writerObserver) Done(Snapshot) {
	if !o.redraw {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = fmt.Fprint(o.w, "\r\033[K")
}

func statusLine(s Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "auditing %3d%% %d/%d files", percent(s.Done, s.Total), s.Done, s.Total)
	if s.Unbalanced > 0 {
		fmt.Fprintf(&b, ", %d unbalanced", s.Unbalanced)
	}
	if s.Unreadable > 0 {
		fmt.Fprintf(&b, ", %d unreadable", s.Unreadable)
	}
	if !s.Warmup && s.ETA > 0 {
		fmt.Fprintf(&b, " ETA %s", formatETA(s.ETA))
	}
	return b.String()
}

func logLine(s Snapshot) string {
	eta := -1.0
	if s.ETA > 0 {
		eta = s.ETA.Seconds()
	}
	return fmt.Sprintf("progress total=%d done=%d unbalanced=%d unreadable=%d rate=%.3f eta=%g last=%q",
		s.Total, s.Done, s.Unbalanced, s.Unreadable, s.Rate, eta, s.Last)
}

func formatETA(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	if secs < 0 {
		secs = 0
	}
	h, m, sec := secs/3600, secs%3600/60, secs%60
	if h > 99 {
		h = 99
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}

func percent(done, total int) int {
	switch {
	case total <= 0 && done > 0:
		return 100
	case total <= 0 || done <= 0:
		return 0
	case done >= total:
		return 100
	default:
		return done * 100 / total
	}
}
