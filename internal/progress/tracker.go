// Package progress reports how far a multi-file audit has come.
package progress

import (
	"math"
	"sync"
	"time"
)

// Outcome classifies one finished input.
type Outcome int

const (
	OutcomeBalanced Outcome = iota
	OutcomeUnbalanced
	OutcomeUnreadable
)

// Snapshot is the state published to observers.
type Snapshot struct {
	Total      int           `json:"total"`
	Done       int           `json:"done"`
	Unbalanced int           `json:"unbalanced"`
	Unreadable int           `json:"unreadable"`
	Last       string        `json:"last,omitempty"`
	Rate       float64       `json:"files_per_sec"`
	ETA        time.Duration `json:"eta"`
	Warmup     bool          `json:"warmup"`
	Elapsed    time.Duration `json:"elapsed"`
	At         time.Time     `json:"at"`
}

// Remaining is the number of inputs not finished yet.
func (s Snapshot) Remaining() int {
	if s.Done >= s.Total {
		return 0
	}
	return s.Total - s.Done
}

type Config struct {
	// Alpha weights the newest rate sample in the moving average.
	Alpha float64
	// Warmup is the number of files recorded before an ETA is shown.
	Warmup int
	// Interval throttles notifications; the last file always notifies.
	Interval time.Duration
}

func DefaultConfig() Config {
	return Config{Alpha: 0.2, Warmup: 8, Interval: 100 * time.Millisecond}
}

// Tracker counts finished inputs. Workers may call Record concurrently.
type Tracker struct {
	mu         sync.Mutex
	cfg        Config
	now        func() time.Time
	start      time.Time
	lastRecord time.Time
	lastNotify time.Time
	snap       Snapshot
	rate       float64
}

func NewTracker(total int, cfg Config) *Tracker {
	def := DefaultConfig()
	if cfg.Alpha <= 0 || cfg.Alpha > 1 {
		cfg.Alpha = def.Alpha
	}
	if cfg.Warmup <= 0 {
		cfg.Warmup = def.Warmup
	}
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	t := &Tracker{cfg: cfg, now: time.Now}
	t.start = t.now()
	t.lastRecord = t.start
	t.lastNotify = t.start
	t.snap.Total = total
	return t
}

// Record marks file as finished. The bool reports whether observers should be
// notified now.
func (t *Tracker) Record(file string, outcome Outcome) (Snapshot, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	if now.Before(t.lastRecord) {
		now = t.lastRecord
	}
	t.sample(now.Sub(t.lastRecord))
	t.lastRecord = now

	t.snap.Done++
	t.snap.Last = file
	switch outcome {
	case OutcomeUnbalanced:
		t.snap.Unbalanced++
	case OutcomeUnreadable:
		t.snap.Unreadable++
	}
	snap := t.snapshotLocked(now)
	notify := snap.Remaining() == 0 || now.Sub(t.lastNotify) >= t.cfg.Interval
	if notify {
		t.lastNotify = now
	}
	return snap, notify
}

func (t *Tracker) sample(dt time.Duration) {
	secs := dt.Seconds()
	if secs <= 0 {
		secs = 1e-6
	}
	instant := 1 / secs
	if t.rate == 0 {
		t.rate = instant
		return
	}
	t.rate = t.cfg.Alpha*instant + (1-t.cfg.Alpha)*t.rate
}

// Finish returns the final snapshot; inputs never recorded (cancelled runs) stay pending.
func (t *Tracker) Finish() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked(t.now())
}

func (t *Tracker) snapshotLocked(now time.Time) Snapshot {
	s := t.snap
	s.Rate = t.rate
	s.Warmup = s.Done < t.cfg.Warmup
	s.Elapsed = now.Sub(t.start)
	s.At = now
	s.ETA = 0
	if !s.Warmup && s.Remaining() > 0 && t.rate > 0 {
		s.ETA = etaFor(s.Remaining(), t.rate)
	}
	return s
}

func etaFor(remaining int, rate float64) time.Duration {
	secs := float64(remaining) / rate
	if math.IsNaN(secs) || math.IsInf(secs, 0) || secs < 0 {
		return 0
	}
	if secs > float64(math.MaxInt64/int64(time.Second)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(secs * float64(time.Second))
}
