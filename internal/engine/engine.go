package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/phyten/tagaudit/internal/detect"
	"github.com/phyten/tagaudit/internal/logging"
	"github.com/phyten/tagaudit/internal/progress"
	"github.com/phyten/tagaudit/internal/tag"
)

const maxWorkers = 64

// Run は指定されたパスを走査し、各ファイルのタグの対応を検査します。
//
// 読み込めないファイルは Result.Errors に集約され、残りのファイルの
// 解析は続行されます。オプション自体が不正な場合のみ error を返します。
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Tag == "" {
		opts.Tag = DefaultTag
	}
	if err := tag.ValidName(opts.Tag); err != nil {
		return nil, err
	}
	if len(opts.Paths) == 0 {
		return nil, errors.New("no input paths")
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = detect.DefaultExtensions()
	}
	logger := logging.OrNull(opts.Logger)
	observer := opts.ProgressObserver
	if observer == nil {
		observer = progress.NoopObserver{}
	}

	inputs, errs := expandPaths(opts.Dir, opts.Paths, opts.Extensions, opts.Excludes, opts.NoDefaultExcludes)
	for _, fe := range errs {
		logger.Warn("skipping unreadable path", "file", fe.File, "stage", fe.Stage, "error", fe.Message)
	}
	logger.Debug("inputs expanded", "paths", len(opts.Paths), "files", len(inputs))

	type job struct {
		idx int
		in  input
	}
	type result struct {
		idx    int
		report FileReport
		err    *FileError
	}

	workers := opts.Jobs
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}
	if workers > len(inputs) && len(inputs) > 0 {
		workers = len(inputs)
	}

	tracker := progress.NewTracker(len(inputs), progress.Config{})
	jobs := make(chan job)
	results := make(chan result)
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				data, ferr := readInput(j.in, stdin, opts.MaxFileBytes)
				if ferr != nil {
					results <- result{idx: j.idx, err: ferr}
					continue
				}
				results <- result{idx: j.idx, report: Analyze(j.in.name, data, opts)}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, in := range inputs {
			select {
			case <-ctx.Done():
				return
			case jobs <- job{idx: i, in: in}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	reports := make([]FileReport, 0, len(inputs))
	for res := range results {
		var snap progress.Snapshot
		var notify bool
		if res.err != nil {
			logger.Warn("skipping unreadable file", "file", res.err.File, "stage", res.err.Stage, "error", res.err.Message)
			errs = append(errs, *res.err)
			snap, notify = tracker.Record(res.err.File, progress.OutcomeUnreadable)
		} else {
			r := res.report
			logger.Debug("analyzed", "file", r.File, "lang", r.Lang, "events", len(r.Events),
				"lines", r.Lines, "final_depth", r.Final, "warnings", len(r.Warnings))
			reports = append(reports, r)
			outcome := progress.OutcomeBalanced
			if !r.Balanced {
				outcome = progress.OutcomeUnbalanced
			}
			snap, notify = tracker.Record(r.File, outcome)
		}
		if notify {
			observer.Publish(snap)
		}
	}
	observer.Done(tracker.Finish())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(reports, func(i, j int) bool { return reports[i].File < reports[j].File })
	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].File == errs[j].File {
			return errs[i].Stage < errs[j].Stage
		}
		return errs[i].File < errs[j].File
	})

	unbalanced := 0
	for _, r := range reports {
		if !r.Balanced {
			unbalanced++
		}
	}
	return &Result{
		Tag:        opts.Tag,
		Files:      reports,
		Total:      len(reports),
		Unbalanced: unbalanced,
		ElapsedMS:  msSince(start),
		Errors:     errs,
		ErrorCount: len(errs),
	}, nil
}

// ErrBinary と ErrInvalidUTF8 と ErrTooLarge は読み込み段階で入力を拒否した理由です。
var (
	ErrBinary      = errors.New("binary file (NUL byte found)")
	ErrInvalidUTF8 = errors.New("not valid UTF-8")
	ErrTooLarge    = errors.New("file exceeds max_file_bytes")
)

func readInput(in input, stdin io.Reader, maxBytes int) ([]byte, *FileError) {
	var r io.Reader
	if in.stdin {
		r = stdin
	} else {
		f, err := os.Open(in.path)
		if err != nil {
			fe := newFileError(in.name, "read", err)
			return nil, &fe
		}
		defer f.Close()
		r = f
	}
	if maxBytes > 0 {
		r = io.LimitReader(r, int64(maxBytes)+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		fe := newFileError(in.name, "read", err)
		return nil, &fe
	}
	if maxBytes > 0 && len(data) > maxBytes {
		fe := newFileError(in.name, "size", fmt.Errorf("%w (%d bytes)", ErrTooLarge, maxBytes))
		return nil, &fe
	}
	if bytes.IndexByte(data, 0) >= 0 {
		fe := newFileError(in.name, "binary", ErrBinary)
		return nil, &fe
	}
	if !utf8.Valid(data) {
		fe := newFileError(in.name, "encoding", ErrInvalidUTF8)
		return nil, &fe
	}
	return data, nil
}

func newFileError(file, stage string, err error) FileError {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "unknown error"
	}
	return FileError{File: file, Stage: stage, Message: msg}
}

func msSince(t time.Time) int64 { return time.Since(t).Milliseconds() }
