// Package pipeline runs the read → scan → intern → aggregate loop over an
// enumerated file tree.
//
// The run is single-threaded: each file is read fully into one buffer that
// is reset, not reallocated, between files, then scanned and folded into the
// counting table before the next file is touched. Per-file failures (open,
// read, non-UTF8 content) are diagnostics, never fatal; only a bad
// enumeration root aborts the run.
package pipeline

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"wordfreq/internal/counter"
	"wordfreq/internal/intern"
	"wordfreq/internal/logging"
	"wordfreq/internal/term"
	"wordfreq/internal/walk"
)

// ErrNotUTF8 marks files whose content is not valid UTF-8. Such files are
// reported and skipped; byte-oriented tokenization is deliberately out of
// scope.
var ErrNotUTF8 = errors.New("content is not valid UTF-8")

const defaultBufferBytes = 10 << 20

// Options configures one Runner.
type Options struct {
	// Tokenizer selects the scanner's word-boundary policy.
	Tokenizer term.Policy
	// Case selects the aggregation case policy.
	Case counter.Policy
	// BufferBytes is the initial read-buffer capacity. Zero means 10 MiB.
	BufferBytes int
}

// Result summarizes one completed run. Rows are unordered; hand them to the
// report package.
type Result struct {
	Rows          []counter.Row
	FilesScanned  int
	FilesSkipped  int
	DistinctWords int
	TotalWords    uint64
}

// Runner owns the mutable run state: the interning table, the counting
// table, and the reusable read buffer. Not safe for concurrent use.
type Runner struct {
	opts   Options
	logger *slog.Logger
	words  *intern.Table
	counts *counter.Table
	buf    bytes.Buffer
}

// New returns a Runner for one or more roots. Every diagnostic the runner
// emits is tagged with a fresh run ID.
func New(opts Options, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	if opts.BufferBytes <= 0 {
		opts.BufferBytes = defaultBufferBytes
	}
	r := &Runner{
		opts:   opts,
		logger: logger.With(logging.String("run_id", uuid.NewString())),
		words:  intern.NewTable(),
		counts: counter.New(opts.Case),
	}
	r.buf.Grow(opts.BufferBytes)
	return r
}

// Run processes every readable file under root and returns the accumulated
// counts. Skipped files are reported on the diagnostic logger and do not
// fail the run.
func (r *Runner) Run(root string) (*Result, error) {
	start := time.Now()
	r.logger.Debug("scan starting",
		logging.String("root", root),
		logging.String("tokenizer", r.opts.Tokenizer.String()),
		logging.String("case", r.opts.Case.String()),
	)

	res := &Result{}
	err := walk.Files(root, r.logger, func(path string) {
		if r.processFile(path) {
			res.FilesScanned++
		} else {
			res.FilesSkipped++
		}
	})
	if err != nil {
		return nil, err
	}

	res.Rows = r.counts.Rows()
	res.DistinctWords = r.counts.Len()
	res.TotalWords = r.counts.Total()

	r.logger.Debug("scan complete",
		logging.Int("files", res.FilesScanned),
		logging.Int("skipped", res.FilesSkipped),
		logging.Int("distinct_words", res.DistinctWords),
		logging.Uint64("total_words", res.TotalWords),
		logging.Int("interned_spellings", r.words.Len()),
		logging.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

// processFile reads, scans, and aggregates one file. It reports whether the
// file contributed to the counts.
func (r *Runner) processFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		r.logger.Warn("cannot open file",
			logging.String("path", path),
			logging.Error(err),
		)
		return false
	}
	defer file.Close()

	r.buf.Reset()
	if _, err := r.buf.ReadFrom(file); err != nil {
		r.logger.Warn("cannot read file",
			logging.String("path", path),
			logging.Error(err),
		)
		return false
	}

	data := r.buf.Bytes()
	if !utf8.Valid(data) {
		r.logger.Warn("skipping file",
			logging.String("path", path),
			logging.Error(ErrNotUTF8),
		)
		return false
	}

	sc := term.NewScanner(data, r.opts.Tokenizer)
	for sc.Scan() {
		t := sc.Term()
		if t.Kind != term.Word {
			continue
		}
		r.counts.Record(r.words.Word(t.Text))
	}
	return true
}
