package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/npillmayer/furigana/align"
	"github.com/npillmayer/furigana/kana"
	"github.com/schollz/progressbar/v3"
)

// Options control the processing of records.
type Options struct {
	Katakana bool      // re-case hiragana readings of katakana words
	Prepare  bool      // fold halfwidth forms and compose word and reading
	Progress io.Writer // if non-nil, show a progress spinner here
}

// Stats summarizes a run.
type Stats struct {
	Records int // records aligned and written
	Skipped int // malformed lines skipped
}

// Align aligns a single record according to the options.
func Align(rec Record, opts Options) Record {
	word, reading := rec.Word, rec.Reading
	if opts.Prepare {
		word, reading = kana.Prepare(word), kana.Prepare(reading)
	}
	if opts.Katakana {
		reading = kana.NormalizeReadingScript(reading, word)
	}
	rec.Word, rec.Reading = word, reading
	rec.Pairs = align.ReadingPairs(reading, word)
	return rec
}

// Run reads records from in, aligns them and writes them to out. Malformed
// lines are traced and skipped. Run stops at the end of the input, on the first
// read or write error, or if ctx is cancelled.
//
// out is not closed by Run.
func Run(ctx context.Context, in io.Reader, out RecordWriter, opts Options) (Stats, error) {
	var stats Stats
	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = newSpinner(opts.Progress)
		defer bar.Finish()
	}
	reader := NewReader(in)
	for {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}
		rec, err := reader.Read()
		if err == io.EOF {
			return stats, nil
		}
		if errors.Is(err, ErrMissingReading) {
			CT().Infof("skipping input: %v", err)
			stats.Skipped++
			continue
		}
		if err != nil {
			return stats, fmt.Errorf("reading input: %w", err)
		}
		rec = Align(rec, opts)
		if err := out.WriteRecord(rec); err != nil {
			return stats, fmt.Errorf("writing line %d: %w", rec.Line, err)
		}
		stats.Records++
		if bar != nil {
			_ = bar.Add(1)
		}
	}
}

func newSpinner(w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("aligning"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}
