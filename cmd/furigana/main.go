// Command furigana aligns readings to Japanese words.
//
// Input lines hold a word and its reading, separated by a tab. For every line
// the command prints the reading pairs, by default in bracket notation:
//
//   $ printf '日の人\tひのひと\n' | furigana
//   日[ひ]の人[ひと]
//
// Settings are taken from the environment (or a .env file) and may be
// overridden by flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/furigana"
	"github.com/npillmayer/furigana/internal/batch"
	"github.com/npillmayer/furigana/internal/config"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

type options struct {
	config.Config
	word    string
	reading string
	input   string
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		return 1
	}
	opts := parseFlags(cfg)

	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.TraceLevelFromString(opts.TraceLevel))

	out, err := batch.NewWriter(os.Stdout, opts.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	defer func() {
		if err := out.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: writing output: %v\n", err)
		}
	}()

	bopts := batch.Options{Katakana: opts.Katakana, Prepare: opts.Prepare}

	if opts.word != "" {
		rec := batch.Align(batch.Record{Word: opts.word, Reading: opts.reading}, bopts)
		if err := out.WriteRecord(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	var in io.Reader = os.Stdin
	if opts.input != "" && opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}
	if opts.Progress {
		bopts.Progress = os.Stderr
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := batch.Run(ctx, in, out, bopts)
	furigana.CT().Infof("aligned %d records, skipped %d", stats.Records, stats.Skipped)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(cfg *config.Config) options {
	opts := options{Config: *cfg}

	flag.StringVar(&opts.Format, "format", cfg.Format, "Output format (text, json, tsv)")
	flag.BoolVar(&opts.Katakana, "katakana", cfg.Katakana, "Re-case hiragana readings of katakana words")
	flag.BoolVar(&opts.Prepare, "prepare", cfg.Prepare, "Fold halfwidth forms and compose input")
	flag.BoolVar(&opts.Progress, "progress", cfg.Progress, "Show a progress spinner on stderr")
	flag.StringVar(&opts.TraceLevel, "trace", cfg.TraceLevel, "Trace level (Error, Info, Debug)")
	flag.StringVar(&opts.word, "word", "", "Align a single word instead of reading input")
	flag.StringVar(&opts.reading, "reading", "", "Reading of the word given with -word")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "furigana - align readings to Japanese words\n\n")
		fmt.Fprintf(os.Stderr, "Usage: furigana [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  furigana words.tsv                    Align a file of word<TAB>reading lines\n")
		fmt.Fprintf(os.Stderr, "  furigana -format json < words.tsv     Print JSON records\n")
		fmt.Fprintf(os.Stderr, "  furigana -word 日の人 -reading ひのひと  Align a single word\n")
	}

	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.input = flag.Arg(0)
	return opts
}
