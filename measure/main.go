// Command measure times creation, lookup and increment of every collection variant over a ladder
// of sizes and appends the results as CSV rows. "measure query" looks up one measurement.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/g-m-twostay/locality/Collections"
	"github.com/g-m-twostay/locality/Reports"
)

type config struct {
	output   string
	mode     string
	seed     string
	truncate bool
	maxSize  int
	finds    int
	incs     int
	variants string
	verify   bool
	logLevel string
}

func parseConfig(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("measure", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.output, "output", "", "CSV file the rows are written to (required)")
	fs.StringVar(&c.mode, "mode", "", "name of this run, written in every row (required)")
	fs.StringVar(&c.seed, "seed", "0", "random seed, 1 to 64 hex digits")
	fs.BoolVar(&c.truncate, "truncate", false, "truncate the output instead of appending to it")
	fs.IntVar(&c.maxSize, "max-size", 0, "largest number of elements measured, 0 for the whole ladder")
	fs.IntVar(&c.finds, "finds", 64, "lookups per size and variant")
	fs.IntVar(&c.incs, "incs", 16, "increments per size and variant")
	fs.StringVar(&c.variants, "variants", "", "comma separated collections to measure, empty for all")
	fs.BoolVar(&c.verify, "verify", true, "check every variant against a reference after each size")
	fs.StringVar(&c.logLevel, "log-level", "info", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return c, errors.Wrap(err, "parsing flags")
	}
	if c.output == "" || c.mode == "" {
		return c, errors.New("-output and -mode are required")
	}
	if c.finds < 0 || c.incs < 0 {
		return c, errors.Errorf("negative -finds %d or -incs %d", c.finds, c.incs)
	}
	return c, nil
}

func newLogger(level string) (*zap.SugaredLogger, error) {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level")
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(l)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return logger.Sugar(), nil
}

func measure(c config, log *zap.SugaredLogger) (err error) {
	seed, err := decodeSeed(c.seed)
	if err != nil {
		return err
	}
	names := lo.Compact(strings.Split(c.variants, ","))
	variants, err := Collections.Lookup[element](names)
	if err != nil {
		return err
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if c.truncate {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	f, err := os.OpenFile(c.output, flags, 0o644)
	if err != nil {
		return errors.Wrapf(err, "opening %s", c.output)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errors.Wrapf(cerr, "closing %s", c.output)
		}
	}()

	r := &runner{
		mode:     c.mode,
		rg:       newRand(seed),
		variants: variants,
		finds:    c.finds,
		incs:     c.incs,
		verify:   c.verify,
		out:      Reports.NewWriter(f),
		log:      log,
	}
	ladder := sizes(c.maxSize)
	log.Infof("measuring %d variants over sizes %v into %s", len(variants), ladder, c.output)
	return r.run(ladder)
}

func query(args []string, stdout, stderr io.Writer) error {
	var file string
	var k Reports.Key
	fs := flag.NewFlagSet("measure query", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&file, "file", "", "CSV file written by measure")
	fs.StringVar(&k.Mode, "mode", "", "mode of the run")
	fs.StringVar(&k.Size, "size", "", "number of elements, plain or formatted like \"8 KiB\" for 8192")
	fs.StringVar(&k.Operation, "operation", "", "create, find or inc-less-than")
	fs.StringVar(&k.Collection, "collection", "", "collection name")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "parsing flags")
	}
	f, err := os.Open(file)
	if err != nil {
		return errors.Wrapf(err, "opening %s", file)
	}
	defer f.Close()
	rows, err := Reports.ReadRows(f)
	if err != nil {
		return errors.WithMessage(err, file)
	}
	d, err := Reports.Query(rows, k)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, d)
	return errors.WithStack(err)
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "query" {
		return query(args[1:], stdout, stderr)
	}
	c, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}
	log, err := newLogger(c.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if err := measure(c, log); err != nil {
		log.Errorf("measure: %+v", err)
		return err
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, Reports.ErrNotFound) {
			fmt.Fprintln(os.Stderr, "Not found")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
