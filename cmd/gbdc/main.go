// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command gbdc is a single binary front end for the structural CNF
// identification library: gbdhash, isohash, normalize, sanitize,
// extract, and gates, one subcommand per operation.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/TimonPasslick/gbdc/dimacs"
	"github.com/TimonPasslick/gbdc/errs"
	"github.com/TimonPasslick/gbdc/feature"
	"github.com/TimonPasslick/gbdc/gate"
	"github.com/TimonPasslick/gbdc/gbdhash"
	"github.com/TimonPasslick/gbdc/isohash"
	"github.com/TimonPasslick/gbdc/wl"
)

// commonFlags are accepted by every subcommand (spec.md §6's CLI
// surface), following gini's own flag-var style in cmd/gini/main.go.
type commonFlags struct {
	output  string
	timeout time.Duration
	memout  int
	fileout int
	verbose bool
	repeat  int
}

func newCommonFlags(fs *flag.FlagSet) *commonFlags {
	c := &commonFlags{}
	fs.StringVar(&c.output, "o", "", "output file (default stdout)")
	fs.DurationVar(&c.timeout, "t", 0, "timeout, e.g. 30s (0 disables)")
	fs.IntVar(&c.memout, "m", 0, "memory limit in MB (accepted, not enforced by this process)")
	fs.IntVar(&c.fileout, "f", 0, "output file size limit in MB (accepted, not enforced by this process)")
	fs.BoolVar(&c.verbose, "v", false, "verbose diagnostics on stderr")
	fs.IntVar(&c.repeat, "r", 1, "repeat the operation this many times")
	return c
}

func (c *commonFlags) openOutput() (*os.File, error) {
	if c.output == "" || c.output == "-" {
		return os.Stdout, nil
	}
	f, err := os.Create(c.output)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrIO, err)
	}
	return f, nil
}

// withTimeout runs fn, aborting the process with exit code 1 and
// errs.ErrResourceLimit on stderr if it doesn't finish within c.timeout.
// -m/-f are part of the CLI surface but not enforced by this process:
// spec.md places resource-limit enforcement itself out of core scope,
// leaving it to an external collaborator (e.g. a wrapping ulimit/cgroup).
func (c *commonFlags) withTimeout(fn func() error) error {
	if c.timeout <= 0 {
		return fn()
	}
	done := make(chan error, 1)
	go func() { done <- fn() }()
	select {
	case err := <-done:
		return err
	case <-time.After(c.timeout):
		return fmt.Errorf("%w: exceeded %s", errs.ErrResourceLimit, c.timeout)
	}
}

const usage = `usage: %s <command> [flags] <path>

commands:
  gbdhash    print the GBD hash (hex MD5 of the canonical text form)
  isohash    print the Weisfeiler-Leman isomorphism hash
  normalize  compact variable indices to 1..V' and print DIMACS
  sanitize   dedup/drop-tautology and print DIMACS (no renumbering)
  extract    print base and gate feature statistics
  gates      run gate recognition and print a summary

flags (accepted by every command):
`

func main() {
	log.SetPrefix("gbdc: ")
	log.SetFlags(0)
	flag.Usage = func() {
		p := filepath.Base(os.Args[0])
		fmt.Fprintf(os.Stderr, usage, p)
		flag.PrintDefaults()
	}
	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	args := os.Args[2:]

	var run func(fs *flag.FlagSet, c *commonFlags, path string) error
	switch cmd {
	case "gbdhash":
		run = runGBDHash
	case "isohash":
		run = runIsoHash
	case "normalize":
		run = runNormalize
	case "sanitize":
		run = runSanitize
	case "extract":
		run = runExtract
	case "gates":
		run = runGates
	case "-h", "--help", "help":
		flag.Usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "gbdc: unknown command %q\n", cmd)
		flag.Usage()
		os.Exit(1)
	}

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := newCommonFlags(fs)
	fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "gbdc %s: expected exactly one file argument\n", cmd)
		os.Exit(1)
	}
	path := fs.Arg(0)

	for i := 0; i < c.repeat; i++ {
		start := time.Now()
		err := c.withTimeout(func() error { return run(fs, c, path) })
		if c.verbose {
			log.Printf("%s %s: run %d/%d in %s", cmd, path, i+1, c.repeat, time.Since(start))
		}
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}
	}
}

func runGBDHash(fs *flag.FlagSet, c *commonFlags, path string) error {
	h, err := gbdhash.Hash(path)
	if err != nil {
		return err
	}
	return writeLine(c, h)
}

func runIsoHash(fs *flag.FlagSet, c *commonFlags, path string) error {
	opts := wl.DefaultOptions()
	res, err := isohash.Hash(path, opts.Depth, opts)
	if err != nil {
		return err
	}
	if c.verbose {
		log.Printf("isohash %s: %d variables, %s", path, res.NVars, res.Elapsed)
	}
	return writeLine(c, fmt.Sprintf("%d", res.Hash))
}

func runNormalize(fs *flag.FlagSet, c *commonFlags, path string) error {
	f, err := dimacs.ReadFile(path)
	if err != nil {
		return err
	}
	f.NormalizeVariableNames()
	out, err := c.openOutput()
	if err != nil {
		return err
	}
	defer closeIfNotStd(out)
	return dimacs.Write(out, f)
}

func runSanitize(fs *flag.FlagSet, c *commonFlags, path string) error {
	f, err := dimacs.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := c.openOutput()
	if err != nil {
		return err
	}
	defer closeIfNotStd(out)
	return dimacs.Write(out, f)
}

func runExtract(fs *flag.FlagSet, c *commonFlags, path string) error {
	stats, err := feature.ExtractGate(path)
	if err != nil {
		return err
	}
	out, err := c.openOutput()
	if err != nil {
		return err
	}
	defer closeIfNotStd(out)

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(out, "%s=%g\n", name, stats[name]); err != nil {
			return err
		}
	}
	return nil
}

func runGates(fs *flag.FlagSet, c *commonFlags, path string) error {
	f, err := dimacs.ReadFile(path)
	if err != nil {
		return err
	}
	gf, err := gate.Analyze(f, gate.Options{Patterns: true, Semantic: true, Tries: 1})
	if err != nil {
		return err
	}
	nGates, nMonotonic, nRoots := gf.Stats()
	out, err := c.openOutput()
	if err != nil {
		return err
	}
	defer closeIfNotStd(out)
	fmt.Fprintf(out, "gates=%d\n", nGates)
	fmt.Fprintf(out, "monotonic=%d\n", nMonotonic)
	fmt.Fprintf(out, "nonMonotonic=%d\n", nGates-nMonotonic)
	fmt.Fprintf(out, "roots=%d\n", nRoots)
	fmt.Fprintf(out, "remainder=%d\n", len(gf.Remainder()))
	return nil
}

func writeLine(c *commonFlags, s string) error {
	out, err := c.openOutput()
	if err != nil {
		return err
	}
	defer closeIfNotStd(out)
	_, err = fmt.Fprintln(out, s)
	return err
}

func closeIfNotStd(f *os.File) {
	if f != os.Stdout {
		f.Close()
	}
}
