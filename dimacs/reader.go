// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package dimacs reads DIMACS CNF streams into a cnf.Formula, optionally
// decompressing by filename extension.
package dimacs

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"

	"github.com/TimonPasslick/gbdc/cnf"
	"github.com/TimonPasslick/gbdc/errs"
	"github.com/TimonPasslick/gbdc/z"
)

// ParseError reports a malformed DIMACS stream, with the byte offset at
// which the problem was detected (spec.md's "Input parse error").
type ParseError struct {
	Offset int64
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dimacs: parse error at byte %d: %s", e.Offset, e.Msg)
}

// Open opens path for reading, wrapping it in a decompressing reader
// chosen by filename extension. Recognized extensions are .gz, .bz2,
// .xz and .lzma; anything else is read verbatim. "-" reads stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrIO, err)
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %v", errs.ErrIO, err)
		}
		return &closeChain{Reader: gz, closers: []io.Closer{gz, f}}, nil
	case strings.HasSuffix(path, ".bz2"):
		return &closeChain{Reader: bzip2.NewReader(f), closers: []io.Closer{f}}, nil
	case strings.HasSuffix(path, ".xz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %v", errs.ErrIO, err)
		}
		return &closeChain{Reader: xr, closers: []io.Closer{f}}, nil
	case strings.HasSuffix(path, ".lzma"):
		lr, err := lzma.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %v", errs.ErrIO, err)
		}
		return &closeChain{Reader: lr, closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

type closeChain struct {
	io.Reader
	closers []io.Closer
}

func (c *closeChain) Close() error {
	var err error
	for _, cl := range c.closers {
		if e := cl.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// ReadFile opens and parses path, returning the resulting formula.
func ReadFile(path string) (*cnf.Formula, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Read(r)
}

// Read parses a DIMACS CNF stream from r into a new cnf.Formula.
//
// Lines beginning with 'p' or 'c' are skipped (the 'p cnf V C' header's
// counts are ignored — they are recomputed from the clauses actually
// read). Every clause is sorted, deduplicated, and dropped entirely if
// it contains a complementary pair of literals (a tautology), matching
// the canonicalization the original CNFFormula::readClause performs.
func Read(r io.Reader) (*cnf.Formula, error) {
	f := cnf.New()
	br := bufio.NewReaderSize(r, 64*1024)
	var offset int64
	var tok strings.Builder
	var clause []z.Lit

	readByte := func() (byte, error) {
		b, err := br.ReadByte()
		if err == nil {
			offset++
		} else if err != io.EOF {
			err = fmt.Errorf("%w: %v", errs.ErrIO, err)
		}
		return b, err
	}

	flushClause := func() {
		if len(clause) == 0 {
			return
		}
		sort.Sort(z.Lits(clause))
		clause = dedup(clause)
		if !tautology(clause) {
			f.AddClause(append([]z.Lit(nil), clause...))
		}
		clause = clause[:0]
	}

	for {
		b, err := readByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch {
		case b == 'c' || b == 'p':
			// comment or header line: skip to end of line.
			for {
				b, err = readByte()
				if err == io.EOF {
					return f, nil
				}
				if err != nil {
					return nil, err
				}
				if b == '\n' {
					break
				}
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if tok.Len() > 0 {
				lit, err := parseToken(tok.String())
				if err != nil {
					return nil, &ParseError{Offset: offset, Msg: err.Error()}
				}
				tok.Reset()
				if lit == 0 {
					flushClause()
				} else {
					clause = append(clause, z.Dimacs2Lit(lit))
				}
			}
		default:
			tok.WriteByte(b)
		}
	}
	if tok.Len() > 0 {
		lit, err := parseToken(tok.String())
		if err != nil {
			return nil, &ParseError{Offset: offset, Msg: err.Error()}
		}
		if lit == 0 {
			flushClause()
		} else {
			clause = append(clause, z.Dimacs2Lit(lit))
			flushClause()
		}
	}
	return f, nil
}

// Write serializes f to w in canonical DIMACS text form: a "p cnf V C"
// header followed by f's clauses in parse order, one per line, decimal
// ±var literals space-separated and 0-terminated.
func Write(w io.Writer, f *cnf.Formula) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", f.NVars(), f.NClauses()); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrIO, err)
	}
	for _, id := range f.ClauseIDs() {
		for _, l := range f.Clause(id) {
			if _, err := fmt.Fprintf(bw, "%d ", l.Dimacs()); err != nil {
				return fmt.Errorf("%w: %v", errs.ErrIO, err)
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return fmt.Errorf("%w: %v", errs.ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrIO, err)
	}
	return nil
}

func parseToken(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("malformed integer %q", s)
	}
	return n, nil
}

func dedup(sorted []z.Lit) []z.Lit {
	out := sorted[:0]
	for i, l := range sorted {
		if i == 0 || l != sorted[i-1] {
			out = append(out, l)
		}
	}
	return out
}

// tautology reports whether sorted (already deduplicated by dedup)
// contains both polarities of some variable. Because it's sorted by the
// z.Lit encoding, complementary literals of the same variable are
// adjacent.
func tautology(sorted []z.Lit) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Var() == sorted[i].Var() {
			return true
		}
	}
	return false
}
