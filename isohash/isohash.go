// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package isohash is the library-surface entry point for the
// Weisfeiler-Leman isomorphism hash: read a DIMACS file and reduce it to
// its hash plus the timing a caller (the CLI's -v/--verbose) may want to
// report.
package isohash

import (
	"time"

	"github.com/TimonPasslick/gbdc/dimacs"
	"github.com/TimonPasslick/gbdc/wl"
)

// Result is the outcome of hashing one formula.
type Result struct {
	Hash    uint64
	NVars   int
	Elapsed time.Duration
}

// Hash reads path, overrides opts.Depth with depth, and returns the
// WL hash of the resulting formula.
func Hash(path string, depth int, opts wl.Options) (Result, error) {
	f, err := dimacs.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	opts.Depth = depth
	start := time.Now()
	h := wl.Hash(f, opts)
	return Result{Hash: h, NVars: int(f.NVars()), Elapsed: time.Since(start)}, nil
}
