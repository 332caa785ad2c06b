// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gate

import (
	"fmt"
	"log"
	"sort"

	"github.com/TimonPasslick/gbdc/cnf"
	"github.com/TimonPasslick/gbdc/occ"
	"github.com/TimonPasslick/gbdc/z"
)

// Options controls gate recognition: which tests isGate may use, and
// how many times to re-estimate roots once the first pass over the
// formula starves.
type Options struct {
	// Patterns enables the syntactic pattern rules (equivalence, OR/AND
	// implication, full encoding) as a fallback past the monotonicity
	// fast path.
	Patterns bool

	// Semantic enables the SAT-backed oracle as a further fallback past
	// Patterns. If the oracle fails to initialize, recognition falls
	// back to Patterns-only (logging a warning) when Patterns is also
	// enabled; otherwise Analyze returns an error wrapping
	// errs.ErrSolverUnavailable.
	Semantic bool

	// Tries bounds how many times roots are re-estimated from the
	// occurrence index once a pass finds none left to grow from. Tries
	// <= 0 is treated as 1.
	Tries int
}

// Analyze recognizes gates in f according to opts and returns the
// resulting gate.Formula.
func Analyze(f *cnf.Formula, opts Options) (*Formula, error) {
	idx := occ.New(f)
	gf := NewFormula(f.NVars())

	var oracle *Oracle
	if opts.Semantic {
		o, err := NewOracle()
		if err != nil {
			if !opts.Patterns {
				return nil, fmt.Errorf("gate: %w", err)
			}
			log.Printf("gate: semantic oracle unavailable, falling back to pattern-only recognition: %s", err)
			opts.Semantic = false
		} else {
			oracle = o
			defer oracle.Close()
		}
	}

	a := &analyzer{f: f, idx: idx, gf: gf, opts: opts, oracle: oracle}
	a.run()
	return gf, nil
}

type analyzer struct {
	f      *cnf.Formula
	idx    *occ.Index
	gf     *Formula
	opts   Options
	oracle *Oracle
}

func (a *analyzer) run() {
	tries := a.opts.Tries
	if tries <= 0 {
		tries = 1
	}
	roots := a.idx.EstimateRoots()
	for count := 0; count < tries && len(roots) > 0; count++ {
		candidates := make([]z.Lit, 0, len(roots)*2)
		for _, cid := range roots {
			a.gf.roots = append(a.gf.roots, cid)
			for _, l := range a.f.Clause(cid) {
				a.gf.setUsedAsInput(l)
				candidates = append(candidates, l)
			}
			a.idx.Consume(cid)
		}
		sort.Sort(z.Lits(candidates))
		candidates = dedupLits(candidates)
		a.bfs(candidates)
		roots = a.idx.EstimateRoots()
	}
	a.gf.remainder = a.idx.Remaining()
}

// bfs drives gate recognition outward from an initial sorted,
// deduplicated frontier of candidate output literals: every recognized
// gate's inputs are merged into the next frontier.
func (a *analyzer) bfs(frontier []z.Lit) {
	for len(frontier) > 0 {
		current := frontier
		frontier = nil
		for _, o := range current {
			if a.isGate(o) {
				g, _ := a.gf.Gate(o.Var())
				frontier = mergeSortedLits(frontier, g.Inputs)
			}
		}
	}
}

// isGate tests whether o can be recognized as a gate output: bwd(o)
// must be non-empty and blocked by fwd(o), then either the
// monotonicity fast path, the pattern rules, or the semantic oracle
// must accept it.
func (a *analyzer) isGate(o z.Lit) bool {
	bwd := a.idx.Bwd(o)
	if len(bwd) == 0 {
		return false
	}
	if !a.idx.IsBlockedSet(o) {
		return false
	}
	fwd := a.idx.Fwd(o)

	recognized := a.gf.isNestedMonotonic(o)
	if !recognized && a.opts.Patterns {
		recognized = fPattern(a.f, o, fwd, bwd)
	}
	if !recognized && a.opts.Semantic && a.oracle != nil {
		recognized = a.oracle.Test(a.f, o, fwd, bwd)
	}
	if !recognized {
		return false
	}

	a.gf.addGate(o, fwd, bwd, a.f)
	a.idx.Remove(o.Var())
	return true
}

func dedupLits(sorted []z.Lit) []z.Lit {
	out := sorted[:0]
	for i, l := range sorted {
		if i == 0 || l != sorted[i-1] {
			out = append(out, l)
		}
	}
	return out
}

// mergeSortedLits merges two sorted, deduplicated literal slices into
// one sorted, deduplicated slice.
func mergeSortedLits(a, b []z.Lit) []z.Lit {
	out := make([]z.Lit, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
