// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package wl computes an isomorphism-invariant hash over a CNF's
// literal-incidence hypergraph by Weisfeiler-Leman color refinement.
// Grounded on original_source/src/identify/ISOHash2.h's default
// template instantiation (SizeGroupedCNFFormula, xxh3, 64-bit colors,
// plain ring).
package wl

import (
	"github.com/TimonPasslick/gbdc/cnf"
	"github.com/TimonPasslick/gbdc/hashkernel"
	"github.com/TimonPasslick/gbdc/z"
)

// Options controls the refinement's runtime-tunable parameters. There
// is exactly one supported configuration otherwise: a 64-bit
// non-cryptographic hash kernel and the plain-ring commutative
// combiner (package hashkernel); the storage/hash/width axes the
// original explores at compile time are not part of this module's
// contract.
type Options struct {
	// Depth bounds the refinement to Depth/2 iterations. If Depth is
	// even the final hash is variable-level; if odd, clause-level
	// (with one extra cross-reference).
	Depth int

	// CrossReferenceLiterals couples each literal's color to its
	// complement's every iteration, which is what makes the final
	// hash invariant to flipping any variable's polarity throughout
	// the formula.
	CrossReferenceLiterals bool

	// RehashClauses re-hashes a clause's combined color through the
	// kernel before folding it into its literals' new colors,
	// preventing a clause's raw combined color from colliding with an
	// unrelated literal's raw color.
	RehashClauses bool

	// OptimizeFirstIteration replaces the first iteration's clause
	// color with a hash of the clause's size instead of its literals'
	// (still-uninformative) initial colors, saving one full pass.
	OptimizeFirstIteration bool

	// FirstProgressCheckIteration is the earliest iteration at which
	// fixed-point detection runs; checking too early wastes work on
	// colors that haven't diverged yet.
	FirstProgressCheckIteration int
}

// DefaultOptions is the recommended configuration: depth 13 (this
// module's library-surface default), cross-referencing and clause
// rehashing on, the first-iteration size optimization on, progress
// checked from iteration 3 onward.
func DefaultOptions() Options {
	return Options{
		Depth:                       13,
		CrossReferenceLiterals:      true,
		RehashClauses:               true,
		OptimizeFirstIteration:      true,
		FirstProgressCheckIteration: 3,
	}
}

// Hash computes the Weisfeiler-Leman isomorphism-invariant hash of f
// under opts.
func Hash(f *cnf.Formula, opts Options) uint64 {
	r := newRefiner(f, opts)
	return r.run()
}

type refiner struct {
	f      *cnf.Formula
	colors [2][]uint64 // indexed by z.Lit; colors[iteration%2] is "old"
	iter   int
	opts   Options

	uniqueHashes        map[uint64]bool
	previousUniqueCount int
}

func newRefiner(f *cnf.Formula, opts Options) *refiner {
	n := 2 * (int(f.NVars()) + 1)
	c0 := make([]uint64, n)
	c1 := make([]uint64, n)
	for i := range c0 {
		c0[i] = 1
		c1[i] = 1
	}
	return &refiner{
		f:                   f,
		colors:              [2][]uint64{c0, c1},
		opts:                opts,
		uniqueHashes:        make(map[uint64]bool),
		previousUniqueCount: 1,
	}
}

func (r *refiner) old() []uint64 { return r.colors[r.iter%2] }
func (r *refiner) new_() []uint64 { return r.colors[(r.iter+1)%2] }

func (r *refiner) inOptimizedIteration() bool {
	return r.iter == 0 && r.opts.OptimizeFirstIteration
}

// crossReference couples every literal's color to its complement's:
// new p = hash(p, n), new n = hash(n, p), read from the current old
// colors and written back in place before the iteration step uses them.
func (r *refiner) crossReference() {
	if !r.opts.CrossReferenceLiterals || r.inOptimizedIteration() {
		return
	}
	old := r.old()
	for v := z.Var(1); int(v) <= int(r.f.NVars()); v++ {
		p, n := v.Pos(), v.Neg()
		pc, nc := old[p], old[n]
		old[p] = hashkernel.HashPair(pc, nc)
		old[n] = hashkernel.HashPair(nc, pc)
	}
}

// clauseHash folds the old colors of cl's literals into one value via
// the commutative combiner, then optionally rehashes it.
func (r *refiner) clauseHash(cl []z.Lit) uint64 {
	old := r.old()
	var h uint64
	for _, l := range cl {
		hashkernel.Combine(&h, old[l])
	}
	if r.opts.RehashClauses {
		h = hashkernel.HashUint64(h)
	}
	return h
}

// iterationStep runs one refinement round: cross-reference, compute
// every clause's color, and fold each clause's color into the new
// colors of its literals.
func (r *refiner) iterationStep() {
	r.crossReference()
	newColors := r.new_()
	optimized := r.inOptimizedIteration()
	r.f.EachClause(func(cl []z.Lit) {
		var clh uint64
		if optimized {
			if r.opts.RehashClauses {
				clh = hashkernel.HashInt(len(cl))
			} else {
				clh = uint64(len(cl))
			}
		} else {
			clh = r.clauseHash(cl)
		}
		for _, l := range cl {
			hashkernel.Combine(&newColors[l], clh)
		}
	})
	r.iter++
}

// variableHash folds either the canonicalized per-variable pair hashes
// (when cross-referencing) or the raw literal colors (otherwise) into
// one commutative sum.
func (r *refiner) variableHash() uint64 {
	old := r.old()
	var h uint64
	if r.opts.CrossReferenceLiterals {
		for v := z.Var(1); int(v) <= int(r.f.NVars()); v++ {
			hashkernel.Combine(&h, variablePairHash(old, v))
		}
		return h
	}
	for _, c := range old {
		hashkernel.Combine(&h, c)
	}
	return h
}

// cnfHash folds every clause's color (after one further cross-reference)
// into one commutative sum — the odd-depth final hash.
func (r *refiner) cnfHash() uint64 {
	r.crossReference()
	var h uint64
	r.f.EachClause(func(cl []z.Lit) {
		hashkernel.Combine(&h, r.clauseHash(cl))
	})
	return h
}

// variablePairHash hashes a variable's (positive, negative) color pair
// canonicalized so the smaller value comes first — the step that makes
// the result invariant to flipping that variable's polarity.
func variablePairHash(colors []uint64, v z.Var) uint64 {
	p, n := colors[v.Pos()], colors[v.Neg()]
	if p > n {
		p, n = n, p
	}
	return hashkernel.HashPair(p, n)
}

// checkProgress reports the current variable-hash sum and whether the
// refinement has reached a fixed point: the number of distinct
// variable hashes stopped growing since the last check. Returns
// (0, false) before FirstProgressCheckIteration.
func (r *refiner) checkProgress() (uint64, bool) {
	if r.iter < r.opts.FirstProgressCheckIteration {
		return 0, false
	}
	old := r.old()
	seen := make(map[uint64]bool, r.previousUniqueCount)
	var h uint64
	for v := z.Var(1); int(v) <= int(r.f.NVars()); v++ {
		vh := variablePairHash(old, v)
		seen[vh] = true
		hashkernel.Combine(&h, vh)
	}
	if len(seen) <= r.previousUniqueCount {
		return h, true
	}
	r.previousUniqueCount = len(seen)
	return 0, false
}

// run executes the refinement to a fixed point or Depth/2 iterations,
// whichever comes first, and returns the final hash.
func (r *refiner) run() uint64 {
	maxIter := r.opts.Depth / 2
	for r.iter < maxIter {
		if h, done := r.checkProgress(); done {
			return h
		}
		r.iterationStep()
	}
	if r.opts.Depth%2 == 0 {
		return r.variableHash()
	}
	return r.cnfHash()
}
