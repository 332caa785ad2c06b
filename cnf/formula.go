// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package cnf holds parsed CNF formulas compactly: one literal array per
// clause length ("size-bucketed", spec.md's recommended clause store
// layout), plus a parse-order index so callers needing the original
// clause order (GBD hashing, root/remainder bookkeeping) can still get
// it without depending on bucket layout.
package cnf

import (
	"fmt"
	"sort"

	"github.com/TimonPasslick/gbdc/errs"
	"github.com/TimonPasslick/gbdc/z"
)

// ClauseID identifies a clause by its position in parse order. It is
// stable for the lifetime of a Formula: AddClause never renumbers
// existing clauses.
type ClauseID int32

type clauseLoc struct {
	length int
	start  int
}

// Formula is a CNF: a sequence of clauses and the maximum variable index
// observed among them. Formula owns its clauses; any Index, gate.Formula
// or wl state derived from it must not outlive it.
type Formula struct {
	nVars   z.Var
	buckets map[int][]z.Lit // length -> flat literal array, len(bucket) % length == 0
	locs    []clauseLoc     // ClauseID -> location, in parse order
}

// New creates an empty Formula.
func New() *Formula {
	return &Formula{buckets: make(map[int][]z.Lit)}
}

// NVars returns the maximum variable index seen across all clauses.
func (f *Formula) NVars() z.Var {
	return f.nVars
}

// NClauses returns the number of clauses stored.
func (f *Formula) NClauses() int {
	return len(f.locs)
}

// AddClause appends a clause to the formula and returns its id. Callers
// are responsible for any canonicalization (sorting, duplicate-literal
// removal, tautology detection) they want applied — Formula stores
// exactly the literals it is given. An empty clause is stored as a
// clause of length 0 (callers, e.g. the DIMACS reader, decide whether
// that's fatal).
func (f *Formula) AddClause(lits []z.Lit) ClauseID {
	n := len(lits)
	id := ClauseID(len(f.locs))
	bucket := f.buckets[n]
	start := len(bucket)
	bucket = append(bucket, lits...)
	f.buckets[n] = bucket
	f.locs = append(f.locs, clauseLoc{length: n, start: start})
	for _, l := range lits {
		if v := l.Var(); v > f.nVars {
			f.nVars = v
		}
	}
	return id
}

// Clause returns the literal slice for id. The returned slice aliases
// Formula's storage and must not be mutated.
//
// id must have come from AddClause or ClauseIDs on this Formula; any
// other value is a caller bug, not a data condition Formula tries to
// recover from.
func (f *Formula) Clause(id ClauseID) []z.Lit {
	if int(id) < 0 || int(id) >= len(f.locs) {
		panic(fmt.Errorf("%w: clause id %d out of range [0,%d)", errs.ErrInternal, id, len(f.locs)))
	}
	loc := f.locs[id]
	bucket := f.buckets[loc.length]
	return bucket[loc.start : loc.start+loc.length]
}

// ClauseIDs returns every clause id in parse order.
func (f *Formula) ClauseIDs() []ClauseID {
	ids := make([]ClauseID, len(f.locs))
	for i := range ids {
		ids[i] = ClauseID(i)
	}
	return ids
}

// Lengths returns the distinct clause lengths present, in ascending
// order — the size-bucketed store's native iteration order.
func (f *Formula) Lengths() []int {
	lens := make([]int, 0, len(f.buckets))
	for l := range f.buckets {
		lens = append(lens, l)
	}
	sort.Ints(lens)
	return lens
}

// BucketClauses returns consecutive length-sized literal slices for
// every clause of the given length, in the order they were added.
func (f *Formula) BucketClauses(length int) [][]z.Lit {
	bucket := f.buckets[length]
	if length == 0 {
		return nil
	}
	n := len(bucket) / length
	out := make([][]z.Lit, n)
	for i := 0; i < n; i++ {
		out[i] = bucket[i*length : (i+1)*length]
	}
	return out
}

// EachClause calls fn for every clause in ascending-length (bucketed)
// order, the layout the WL refinement iterates over.
func (f *Formula) EachClause(fn func(lits []z.Lit)) {
	for _, length := range f.Lengths() {
		for _, cl := range f.BucketClauses(length) {
			fn(cl)
		}
	}
}

// NormalizeVariableNames compacts the variables occurring in f to a
// gapless 1..V' range, preserving polarity and the relative order in
// which variables were first encountered in parse order. Unlike the
// original C++ implementation this module is grounded on (which starts
// numbering at 0), variable 0 remains the reserved "undefined" sentinel
// afterward, consistent with the encoding of z.Lit and z.Var.
func (f *Formula) NormalizeVariableNames() {
	vars := z.NewVars()
	for _, id := range f.ClauseIDs() {
		cl := f.Clause(id)
		for i, l := range cl {
			cl[i] = vars.ToInner(l)
		}
	}
	f.nVars = z.Var(vars.Len())
}
