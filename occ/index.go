// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package occ maintains a mutable literal-occurrence index over a
// cnf.Formula: for each literal, the set of clauses currently containing
// it. It backs gate recognition's root estimation and blocked-set test
// and is otherwise unused — the WL refinement in package wl reads the
// formula directly and never mutates it.
package occ

import (
	"github.com/TimonPasslick/gbdc/cnf"
	"github.com/TimonPasslick/gbdc/z"
)

// Index is an occurrence index over a fixed cnf.Formula. It is mutated
// only by Remove and Consume; no other component may mutate clauses
// while an Index derived from them is live.
type Index struct {
	f      *cnf.Formula
	occ    [][]cnf.ClauseID // indexed by z.Lit
	active []bool           // indexed by cnf.ClauseID
}

// New builds an occurrence index over every clause of f.
func New(f *cnf.Formula) *Index {
	n := 2 * (int(f.NVars()) + 1)
	idx := &Index{
		f:      f,
		occ:    make([][]cnf.ClauseID, n),
		active: make([]bool, f.NClauses()),
	}
	for _, id := range f.ClauseIDs() {
		cl := f.Clause(id)
		if len(cl) == 0 {
			continue
		}
		idx.active[id] = true
		for _, l := range cl {
			idx.occ[l] = append(idx.occ[l], id)
		}
	}
	return idx
}

// Occ returns the clause ids currently containing l. The returned slice
// aliases Index's storage and must not be mutated.
func (idx *Index) Occ(l z.Lit) []cnf.ClauseID {
	return idx.occ[l]
}

// EstimateRoots returns the still-active clauses that contain at least
// one literal whose complement occurs in no active clause: candidate
// top-level or unit-like constraints. Called repeatedly during gate
// recognition, since earlier passes can expose new roots.
func (idx *Index) EstimateRoots() []cnf.ClauseID {
	var roots []cnf.ClauseID
	for id := 0; id < len(idx.active); id++ {
		cid := cnf.ClauseID(id)
		if !idx.active[cid] {
			continue
		}
		for _, l := range idx.f.Clause(cid) {
			if len(idx.occ[l.Not()]) == 0 {
				roots = append(roots, cid)
				break
			}
		}
	}
	return roots
}

// IsBlockedSet reports whether the clauses on o (fwd(o), those
// containing o) block the clauses on ¬o (bwd(o), those containing ¬o):
// every pair (c+ in fwd(o), c- in bwd(o)) contains a complementary pair
// of literals besides (o, ¬o). Vacuously true if either side is empty.
func (idx *Index) IsBlockedSet(o z.Lit) bool {
	fwd := idx.occ[o]
	bwd := idx.occ[o.Not()]
	for _, cp := range fwd {
		clp := idx.f.Clause(cp)
		for _, cm := range bwd {
			if !blocks(clp, idx.f.Clause(cm), o) {
				return false
			}
		}
	}
	return true
}

// blocks reports whether clp (containing o) and clm (containing ¬o)
// share a complementary pair of literals other than (o, ¬o).
func blocks(clp, clm []z.Lit, o z.Lit) bool {
	for _, l := range clp {
		if l == o {
			continue
		}
		for _, m := range clm {
			if m == l.Not() {
				return true
			}
		}
	}
	return false
}

// Fwd returns the clauses currently containing o.
func (idx *Index) Fwd(o z.Lit) []cnf.ClauseID {
	return idx.occ[o]
}

// Bwd returns the clauses currently containing ¬o.
func (idx *Index) Bwd(o z.Lit) []cnf.ClauseID {
	return idx.occ[o.Not()]
}

// Remove drops both polarities of v from every literal's occurrence
// list: after Remove(v), no list for any literal mentions a clause that
// contained v or ¬v.
func (idx *Index) Remove(v z.Var) {
	pos, neg := v.Pos(), v.Neg()
	touched := make(map[cnf.ClauseID]bool, len(idx.occ[pos])+len(idx.occ[neg]))
	for _, id := range idx.occ[pos] {
		touched[id] = true
	}
	for _, id := range idx.occ[neg] {
		touched[id] = true
	}
	for id := range touched {
		idx.deactivate(id)
	}
}

// Consume removes a single clause from every literal's occurrence list
// without removing the variables of its other literals. Used by gate
// recognition to retire a root clause so later passes don't reselect it.
func (idx *Index) Consume(id cnf.ClauseID) {
	idx.deactivate(id)
}

func (idx *Index) deactivate(id cnf.ClauseID) {
	if !idx.active[id] {
		return
	}
	idx.active[id] = false
	for _, l := range idx.f.Clause(id) {
		idx.occ[l] = removeID(idx.occ[l], id)
	}
}

func removeID(ids []cnf.ClauseID, target cnf.ClauseID) []cnf.ClauseID {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Remaining returns every clause id still active, in ascending id order —
// the driver's "remainder" once gate recognition has finished.
func (idx *Index) Remaining() []cnf.ClauseID {
	var rem []cnf.ClauseID
	for id := 0; id < len(idx.active); id++ {
		if idx.active[id] {
			rem = append(rem, cnf.ClauseID(id))
		}
	}
	return rem
}
