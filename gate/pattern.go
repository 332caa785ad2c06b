// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gate

import (
	"github.com/TimonPasslick/gbdc/cnf"
	"github.com/TimonPasslick/gbdc/z"
)

// fPattern recognizes a gate at output o from clause shape alone,
// without any SAT call: an equivalence gate, an OR/AND-shaped
// implication, or a full DNF/CNF encoding over |inputs| variables.
// fwd is the clauses containing o, bwd the clauses containing ¬o.
func fPattern(f *cnf.Formula, o z.Lit, fwd, bwd []cnf.ClauseID) bool {
	fwdInp := varSet(f, fwd, o)
	bwdInp := varSet(f, bwd, o.Not())
	if !sameVarSet(fwdInp, bwdInp) {
		return false
	}

	if len(fwd) == 1 && len(bwd) == 1 &&
		len(f.Clause(fwd[0])) == 2 && len(f.Clause(bwd[0])) == 2 {
		return true // equivalence gate: o <-> single input
	}
	if len(fwd) == 1 && fixedClauseSize(f, bwd, 2) {
		return true // OR-shaped: one general clause, all backward implications binary
	}
	if len(bwd) == 1 && fixedClauseSize(f, fwd, 2) {
		return true // AND-shaped: one general clause, all forward implications binary
	}
	if len(fwd) == len(bwd) && len(fwdInp) > 0 && len(fwdInp)%2 == 0 {
		half := len(fwdInp) / 2
		if 2*len(fwd) == 1<<uint(half) {
			if len(litSet(f, fwd, o)) == 2*len(fwdInp) {
				return true // full CNF/DNF encoding over the input variables
			}
		}
	}
	return false
}

// varSet collects the variables of every literal in the given clauses
// other than the variable of skip.
func varSet(f *cnf.Formula, ids []cnf.ClauseID, skip z.Lit) map[z.Var]bool {
	set := make(map[z.Var]bool)
	for _, id := range ids {
		for _, l := range f.Clause(id) {
			if l.Var() != skip.Var() {
				set[l.Var()] = true
			}
		}
	}
	return set
}

// litSet collects the distinct literals of the given clauses other than
// skip's own literal value.
func litSet(f *cnf.Formula, ids []cnf.ClauseID, skip z.Lit) map[z.Lit]bool {
	set := make(map[z.Lit]bool)
	for _, id := range ids {
		for _, l := range f.Clause(id) {
			if l != skip {
				set[l] = true
			}
		}
	}
	return set
}

func sameVarSet(a, b map[z.Var]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for v := range a {
		if !b[v] {
			return false
		}
	}
	return true
}

func fixedClauseSize(f *cnf.Formula, ids []cnf.ClauseID, n int) bool {
	for _, id := range ids {
		if len(f.Clause(id)) != n {
			return false
		}
	}
	return true
}
