// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gate

import (
	"fmt"

	"github.com/crillab/gophersat/solver"

	"github.com/TimonPasslick/gbdc/cnf"
	"github.com/TimonPasslick/gbdc/errs"
	"github.com/TimonPasslick/gbdc/z"
)

// Oracle is the semantic gate test: are the clauses of fwd ∪ bwd, with
// every occurrence of ±o replaced by ¬o, unsatisfiable together with o?
// It wraps gophersat's embedded solver.
//
// gophersat's public Solver has no ipasir-style incremental
// assume/solve: each Test call rebuilds a *solver.Solver from the
// clauses accumulated by every previous call plus a one-shot unit
// clause for the current assumption, accepting the extra recomputation
// in exchange for not vendoring or reimplementing a CDCL core.
type Oracle struct {
	clauses [][]int
}

// NewOracle constructs a semantic oracle with no accumulated clauses.
func NewOracle() (o *Oracle, err error) {
	defer func() {
		if r := recover(); r != nil {
			o, err = nil, fmt.Errorf("%w: %v", errs.ErrSolverUnavailable, r)
		}
	}()
	return &Oracle{}, nil
}

// Close releases the oracle's state. It never fails; gophersat runs
// in-process and owns no external resource.
func (o *Oracle) Close() error { return nil }

// Test reports whether the clauses of fwd ∪ bwd, once every occurrence
// of ±out in them is replaced by ¬out, are unsatisfiable under the
// assumption out (that is, they entail ¬out). The clauses are added
// permanently to o for reuse by later Test calls against other outputs;
// the assumption is one-shot.
func (o *Oracle) Test(f *cnf.Formula, out z.Lit, fwd, bwd []cnf.ClauseID) bool {
	subst := out.Not()
	add := func(ids []cnf.ClauseID) {
		for _, cid := range ids {
			cl := f.Clause(cid)
			lits := make([]int, len(cl))
			for i, l := range cl {
				if l.Var() == out.Var() {
					lits[i] = subst.Dimacs()
				} else {
					lits[i] = l.Dimacs()
				}
			}
			o.clauses = append(o.clauses, lits)
		}
	}
	add(fwd)
	add(bwd)

	trial := make([][]int, len(o.clauses)+1)
	copy(trial, o.clauses)
	trial[len(o.clauses)] = []int{out.Dimacs()}

	pb := solver.ParseSlice(trial)
	s := solver.New(pb)
	return s.Solve() == solver.Unsat
}
