// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gate recovers the gate (AIG-like) structure hiding inside a CNF:
// which variables are Boolean functions of others, and which clauses are
// structural (not part of any recognized gate). Grounded on
// original_source/src/gates/{GateAnalyzer,GateFormula}.h.
package gate

import (
	"sort"

	"github.com/TimonPasslick/gbdc/cnf"
	"github.com/TimonPasslick/gbdc/z"
)

// Gate is a single recognized gate: the output literal o, the clauses
// that define it (Fwd, containing o; Bwd, containing ¬o), and its
// sorted, deduplicated input literals.
type Gate struct {
	Out          z.Lit
	Fwd, Bwd     []cnf.ClauseID
	Inputs       []z.Lit
	NonMonotonic bool
}

// Formula is the result of gate recognition over a cnf.Formula: the
// recovered gates, the root clauses that anchor the gate DAG, and the
// remainder of clauses no gate claimed.
type Formula struct {
	nVars          z.Var
	gates          map[z.Var]*Gate
	roots          []cnf.ClauseID
	remainder      []cnf.ClauseID
	usedAsInput    []bool // indexed by z.Lit
	artificialRoot bool
}

// NewFormula creates an empty gate.Formula over a CNF with nVars
// variables.
func NewFormula(nVars z.Var) *Formula {
	return &Formula{
		nVars:       nVars,
		gates:       make(map[z.Var]*Gate),
		usedAsInput: make([]bool, 2*(int(nVars)+2)),
	}
}

// NVars returns the number of variables known to gf, including any
// artificial root variable introduced by NormalizeRoots.
func (gf *Formula) NVars() z.Var { return gf.nVars }

// Roots returns the clauses anchoring the gate DAG, in the order they
// were selected.
func (gf *Formula) Roots() []cnf.ClauseID { return append([]cnf.ClauseID(nil), gf.roots...) }

// Remainder returns the clauses that belong to no recognized gate.
func (gf *Formula) Remainder() []cnf.ClauseID { return append([]cnf.ClauseID(nil), gf.remainder...) }

// HasArtificialRoot reports whether NormalizeRoots has already run.
func (gf *Formula) HasArtificialRoot() bool { return gf.artificialRoot }

// Gate returns the gate defining v, if any.
func (gf *Formula) Gate(v z.Var) (*Gate, bool) {
	g, ok := gf.gates[v]
	return g, ok
}

// IsGateOutput reports whether v is the output of a recognized gate.
func (gf *Formula) IsGateOutput(v z.Var) bool {
	_, ok := gf.gates[v]
	return ok
}

// Gates returns every recognized gate, in no particular order.
func (gf *Formula) Gates() []*Gate {
	out := make([]*Gate, 0, len(gf.gates))
	for _, g := range gf.gates {
		out = append(out, g)
	}
	return out
}

func (gf *Formula) setUsedAsInput(l z.Lit) {
	gf.usedAsInput[l] = true
}

func (gf *Formula) isUsedAsInput(l z.Lit) bool {
	return gf.usedAsInput[l]
}

// isNestedMonotonic reports whether l occurs as an input to other gates
// in one polarity only — the fast path past that lets isGate skip the
// pattern and semantic checks.
func (gf *Formula) isNestedMonotonic(l z.Lit) bool {
	return !(gf.isUsedAsInput(l) && gf.isUsedAsInput(l.Not()))
}

// addGate records a new gate with output o, defining clauses fwd and
// bwd, and inputs collected from every literal of fwd ∪ bwd other than
// ±o.
func (gf *Formula) addGate(o z.Lit, fwd, bwd []cnf.ClauseID, f *cnf.Formula) *Gate {
	g := &Gate{Out: o, Fwd: fwd, Bwd: bwd}
	g.NonMonotonic = !gf.isNestedMonotonic(o)

	seen := make(map[z.Lit]bool)
	collect := func(ids []cnf.ClauseID) {
		for _, cid := range ids {
			for _, l := range f.Clause(cid) {
				if l.Var() != o.Var() {
					seen[l] = true
				}
			}
		}
	}
	collect(fwd)
	collect(bwd)

	inputs := make([]z.Lit, 0, len(seen))
	for l := range seen {
		inputs = append(inputs, l)
	}
	sort.Sort(z.Lits(inputs))
	g.Inputs = inputs

	for _, l := range inputs {
		gf.setUsedAsInput(l)
		if g.NonMonotonic {
			gf.setUsedAsInput(l.Not())
		}
	}
	gf.gates[o.Var()] = g
	return g
}

// NormalizeRoots augments the gate DAG with a single artificial
// conjunction over the current roots: a fresh output variable whose
// positive literal becomes the formula's sole root, defined by a gate
// whose Fwd clauses are the old roots (each extended with the new
// output's negative literal) and whose inputs are every literal of the
// old roots. Idempotent. A supplemented feature grounded on
// GateFormula::normalizeRoots.
func (gf *Formula) NormalizeRoots(f *cnf.Formula) {
	if gf.artificialRoot {
		return
	}
	all := append(append([]cnf.ClauseID(nil), gf.roots...), gf.remainder...)
	if len(all) == 0 {
		return
	}

	root := gf.nVars + 1
	gf.nVars = root
	if n := 2 * (int(root) + 2); n > len(gf.usedAsInput) {
		grown := make([]bool, n)
		copy(grown, gf.usedAsInput)
		gf.usedAsInput = grown
	}
	out := root.Pos()

	seen := make(map[z.Lit]bool)
	fwd := make([]cnf.ClauseID, 0, len(all))
	for _, cid := range all {
		cl := f.Clause(cid)
		for _, l := range cl {
			seen[l] = true
		}
		extended := make([]z.Lit, len(cl)+1)
		copy(extended, cl)
		extended[len(cl)] = out.Not()
		fwd = append(fwd, f.AddClause(extended))
	}

	inputs := make([]z.Lit, 0, len(seen))
	for l := range seen {
		inputs = append(inputs, l)
	}
	sort.Sort(z.Lits(inputs))

	g := &Gate{Out: out, Fwd: fwd, Inputs: inputs}
	gf.gates[root] = g
	for _, l := range inputs {
		gf.setUsedAsInput(l)
	}

	unit := f.AddClause([]z.Lit{out})
	gf.roots = []cnf.ClauseID{unit}
	gf.remainder = nil
	gf.artificialRoot = true
}

// PrunedProblem returns the clauses of f relevant to the roots under a
// partial model: roots, every gate reachable from them whose output is
// either non-monotonic or satisfied by model (with its Bwd clauses
// included only in the non-monotonic case), and the remainder. model is
// indexed by z.Var; entries for variables with no fixed value are
// ignored safely only if the corresponding gate is never visited.
// A supplemented feature grounded on GateFormula::getPrunedProblem.
func (gf *Formula) PrunedProblem(f *cnf.Formula, model []bool) []cnf.ClauseID {
	result := append([]cnf.ClauseID(nil), gf.roots...)
	visited := make(map[z.Var]bool)
	var stack []z.Lit
	for _, cid := range gf.roots {
		stack = append(stack, f.Clause(cid)...)
	}
	for len(stack) > 0 {
		o := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		v := o.Var()
		if visited[v] {
			continue
		}
		g, ok := gf.gates[v]
		if !ok {
			continue
		}
		if !g.NonMonotonic && !modelValue(model, o) {
			continue
		}
		visited[v] = true
		result = append(result, g.Fwd...)
		if g.NonMonotonic {
			result = append(result, g.Bwd...)
		}
		stack = append(stack, g.Inputs...)
	}
	result = append(result, gf.remainder...)
	return result
}

func modelValue(model []bool, l z.Lit) bool {
	v := int(l.Var())
	if v >= len(model) {
		return false
	}
	if l.IsPos() {
		return model[v]
	}
	return !model[v]
}

// Stats summarizes the recognized gate DAG: the number of gates, how
// many are monotonic, and the number of roots.
func (gf *Formula) Stats() (nGates, nMonotonic, nRoots int) {
	for _, g := range gf.gates {
		nGates++
		if !g.NonMonotonic {
			nMonotonic++
		}
	}
	return nGates, nMonotonic, len(gf.roots)
}
