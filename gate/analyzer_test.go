// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gate

import (
	"testing"

	"github.com/TimonPasslick/gbdc/cnf"
	"github.com/TimonPasslick/gbdc/z"
)

func dm(is ...int) []z.Lit {
	lits := make([]z.Lit, len(is))
	for i, d := range is {
		lits[i] = z.Dimacs2Lit(d)
	}
	return lits
}

// S3: variable 1 = 2 AND 3.
func TestAnalyzeRecognizesAndGate(t *testing.T) {
	f := cnf.New()
	f.AddClause(dm(-1, 2))
	f.AddClause(dm(-1, 3))
	f.AddClause(dm(1, -2, -3))

	gf, err := Analyze(f, Options{Patterns: true, Tries: 1})
	if err != nil {
		t.Fatalf("Analyze: %s", err)
	}
	g, ok := gf.Gate(z.Var(1))
	if !ok {
		t.Fatal("expected variable 1 to be recognized as a gate")
	}
	if g.NonMonotonic {
		t.Error("expected variable 1's gate to be monotonic")
	}
	// Inputs are every literal of fwd ∪ bwd other than ±o: fwd="1 -2 -3"
	// contributes -2,-3; bwd="-1 2","-1 3" contribute 2,3 — both
	// polarities of each input variable, since each appears once in the
	// implication direction and once in the completeness direction.
	wantInputs := dm(2, -2, 3, -3)
	if len(g.Inputs) != len(wantInputs) {
		t.Fatalf("inputs = %v, want %v", g.Inputs, wantInputs)
	}
	for i, l := range wantInputs {
		if g.Inputs[i] != l {
			t.Fatalf("inputs = %v, want %v", g.Inputs, wantInputs)
		}
	}
}

// S4: variable 1 = 2 OR 3.
func TestAnalyzeRecognizesOrGate(t *testing.T) {
	f := cnf.New()
	f.AddClause(dm(1, -2))
	f.AddClause(dm(1, -3))
	f.AddClause(dm(-1, 2, 3))

	gf, err := Analyze(f, Options{Patterns: true, Tries: 1})
	if err != nil {
		t.Fatalf("Analyze: %s", err)
	}
	g, ok := gf.Gate(z.Var(1))
	if !ok {
		t.Fatal("expected variable 1 to be recognized as a gate")
	}
	if g.NonMonotonic {
		t.Error("expected variable 1's gate to be monotonic")
	}
}

// S5: variable 1 <-> variable 2.
func TestAnalyzeRecognizesEquivalenceGate(t *testing.T) {
	f := cnf.New()
	f.AddClause(dm(1, -2))
	f.AddClause(dm(-1, 2))

	gf, err := Analyze(f, Options{Patterns: true, Tries: 1})
	if err != nil {
		t.Fatalf("Analyze: %s", err)
	}
	if !gf.IsGateOutput(z.Var(1)) && !gf.IsGateOutput(z.Var(2)) {
		t.Fatal("expected one of variables 1 or 2 to be recognized as an equivalence gate output")
	}
}

// S2: unit-only formula has two roots and no gates.
func TestAnalyzeUnitOnlyFormulaHasOnlyRoots(t *testing.T) {
	f := cnf.New()
	f.AddClause(dm(1))
	f.AddClause(dm(-2))

	gf, err := Analyze(f, Options{Patterns: true, Tries: 1})
	if err != nil {
		t.Fatalf("Analyze: %s", err)
	}
	if len(gf.Gates()) != 0 {
		t.Fatalf("expected zero gates for unit-only formula, got %d", len(gf.Gates()))
	}
	if len(gf.Roots()) != 2 {
		t.Fatalf("expected two roots, got %d", len(gf.Roots()))
	}
}

// S1: empty formula.
func TestAnalyzeEmptyFormula(t *testing.T) {
	f := cnf.New()
	gf, err := Analyze(f, Options{Patterns: true, Tries: 1})
	if err != nil {
		t.Fatalf("Analyze: %s", err)
	}
	if len(gf.Gates()) != 0 || len(gf.Roots()) != 0 {
		t.Fatal("expected empty gate formula for empty CNF")
	}
}

// Property 5: every clause appears exactly once across
// roots ∪ gates(fwd ∪ bwd) ∪ remainder.
func TestAnalyzeClauseConservation(t *testing.T) {
	f := cnf.New()
	f.AddClause(dm(-1, 2))
	f.AddClause(dm(-1, 3))
	f.AddClause(dm(1, -2, -3))
	f.AddClause(dm(4, 5)) // an unrelated clause landing in the remainder

	gf, err := Analyze(f, Options{Patterns: true, Tries: 1})
	if err != nil {
		t.Fatalf("Analyze: %s", err)
	}
	seen := make(map[cnf.ClauseID]int)
	for _, id := range gf.Roots() {
		seen[id]++
	}
	for _, g := range gf.Gates() {
		for _, id := range g.Fwd {
			seen[id]++
		}
		for _, id := range g.Bwd {
			seen[id]++
		}
	}
	for _, id := range gf.Remainder() {
		seen[id]++
	}
	for _, id := range f.ClauseIDs() {
		if seen[id] != 1 {
			t.Errorf("clause %d counted %d times, want 1", id, seen[id])
		}
	}
}

func TestAnalyzeMonotonicFastPathWithoutPatternsOrSemantic(t *testing.T) {
	f := cnf.New()
	f.AddClause(dm(-1, 2))
	f.AddClause(dm(-1, 3))
	f.AddClause(dm(1, -2, -3))

	// Monotonicity alone already recognizes this gate, so disabling
	// both patterns and semantic checks must still succeed.
	gf, err := Analyze(f, Options{Tries: 1})
	if err != nil {
		t.Fatalf("Analyze: %s", err)
	}
	if !gf.IsGateOutput(z.Var(1)) {
		t.Fatal("expected the monotonicity fast path to recognize variable 1")
	}
}
