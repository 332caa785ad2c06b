// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic_test

import (
	"testing"

	"github.com/TimonPasslick/gbdc/cnf"
	"github.com/TimonPasslick/gbdc/gate"
	"github.com/TimonPasslick/gbdc/logic"
	"github.com/TimonPasslick/gbdc/z"
)

func TestCGrowStrash(t *testing.T) {
	c := logic.NewC()
	N := 1020
	ins := make([]z.Lit, 0, N)
	for i := 0; i < N; i++ {
		ins = append(ins, c.NewIn())
	}
	gs := make([]z.Lit, N/2)
	for i := 0; i < N/2; i++ {
		j := len(ins) - 1 - i
		a, b := ins[i], ins[j]
		gs[i] = c.And(a, b)
	}
	for i := 0; i < N/2; i++ {
		j := len(ins) - 1 - i
		a, b := ins[i], ins[j]
		if g := c.And(a, b); g != gs[i] {
			t.Errorf("invalid strash")
		}
	}
}

func TestCLogic(t *testing.T) {
	c := logic.NewC()
	a := c.NewIn()
	b := c.NewIn()
	if c.And(a, a) != a {
		t.Errorf("a and a should be a")
	}
	if c.And(a, a.Not()) != c.F {
		t.Errorf("a and !a should be false")
	}
	if c.Or(a, a.Not()) != c.T {
		t.Errorf("a or !a should be true")
	}
	if c.Xor(a, a) != c.F {
		t.Errorf("a xor a should be false")
	}
	if c.And(a, b) != c.And(b, a) {
		t.Errorf("and should be commutative under strashing")
	}
}

// A hand-built AND-gate circuit, Tseitinized to CNF, must be recovered
// by gate recognition as a single monotonic gate whose inputs are both
// polarities of its two operands.
func TestCToCnfRoundTripsThroughGateRecognition(t *testing.T) {
	c := logic.NewC()
	a := c.NewIn()
	b := c.NewIn()
	out := c.And(a, b)

	f := cnf.New()
	bld := cnf.NewBuilder(f)
	c.ToCnfFrom(bld, out)
	// pin the gate's output as a root so it is not eliminated as a
	// dangling, unconstrained output.
	f.AddClause([]z.Lit{out})

	gf, err := gate.Analyze(f, gate.Options{Patterns: true, Tries: 1})
	if err != nil {
		t.Fatalf("Analyze: %s", err)
	}
	nGates, nMonotonic, _ := gf.Stats()
	if nGates != 1 {
		t.Fatalf("gates = %d, want 1", nGates)
	}
	if nMonotonic != 1 {
		t.Fatalf("expected the AND gate to be recognized as monotonic")
	}
}
