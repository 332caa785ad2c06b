// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gate

import (
	"testing"

	"github.com/TimonPasslick/gbdc/cnf"
	"github.com/TimonPasslick/gbdc/z"
)

func TestFPatternEquivalence(t *testing.T) {
	f := cnf.New()
	fwd := []cnf.ClauseID{f.AddClause(dm(1, -2))}
	bwd := []cnf.ClauseID{f.AddClause(dm(-1, 2))}
	if !fPattern(f, z.Dimacs2Lit(1), fwd, bwd) {
		t.Fatal("expected equivalence pattern to match")
	}
}

func TestFPatternOrShaped(t *testing.T) {
	f := cnf.New()
	fwd := []cnf.ClauseID{f.AddClause(dm(1, -2, -3))}
	bwd := []cnf.ClauseID{
		f.AddClause(dm(-1, 2)),
		f.AddClause(dm(-1, 3)),
	}
	if !fPattern(f, z.Dimacs2Lit(1), fwd, bwd) {
		t.Fatal("expected OR-shaped pattern to match")
	}
}

func TestFPatternRejectsMismatchedVariableSets(t *testing.T) {
	f := cnf.New()
	fwd := []cnf.ClauseID{f.AddClause(dm(1, -2))}
	bwd := []cnf.ClauseID{f.AddClause(dm(-1, 4))}
	if fPattern(f, z.Dimacs2Lit(1), fwd, bwd) {
		t.Fatal("expected pattern to reject mismatched input variable sets")
	}
}

func TestFPatternFullEncoding(t *testing.T) {
	// Exercises the 2·|fwd| = 2^(|inputs|/2) branch directly: a single
	// fwd clause mentioning both polarities of every input variable
	// besides o, matched by a same-size bwd over the same variables.
	f := cnf.New()
	fwd := []cnf.ClauseID{f.AddClause(dm(1, 2, -2, 3, -3))}
	bwd := []cnf.ClauseID{f.AddClause(dm(-1, 2, 3))}
	if !fPattern(f, z.Dimacs2Lit(1), fwd, bwd) {
		t.Fatal("expected full-encoding pattern to match")
	}
}
