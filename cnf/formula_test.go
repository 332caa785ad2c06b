// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import (
	"reflect"
	"testing"

	"github.com/TimonPasslick/gbdc/z"
)

func dm(is ...int) []z.Lit {
	lits := make([]z.Lit, len(is))
	for i, d := range is {
		lits[i] = z.Dimacs2Lit(d)
	}
	return lits
}

func TestAddClauseAndNVars(t *testing.T) {
	f := New()
	f.AddClause(dm(1, -2))
	f.AddClause(dm(3))
	if f.NVars() != 3 {
		t.Fatalf("nVars = %d, want 3", f.NVars())
	}
	if f.NClauses() != 2 {
		t.Fatalf("nClauses = %d, want 2", f.NClauses())
	}
	if got := f.Clause(0); !reflect.DeepEqual(got, dm(1, -2)) {
		t.Errorf("clause 0 = %v, want %v", got, dm(1, -2))
	}
}

func TestBucketing(t *testing.T) {
	f := New()
	f.AddClause(dm(1, 2))
	f.AddClause(dm(3))
	f.AddClause(dm(-1, -2))
	lens := f.Lengths()
	if !reflect.DeepEqual(lens, []int{1, 2}) {
		t.Fatalf("lengths = %v, want [1 2]", lens)
	}
	twos := f.BucketClauses(2)
	if len(twos) != 2 {
		t.Fatalf("len(twos) = %d, want 2", len(twos))
	}
}

func TestNormalizeVariableNamesCompactsAndPreservesSign(t *testing.T) {
	f := New()
	f.AddClause(dm(10, -20))
	f.AddClause(dm(20, 30))
	f.NormalizeVariableNames()
	if f.NVars() != 3 {
		t.Fatalf("nVars after normalize = %d, want 3", f.NVars())
	}
	c0 := f.Clause(0)
	c1 := f.Clause(1)
	// variable that maps c0[1] must be the same as the one mapping c1[0],
	// since they were both derived from dimacs var 20, with opposite sign.
	if c0[1].Var() != c1[0].Var() {
		t.Fatalf("var 20 did not normalize to a single variable: %v vs %v", c0[1], c1[0])
	}
	if c0[1].IsPos() == c1[0].IsPos() {
		t.Fatalf("polarity of var 20 not preserved across occurrences")
	}
	if c0[1].Var() == 0 {
		t.Fatalf("normalized variable collided with the reserved undefined variable 0")
	}
}
