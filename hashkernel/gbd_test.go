// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package hashkernel

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

func TestGBDHashDeterministic(t *testing.T) {
	f1 := cnf.New()
	f1.AddClause(dm(1, -2))
	f1.AddClause(dm(2, 3))
	f2 := cnf.New()
	f2.AddClause(dm(1, -2))
	f2.AddClause(dm(2, 3))
	if GBDHash(f1) != GBDHash(f2) {
		t.Fatal("expected identical formulas to hash identically")
	}
}

func TestGBDHashNotPolarityInvariant(t *testing.T) {
	f1 := cnf.New()
	f1.AddClause(dm(1, -2))
	f2 := cnf.New()
	f2.AddClause(dm(1, 2)) // flipped variable 2
	if GBDHash(f1) == GBDHash(f2) {
		t.Fatal("expected GBD hash to distinguish a polarity flip")
	}
}

func TestGBDHashIsHexMD5Length(t *testing.T) {
	f := cnf.New()
	f.AddClause(dm(1))
	h := GBDHash(f)
	if len(h) != 32 {
		t.Fatalf("len(hash) = %d, want 32 (MD5 hex)", len(h))
	}
}
