// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic_test

import (
	"testing"

	"github.com/TimonPasslick/gbdc/cnf"
	"github.com/TimonPasslick/gbdc/logic"
	"github.com/TimonPasslick/gbdc/z"
)

func TestCardSortBounds(t *testing.T) {
	f := cnf.New()
	b := cnf.NewBuilder(f)
	ms := make([]z.Lit, 8)
	for i := range ms {
		ms[i] = b.Lit()
	}
	c := logic.NewCardSort(ms, b)
	if c.N() != len(ms) {
		t.Fatalf("N() = %d, want %d", c.N(), len(ms))
	}
	if c.Leq(len(ms)) != c.Valid() {
		t.Errorf("Leq(N) should always hold")
	}
	if c.Geq(0) != c.Valid() {
		t.Errorf("Geq(0) should always hold")
	}
	if c.Geq(len(ms) + 1) != c.Valid().Not() {
		t.Errorf("Geq(N+1) should never hold")
	}
}

func TestCardSortEmitsClauses(t *testing.T) {
	f := cnf.New()
	b := cnf.NewBuilder(f)
	ms := []z.Lit{b.Lit(), b.Lit(), b.Lit()}
	logic.NewCardSort(ms, b)
	if f.NClauses() == 0 {
		t.Fatal("expected the sorting network to emit clauses")
	}
}
