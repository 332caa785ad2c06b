// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package feature

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCNF(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.cnf")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractBaseStats(t *testing.T) {
	path := writeCNF(t, "p cnf 3 2\n1 -2 0\n2 3 0\n")
	stats, err := ExtractBase(path)
	if err != nil {
		t.Fatalf("ExtractBase: %s", err)
	}
	if stats["variables"] != 3 {
		t.Errorf("variables = %v, want 3", stats["variables"])
	}
	if stats["clauses"] != 2 {
		t.Errorf("clauses = %v, want 2", stats["clauses"])
	}
	if stats["avgClauseLength"] != 2 {
		t.Errorf("avgClauseLength = %v, want 2", stats["avgClauseLength"])
	}
}

func TestExtractGateStats(t *testing.T) {
	path := writeCNF(t, "-1 2 0\n-1 3 0\n1 -2 -3 0\n")
	stats, err := ExtractGate(path)
	if err != nil {
		t.Fatalf("ExtractGate: %s", err)
	}
	if stats["gates"] < 1 {
		t.Fatalf("gates = %v, want at least 1", stats["gates"])
	}
	if stats["gatesMonotonic"] != stats["gates"] {
		t.Errorf("expected the AND gate to be monotonic")
	}
}

func TestExtractBaseEmptyFormula(t *testing.T) {
	path := writeCNF(t, "p cnf 0 0\n")
	stats, err := ExtractBase(path)
	if err != nil {
		t.Fatalf("ExtractBase: %s", err)
	}
	if stats["clauses"] != 0 {
		t.Errorf("clauses = %v, want 0", stats["clauses"])
	}
}
