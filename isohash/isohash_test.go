// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package isohash

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TimonPasslick/gbdc/dimacs"
	"github.com/TimonPasslick/gbdc/wl"
)

func TestHashDepthOverridesOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.cnf")
	if err := os.WriteFile(path, []byte("p cnf 2 2\n1 -2 0\n2 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := wl.DefaultOptions()
	opts.Depth = 999
	res, err := Hash(path, 4, opts)
	if err != nil {
		t.Fatalf("Hash: %s", err)
	}
	if res.NVars != 2 {
		t.Errorf("NVars = %d, want 2", res.NVars)
	}
	f, err := dimacs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %s", err)
	}
	want := wl.DefaultOptions()
	want.Depth = 4
	if h := wl.Hash(f, want); res.Hash != h {
		t.Errorf("Hash = %d, want %d (the hash at depth 4)", res.Hash, h)
	}
}
