// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gbdhash is the library-surface entry point for the GBD hash:
// read a DIMACS file and reduce it to its hex MD5 digest.
package gbdhash

import (
	"github.com/TimonPasslick/gbdc/dimacs"
	"github.com/TimonPasslick/gbdc/hashkernel"
)

// Hash reads path and returns its GBD hash, the hex-encoded MD5 digest
// of its canonical text serialization.
func Hash(path string) (string, error) {
	f, err := dimacs.ReadFile(path)
	if err != nil {
		return "", err
	}
	return hashkernel.GBDHash(f), nil
}
