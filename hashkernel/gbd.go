// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package hashkernel

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"strconv"

	"github.com/TimonPasslick/gbdc/cnf"
)

// GBDHash computes the "name-only" canonical CNF hash used to identify
// a formula in external benchmark databases: normalize f's variable
// names to a dense range, emit its clauses in parse order as decimal
// `±var` tokens separated by spaces and terminated by `0`, one clause
// per line, then take the MD5 digest of the resulting bytes. Unlike the
// WL hash it is not polarity-flip invariant.
//
// GBDHash normalizes f in place; callers that need the original
// variable numbering afterward should normalize a copy first.
func GBDHash(f *cnf.Formula) string {
	f.NormalizeVariableNames()
	var buf bytes.Buffer
	for _, id := range f.ClauseIDs() {
		for _, l := range f.Clause(id) {
			buf.WriteString(strconv.Itoa(l.Dimacs()))
			buf.WriteByte(' ')
		}
		buf.WriteString("0\n")
	}
	sum := md5.Sum(buf.Bytes())
	return hex.EncodeToString(sum[:])
}
