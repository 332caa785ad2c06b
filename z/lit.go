// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Lit is a literal: a variable together with a polarity, encoded so that
// the two literals of a variable are adjacent (Lit = Var<<1 | sign) and
// complementation is a flip of the low bit.
type Lit uint32

// LitNull is the zero literal: the positive literal of the reserved
// "undefined" variable 0. It never occurs in a parsed clause.
const LitNull = Lit(0)

// Var returns the variable of m.
func (m Lit) Var() Var {
	return Var(m >> 1)
}

// IsPos is true iff m is a positive literal.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// Sign returns 1 for a positive literal, -1 for a negative one.
func (m Lit) Sign() int {
	if m&1 == 1 {
		return -1
	}
	return 1
}

// Not returns the complement of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

// Dimacs2Lit converts a non-zero signed DIMACS integer to a Lit.
func Dimacs2Lit(i int) Lit {
	if i < 0 {
		return Var(-i).Neg()
	}
	return Var(i).Pos()
}

// Dimacs converts m back to a signed DIMACS integer.
func (m Lit) Dimacs() int {
	d := int(m.Var())
	if !m.IsPos() {
		d = -d
	}
	return d
}

// String implements fmt.Stringer, rendering m in DIMACS form.
func (m Lit) String() string {
	return fmt.Sprintf("%d", m.Dimacs())
}

// Lits is a slice of Lit, sortable by the total order of the underlying
// encoding (which also orders by variable, then polarity).
type Lits []Lit

func (a Lits) Len() int           { return len(a) }
func (a Lits) Less(i, j int) bool { return a[i] < a[j] }
func (a Lits) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
