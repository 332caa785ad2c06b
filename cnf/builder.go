// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import "github.com/TimonPasslick/gbdc/z"

// Builder adapts a Formula to the streaming, z.LitNull-terminated Add
// convention used by package inter and its callers (package gen, package
// logic), so those encoders can target Formula directly instead of an
// incremental solver.
type Builder struct {
	f      *Formula
	cur    []z.Lit
	maxVar z.Var
}

// NewBuilder creates a Builder appending clauses to f.
func NewBuilder(f *Formula) *Builder {
	return &Builder{f: f}
}

// Add appends m to the clause under construction, or, if m is
// z.LitNull, finishes it and stores it in the underlying Formula.
func (b *Builder) Add(m z.Lit) {
	if m == z.LitNull {
		b.f.AddClause(append([]z.Lit(nil), b.cur...))
		b.cur = b.cur[:0]
		return
	}
	b.cur = append(b.cur, m)
	if v := m.Var(); v > b.maxVar {
		b.maxVar = v
	}
}

// Lit allocates and returns a fresh positive literal, bumping MaxVar.
func (b *Builder) Lit() z.Lit {
	b.maxVar++
	return b.maxVar.Pos()
}

// MaxVar returns the largest variable Add or Lit has produced so far.
func (b *Builder) MaxVar() z.Var {
	return b.maxVar
}
