// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Vars maps a possibly sparse set of "outer" variables (as they occur in
// a parsed CNF) to a dense, gapless set of "inner" variables, and can
// additionally allocate fresh inner variables with no outer counterpart.
//
// It backs cnf.Formula's variable-name normalization (spec.md's
// normalizeVariableNames).
type Vars struct {
	outerToInner map[Lit]Lit
	innerToOuter []Lit
	free         []Var
	next         Var
}

// NewVars creates an empty variable pool. Inner variable numbering starts
// at 1; index 0 is reserved (Var 0 is "undefined").
func NewVars() *Vars {
	return &Vars{
		outerToInner: make(map[Lit]Lit),
		innerToOuter: []Lit{LitNull},
		next:         1,
	}
}

func (vs *Vars) alloc() Var {
	if n := len(vs.free); n > 0 {
		v := vs.free[n-1]
		vs.free = vs.free[:n-1]
		return v
	}
	v := vs.next
	vs.next++
	vs.innerToOuter = append(vs.innerToOuter, LitNull)
	return v
}

// ToInner maps an outer literal to its inner literal, allocating a new
// inner variable for the outer variable's first occurrence. The mapping
// is stable: repeated calls with the same outer variable return literals
// of the same inner variable.
func (vs *Vars) ToInner(m Lit) Lit {
	ov := m.Var().Pos()
	inner, ok := vs.outerToInner[ov]
	if !ok {
		v := vs.alloc()
		inner = v.Pos()
		vs.outerToInner[ov] = inner
		vs.innerToOuter[v] = ov
	}
	if m.IsPos() {
		return inner
	}
	return inner.Not()
}

// ToOuter is the inverse of ToInner for variables that were mapped
// through it. Behavior is undefined for inner literals returned by Inner.
func (vs *Vars) ToOuter(m Lit) Lit {
	ov := vs.innerToOuter[m.Var()]
	if m.IsPos() {
		return ov
	}
	return ov.Not()
}

// Inner allocates and returns the positive literal of a fresh inner
// variable with no outer counterpart.
func (vs *Vars) Inner() Lit {
	v := vs.alloc()
	vs.innerToOuter[v] = LitNull
	return v.Pos()
}

// Free releases an inner variable previously returned by Inner for reuse.
// Freeing a variable obtained through ToInner is undefined.
func (vs *Vars) Free(m Lit) {
	v := m.Var()
	vs.innerToOuter[v] = LitNull
	vs.free = append(vs.free, v)
}

// Len returns the number of inner variables currently allocated
// (including freed ones, which retain their slot for reuse).
func (vs *Vars) Len() int {
	return len(vs.innerToOuter) - 1
}

// String implements fmt.Stringer.
func (vs *Vars) String() string {
	return fmt.Sprintf("vars(n=%d, free=%d)", vs.Len(), len(vs.free))
}
