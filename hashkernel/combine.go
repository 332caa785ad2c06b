// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package hashkernel provides the commutative 64-bit combiner and
// non-cryptographic hash primitives the WL refinement (package wl)
// builds on, plus the MD5-based GBD hash.
package hashkernel

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Combine folds in into the running sum *acc by carrying addition: the
// carry out of bit 63 is fed back into bit 0. It is commutative and
// associative (the multiset of combined values determines the result,
// not their order), combining with zero is the identity, and combining
// a value with itself accumulates rather than canceling, unlike XOR.
func Combine(acc *uint64, in uint64) {
	sum := *acc + in
	if sum < in {
		sum++
	}
	*acc = sum
}

// HashUint64 hashes a single 64-bit value through the non-cryptographic
// kernel (xxhash), breaking any structure a raw accumulated color might
// otherwise carry (e.g. so a unit clause's sum doesn't collide with a
// literal's raw initial color).
func HashUint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxhash.Sum64(buf[:])
}

// HashPair hashes the ordered pair (a, b) as one value — used to couple
// a literal's color to its complement's (cross-referencing) and to
// canonicalize a variable's (positive, negative) color pair. Not
// commutative in a and b: callers that need a canonical, order-independent
// hash of a pair must sort the pair before calling.
func HashPair(a, b uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], a)
	binary.LittleEndian.PutUint64(buf[8:], b)
	return xxhash.Sum64(buf[:])
}

// HashInt hashes a small non-negative integer (e.g. a clause length)
// through the same kernel as HashUint64.
func HashInt(n int) uint64 {
	return HashUint64(uint64(n))
}
