// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package hashkernel

import "testing"

func TestCombineIsCommutative(t *testing.T) {
	var a, b uint64
	Combine(&a, 5)
	Combine(&a, 9)
	Combine(&b, 9)
	Combine(&b, 5)
	if a != b {
		t.Fatalf("Combine order-dependent: %d vs %d", a, b)
	}
}

func TestCombineWithZeroIsIdentity(t *testing.T) {
	var a uint64 = 42
	Combine(&a, 0)
	if a != 42 {
		t.Fatalf("Combine(_, 0) changed value to %d", a)
	}
}

func TestCombineDuplicateIsNotIdentity(t *testing.T) {
	var a uint64
	Combine(&a, 7)
	Combine(&a, 7)
	if a == 0 {
		t.Fatal("combining a value with itself collapsed to zero")
	}
}

func TestHashPairOrderMatters(t *testing.T) {
	if HashPair(1, 2) == HashPair(2, 1) {
		t.Fatal("expected HashPair to be order-sensitive")
	}
}
