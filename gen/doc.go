// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators for common kinds of formulas: random
// k-CNFs, pigeonhole and partition/Pythagorean-triple encodings, and
// random graph coloring instances. It targets inter.Adder so callers can
// stream a generated formula straight into a cnf.Builder.
package gen
