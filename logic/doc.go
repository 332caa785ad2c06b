// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package logic builds combinational and-inverter circuits (type C) and
// Tseitin-encodes them into CNF via ToCnf/ToCnfFrom. Circuits built here
// have a known gate structure by construction, which makes them useful
// fixtures for exercising package gate's recognition against ground
// truth, and cardinality constraints (CardSort) over sorting networks.
package logic
