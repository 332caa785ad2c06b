// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package feature reduces a CNF (and, for gate features, its recovered
// gate structure) to a flat set of named statistics, matching the
// library surface spec.md §6 names as extract_base_features and
// extract_gate_features. The specifics of which statistics are
// produced are explicitly out of core scope; this is a minimal,
// grounded starting set built from what package cnf and package gate
// already expose.
package feature

import (
	"github.com/TimonPasslick/gbdc/cnf"
	"github.com/TimonPasslick/gbdc/dimacs"
	"github.com/TimonPasslick/gbdc/gate"
)

// ExtractBase reads path and reduces it to CNF-level statistics: no
// gate recognition is performed.
func ExtractBase(path string) (map[string]float64, error) {
	f, err := dimacs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return baseFeatures(f), nil
}

// ExtractGate reads path, runs gate recognition with patterns and the
// semantic oracle both enabled and a single pass (spec.md §6's fixed
// `patterns=true, semantic=true, tries=1`), and reduces the result to
// base CNF statistics plus gate statistics.
func ExtractGate(path string) (map[string]float64, error) {
	f, err := dimacs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stats := baseFeatures(f)

	gf, err := gate.Analyze(f, gate.Options{Patterns: true, Semantic: true, Tries: 1})
	if err != nil {
		return nil, err
	}
	nGates, nMonotonic, nRoots := gf.Stats()
	stats["gates"] = float64(nGates)
	stats["gatesMonotonic"] = float64(nMonotonic)
	stats["gatesNonMonotonic"] = float64(nGates - nMonotonic)
	stats["roots"] = float64(nRoots)
	stats["remainderClauses"] = float64(len(gf.Remainder()))
	if f.NClauses() > 0 {
		stats["remainderRatio"] = float64(len(gf.Remainder())) / float64(f.NClauses())
	}
	return stats, nil
}

func baseFeatures(f *cnf.Formula) map[string]float64 {
	stats := map[string]float64{
		"variables": float64(f.NVars()),
		"clauses":   float64(f.NClauses()),
	}
	if f.NClauses() == 0 {
		return stats
	}
	minLen, maxLen := -1, 0
	var totalLen int
	for _, id := range f.ClauseIDs() {
		n := len(f.Clause(id))
		totalLen += n
		if minLen == -1 || n < minLen {
			minLen = n
		}
		if n > maxLen {
			maxLen = n
		}
	}
	stats["minClauseLength"] = float64(minLen)
	stats["maxClauseLength"] = float64(maxLen)
	stats["avgClauseLength"] = float64(totalLen) / float64(f.NClauses())
	if f.NVars() > 0 {
		stats["clauseToVariableRatio"] = float64(f.NClauses()) / float64(f.NVars())
	}
	return stats
}
