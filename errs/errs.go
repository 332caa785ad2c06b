// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package errs holds the small set of named, enumerable error kinds this
// module surfaces (spec.md's "Error handling design"), so callers can
// distinguish them with errors.Is instead of matching on message text.
package errs

import "errors"

var (
	// ErrIO marks an open/read/write failure. Fatal to the current call.
	ErrIO = errors.New("i/o error")

	// ErrResourceLimit marks a time, memory, or output-size limit
	// exceeded. Fatal; callers should treat any owned resources as
	// unwound.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrSolverUnavailable marks a failure to initialize the semantic
	// gate oracle. Recoverable by falling back to pattern-only gate
	// recognition when patterns are enabled; otherwise fatal.
	ErrSolverUnavailable = errors.New("semantic solver unavailable")

	// ErrInternal marks an invariant violation: a bug, not a caller
	// mistake.
	ErrInternal = errors.New("internal invariant violation")
)
