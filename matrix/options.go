// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the factorization facades.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state; every factorization receives its own tolerance.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - FactorLU / FactorLDLT take the tolerance as a plain argument. The Matrix
//     facades (LU, LDLT, Det, Solve) resolve it from options, falling back to
//     DefaultPivotTol / DefaultSingularTol for the respective engine.
//   - Tolerance defaults are tied to float64 precision.
//   - A facade call without options does not touch the heap; each call with
//     options pays one allocation for the configuration value.
package matrix

import (
	"io"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTol is the absolute pivot tolerance used by LU singularity detection.
	// Conservative for geometric predicates and small systems.
	DefaultPivotTol = 1e-12

	// DefaultSingularTol is the diagonal tolerance used by LDLT singularity detection.
	DefaultSingularTol = 1e-12

	// DefaultEpsilon is the relative tolerance used by the opt-in symmetry check.
	DefaultEpsilon = 1e-12

	// DefaultSymmetryCheck keeps the LDLT "trust the caller" contract.
	DefaultSymmetryCheck = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "matrix: WithTolerance: tol must be finite, non-negative"
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicLoggerNil        = "matrix: WithLogger: logger must not be nil"
)

// noTol marks "no explicit tolerance"; the engine default applies.
const noTol = -1.0

// discardLogger swallows every record; it is the default facade logger.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
	Level: slog.Level(1000), // unreachable level
}))

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol           float64 // noTol => engine default
	eps           float64 // DefaultEpsilon
	checkSymmetry bool    // DefaultSymmetryCheck
	logger        *slog.Logger
}

// ---------- Constructors (WithX) ----------

// WithTolerance overrides the pivot tolerance of a single factorization call.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Inputs:
//   - tol: non-negative finite tolerance; 0 means "only exact zeros are singular".
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Notes:
//   - Applies to whichever engine the facade runs (LU or LDLT).
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithEpsilon sets the relative epsilon used by the symmetry check.
// The check compares |a[r][c]-a[c][r]| against eps*max(1, ‖A‖∞).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSymmetryCheck makes LDLT validate symmetry before factoring.
// Without it the engine reads only the lower triangle and never looks at the upper one.
func WithSymmetryCheck() Option {
	return func(o *Options) { o.checkSymmetry = true }
}

// WithLogger routes facade diagnostics (factorization failures at Debug level) to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// defaultOptions is the configuration of a facade call without options.
var defaultOptions = Options{
	tol:           noTol,
	eps:           DefaultEpsilon,
	checkSymmetry: DefaultSymmetryCheck,
	logger:        discardLogger,
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last writer wins.
// Without setters it returns a copy of defaultOptions and allocates nothing;
// with setters the working value escapes through the closures (one allocation).
func gatherOptions(user ...Option) Options {
	if len(user) == 0 {
		return defaultOptions
	}

	o := defaultOptions
	for _, set := range user {
		set(&o)
	}

	return o
}

// tolOr returns the configured tolerance or def when none was set.
func (o *Options) tolOr(def float64) float64 {
	if o.tol == noTol {
		return def
	}

	return o.tol
}
