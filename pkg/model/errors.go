package model

import "errors"

// User-visible errors, per spec §7. ConstraintViolation and UnifyError are
// internal signals caught inside the engine (pkg/context, pkg/kernel) and
// never escape as a Disambiguate return value.

// ErrInvalidWeights is returned when Weights.Validate fails the simplex
// constraint: any weight outside [0,1], or the three not summing to 1
// within 1e-9.
var ErrInvalidWeights = errors.New("disambiguator: weights fail the simplex constraint")

// ErrTargetOutOfRange is returned when the caller's target index does not
// name a position within the sentence.
var ErrTargetOutOfRange = errors.New("disambiguator: target index out of range")

// ErrNoCandidates is returned when candidate generation produced an empty
// set for the target token.
var ErrNoCandidates = errors.New("disambiguator: no candidates generated for target")
