//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

// Package status provides the status of an evaluation.
package status

// EvalStatus classifies the outcome of a single dimension evaluation.
type EvalStatus int

const (
	// EvalStatusUnknown represents an unknown evaluation status.
	EvalStatusUnknown EvalStatus = iota
	// EvalStatusPass represents a passed evaluation.
	EvalStatusPass
	// EvalStatusFail represents a failed evaluation.
	EvalStatusFail
	// EvalStatusPartial represents a score between the failing and passing bands.
	EvalStatusPartial
	// EvalStatusSkip represents a dimension that was requested but not evaluated.
	EvalStatusSkip
	// EvalStatusError represents an evaluator that errored while running.
	EvalStatusError
)

// String returns the string representation of the evaluation status.
func (s EvalStatus) String() string {
	switch s {
	case EvalStatusPass:
		return "pass"
	case EvalStatusFail:
		return "fail"
	case EvalStatusPartial:
		return "partial"
	case EvalStatusSkip:
		return "skip"
	case EvalStatusError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so statuses serialize by name.
func (s EvalStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *EvalStatus) UnmarshalText(b []byte) error {
	switch string(b) {
	case "pass":
		*s = EvalStatusPass
	case "fail":
		*s = EvalStatusFail
	case "partial":
		*s = EvalStatusPartial
	case "skip":
		*s = EvalStatusSkip
	case "error":
		*s = EvalStatusError
	default:
		*s = EvalStatusUnknown
	}
	return nil
}
