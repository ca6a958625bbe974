//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

// Package evalresult provides the value types produced by evaluation.
package evalresult

import (
	"time"

	"github.com/draftforge/evalengine/dimension"
	"github.com/draftforge/evalengine/status"
)

// EvalResult is the verdict of a single dimension evaluator. Results are
// created fresh on every evaluate call and never mutated afterwards.
type EvalResult struct {
	// Dimension identifies the capability that produced this result.
	Dimension dimension.Dimension `json:"dimension"`
	// Status is the pass/fail/partial bucket derived from Score vs. threshold.
	Status status.EvalStatus `json:"status"`
	// Score is the continuous quality signal in [0, 1].
	Score float64 `json:"score"`
	// Message is a human-readable summary of the result.
	Message string `json:"message,omitempty"`
	// Details carries evaluator-specific diagnostics (counts, lists, sub-scores).
	Details map[string]any `json:"details,omitempty"`
	// Confidence in [0, 1] reports how much to trust this verdict.
	// It drops when reference material is missing.
	Confidence float64 `json:"confidence"`
	// Timestamp records when the result was generated (RFC 3339 in JSON).
	Timestamp time.Time `json:"timestamp"`
}

// New creates an EvalResult stamped with the current time.
func New(dim dimension.Dimension, st status.EvalStatus, score float64) *EvalResult {
	return &EvalResult{
		Dimension:  dim,
		Status:     st,
		Score:      score,
		Confidence: 1.0,
		Timestamp:  time.Now().UTC(),
	}
}

// Skipped creates a skip result for a dimension that has no registered
// evaluator. Skip results carry no score signal.
func Skipped(dim dimension.Dimension, message string) *EvalResult {
	r := New(dim, status.EvalStatusSkip, 0)
	r.Confidence = 0
	r.Message = message
	return r
}

// Errored creates an error result for an evaluator that failed while running.
func Errored(dim dimension.Dimension, err error) *EvalResult {
	r := New(dim, status.EvalStatusError, 0)
	r.Confidence = 0
	r.Message = "Evaluation error: " + err.Error()
	return r
}
