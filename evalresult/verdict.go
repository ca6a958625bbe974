//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

package evalresult

import (
	"time"

	"github.com/draftforge/evalengine/dimension"
	"github.com/draftforge/evalengine/status"
)

// Verdict is the aggregated multi-dimension evaluation returned to the caller.
type Verdict struct {
	// VerdictID uniquely identifies this verdict.
	VerdictID string `json:"verdictId,omitempty"`
	// OverallStatus summarizes all dimension statuses under the aggregation policy.
	OverallStatus status.EvalStatus `json:"overallStatus"`
	// OverallScore is the arithmetic mean of the scored dimension results.
	OverallScore float64 `json:"overallScore"`
	// Passed reports whether OverallStatus is pass.
	Passed bool `json:"passed"`
	// Results maps each evaluated dimension to its result.
	Results map[dimension.Dimension]*EvalResult `json:"results"`
	// Summary aggregates status counts and points at the weakest dimensions.
	Summary Summary `json:"summary"`
	// Timestamp records when the verdict was assembled.
	Timestamp time.Time `json:"timestamp"`
}

// Summary aggregates the per-dimension outcomes of one verdict.
type Summary struct {
	// Passed counts dimensions with pass status.
	Passed int `json:"passed"`
	// Failed counts dimensions with fail status.
	Failed int `json:"failed"`
	// Partial counts dimensions with partial status.
	Partial int `json:"partial"`
	// Skipped counts dimensions that had no registered evaluator.
	Skipped int `json:"skipped"`
	// Errored counts dimensions whose evaluator failed while running.
	Errored int `json:"errored"`
	// LowestDimensions lists the two lowest-scoring dimensions, ties broken by
	// the configured dimension order.
	LowestDimensions []dimension.Dimension `json:"lowestDimensions,omitempty"`
}
