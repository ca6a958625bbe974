//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

package correctness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftforge/evalengine/dimension"
	"github.com/draftforge/evalengine/evaluator"
	"github.com/draftforge/evalengine/status"
)

func newTestEvaluator() evaluator.Evaluator {
	return New(evaluator.NewConfig())
}

func TestCorrectnessEvaluator_NoClaims(t *testing.T) {
	ev := newTestEvaluator()
	result, err := ev.Evaluate(context.Background(), "Hello there.", &evaluator.Context{GroundTruth: "anything"})
	require.NoError(t, err)
	assert.Equal(t, dimension.Correctness, result.Dimension)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
	assert.InDelta(t, 0.5, result.Confidence, 1e-9)
	assert.Equal(t, "no claims to verify", result.Message)
	assert.Equal(t, status.EvalStatusPass, result.Status)
}

func TestCorrectnessEvaluator_NoReferenceMaterial(t *testing.T) {
	ev := newTestEvaluator()
	result, err := ev.Evaluate(context.Background(),
		"Revenue will grow by 25% in 2025 across all regions.", nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, result.Score, 1e-9)
	assert.InDelta(t, 0.3, result.Confidence, 1e-9)
	assert.Equal(t, 1, result.Details["claimsFound"])
}

func TestCorrectnessEvaluator_VerifiedClaim(t *testing.T) {
	ev := newTestEvaluator()
	result, err := ev.Evaluate(context.Background(),
		"The company revenue increased by 25% in 2024.",
		&evaluator.Context{GroundTruth: "In 2024 the company revenue increased by 25 percent."})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
	assert.InDelta(t, 0.8, result.Confidence, 1e-9)
	assert.Equal(t, status.EvalStatusPass, result.Status)
	assert.Equal(t, 1, result.Details["verified"])
}

func TestCorrectnessEvaluator_ContradictedClaim(t *testing.T) {
	ev := newTestEvaluator()
	result, err := ev.Evaluate(context.Background(),
		"Revenue increased sharply during 2024 fiscal year.",
		&evaluator.Context{GroundTruth: "Annual revenue decreased in the 2024 fiscal period according to the audited filings."})
	require.NoError(t, err)
	assert.Zero(t, result.Score)
	assert.Equal(t, status.EvalStatusFail, result.Status)
	contradictions, ok := result.Details["contradictions"].([]string)
	require.True(t, ok)
	assert.Len(t, contradictions, 1)
}

func TestCorrectnessEvaluator_SourceFilesAsReference(t *testing.T) {
	ev := newTestEvaluator()
	result, err := ev.Evaluate(context.Background(),
		"The company revenue increased by 25% in 2024.",
		&evaluator.Context{SourceFiles: []string{"In 2024 the company revenue increased by 25 percent."}})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
}

func TestCorrectnessEvaluator_Determinism(t *testing.T) {
	ev := newTestEvaluator()
	evalCtx := &evaluator.Context{GroundTruth: "Annual revenue decreased in the 2024 fiscal period."}
	first, err := ev.Evaluate(context.Background(), "Revenue increased sharply during 2024 fiscal year.", evalCtx)
	require.NoError(t, err)
	second, err := ev.Evaluate(context.Background(), "Revenue increased sharply during 2024 fiscal year.", evalCtx)
	require.NoError(t, err)
	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Details, second.Details)
}
