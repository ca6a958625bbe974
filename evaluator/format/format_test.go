//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

package format

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

func TestFormatEvaluator_InvalidJSON(t *testing.T) {
	ev := newTestEvaluator()
	result, err := ev.Evaluate(context.Background(), "not json", nil)
	require.NoError(t, err)
	assert.Equal(t, dimension.Format, result.Dimension)
	assert.Zero(t, result.Score)
	assert.Equal(t, status.EvalStatusFail, result.Status)
	assert.Equal(t, false, result.Details["isValidJSON"])
}

func TestFormatEvaluator_WellFormedRoadmap(t *testing.T) {
	ev := newTestEvaluator()
	roadmap := map[string]any{
		"title":       "Cloud Migration Roadmap",
		"timeColumns": []any{"Q1", "Q2"},
		"data":        []any{},
	}
	result, err := ev.Evaluate(context.Background(), roadmap, &evaluator.Context{ContentType: "roadmap"})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
	assert.Equal(t, status.EvalStatusPass, result.Status)
	assert.Equal(t, "output is well-formed", result.Message)
}

func TestFormatEvaluator_MissingStructuralFields(t *testing.T) {
	ev := newTestEvaluator()
	result, err := ev.Evaluate(context.Background(),
		map[string]any{"title": "X"}, &evaluator.Context{ContentType: "roadmap"})
	require.NoError(t, err)
	// 0.3 baseline + 0.35 schema - 0.1 per missing field (timeColumns, data).
	assert.InDelta(t, 0.45, result.Score, 1e-9)
	assert.Equal(t, status.EvalStatusPartial, result.Status)
	issues, ok := result.Details["issues"].([]string)
	require.True(t, ok)
	assert.Len(t, issues, 2)
}

func TestFormatEvaluator_SchemaViolation(t *testing.T) {
	ev := newTestEvaluator()
	result, err := ev.Evaluate(context.Background(),
		map[string]any{"title": "X"},
		&evaluator.Context{Schema: &evaluator.Schema{Type: "object", Required: []string{"title", "owner"}}})
	require.NoError(t, err)
	// 0.3 baseline + 0.35 structure - 0.1 for the missing required field.
	assert.InDelta(t, 0.55, result.Score, 1e-9)
	assert.Equal(t, false, result.Details["schemaPassed"])
}

func TestFormatEvaluator_SchemaTypeMismatch(t *testing.T) {
	ev := newTestEvaluator()
	result, err := ev.Evaluate(context.Background(),
		[]any{"a", "b"},
		&evaluator.Context{Schema: &evaluator.Schema{Type: "object"}})
	require.NoError(t, err)
	assert.Equal(t, false, result.Details["schemaPassed"])
	issues, ok := result.Details["issues"].([]string)
	require.True(t, ok)
	assert.Contains(t, issues[0], "expected top-level type object")
}

func TestFormatEvaluator_ValidJSONStringScalar(t *testing.T) {
	ev := newTestEvaluator()
	result, err := ev.Evaluate(context.Background(), `{"title":"X"}`, nil)
	require.NoError(t, err)
	assert.Equal(t, true, result.Details["isValidJSON"])
	assert.InDelta(t, 1.0, result.Score, 1e-9)
}
