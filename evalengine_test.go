//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

package evalengine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftforge/evalengine/evaluator"
	"github.com/draftforge/evalengine/status"
)

func TestDefault_ReturnsSharedInstance(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	first, err := Default()
	require.NoError(t, err)
	second, err := Default()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestDefault_OptionsOnlyApplyOnFirstUse(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	first, err := Default(evaluator.WithStrictMode(true))
	require.NoError(t, err)
	assert.True(t, first.Config().StrictMode)
	second, err := Default(evaluator.WithStrictMode(false))
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.True(t, second.Config().StrictMode)
}

func TestReset_DiscardsSharedInstance(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	first, err := Default()
	require.NoError(t, err)
	Reset()
	second, err := Default()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestEvaluateOutput_EndToEnd(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	roadmap := map[string]any{
		"title":       "Cloud Migration Roadmap",
		"timeColumns": []any{"Q1", "Q2"},
		"data":        []any{map[string]any{"label": "Infrastructure"}},
	}
	verdict, err := EvaluateOutput(context.Background(), roadmap, &evaluator.Context{
		ContentType: "roadmap",
		UserPrompt:  "Create a cloud migration roadmap",
	})
	require.NoError(t, err)
	require.Len(t, verdict.Results, 5)
	assert.NotEqual(t, status.EvalStatusUnknown, verdict.OverallStatus)
	assert.GreaterOrEqual(t, verdict.OverallScore, 0.0)
	assert.LessOrEqual(t, verdict.OverallScore, 1.0)
	assert.NotEmpty(t, verdict.VerdictID)
}
