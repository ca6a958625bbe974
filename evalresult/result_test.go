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
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftforge/evalengine/dimension"
	"github.com/draftforge/evalengine/status"
)

func TestNew_DefaultsToFullConfidence(t *testing.T) {
	r := New(dimension.Format, status.EvalStatusPass, 0.9)
	assert.Equal(t, dimension.Format, r.Dimension)
	assert.Equal(t, status.EvalStatusPass, r.Status)
	assert.InDelta(t, 0.9, r.Score, 1e-9)
	assert.InDelta(t, 1.0, r.Confidence, 1e-9)
	assert.False(t, r.Timestamp.IsZero())
}

func TestSkipped(t *testing.T) {
	r := Skipped(dimension.Relevance, "no evaluator registered")
	assert.Equal(t, status.EvalStatusSkip, r.Status)
	assert.Zero(t, r.Score)
	assert.Zero(t, r.Confidence)
	assert.Equal(t, "no evaluator registered", r.Message)
}

func TestErrored(t *testing.T) {
	r := Errored(dimension.Correctness, errors.New("boom"))
	assert.Equal(t, status.EvalStatusError, r.Status)
	assert.Zero(t, r.Score)
	assert.Zero(t, r.Confidence)
	assert.Equal(t, "Evaluation error: boom", r.Message)
}

func TestEvalResult_JSONStatusByName(t *testing.T) {
	r := New(dimension.Consistency, status.EvalStatusPartial, 0.5)
	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"status":"partial"`)
	assert.Contains(t, string(b), `"dimension":"consistency"`)
}
