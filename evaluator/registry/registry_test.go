//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

package registry

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftforge/evalengine/dimension"
	"github.com/draftforge/evalengine/evalresult"
	"github.com/draftforge/evalengine/evaluator"
)

type stubEvaluator struct {
	dim dimension.Dimension
}

func (s *stubEvaluator) Dimension() dimension.Dimension { return s.dim }
func (s *stubEvaluator) Description() string            { return "stub" }
func (s *stubEvaluator) Evaluate(context.Context, any, *evaluator.Context) (*evalresult.EvalResult, error) {
	return evalresult.New(s.dim, 0, 1), nil
}

func TestNew_RegistersBuiltins(t *testing.T) {
	r := New(evaluator.NewConfig())
	for _, dim := range dimension.All() {
		e, err := r.Get(dim)
		require.NoError(t, err)
		assert.Equal(t, dim, e.Dimension())
	}
}

func TestGet_UnknownDimension(t *testing.T) {
	r := NewEmpty()
	_, err := r.Get("coherence")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRegister_Validation(t *testing.T) {
	r := NewEmpty()
	require.Error(t, r.Register(dimension.Format, nil))
	require.Error(t, r.Register("", &stubEvaluator{}))
	require.NoError(t, r.Register("", &stubEvaluator{dim: "custom"}))
	e, err := r.Get("custom")
	require.NoError(t, err)
	assert.Equal(t, dimension.Dimension("custom"), e.Dimension())
}

func TestRegister_OverwritesExisting(t *testing.T) {
	r := New(evaluator.NewConfig())
	replacement := &stubEvaluator{dim: dimension.Format}
	require.NoError(t, r.Register(dimension.Format, replacement))
	e, err := r.Get(dimension.Format)
	require.NoError(t, err)
	assert.Same(t, replacement, e)
}

func TestUnregisterAndList(t *testing.T) {
	r := New(evaluator.NewConfig())
	r.Unregister(dimension.Format)
	_, err := r.Get(dimension.Format)
	assert.ErrorIs(t, err, os.ErrNotExist)
	dims := r.List()
	assert.Equal(t, []dimension.Dimension{
		dimension.Completeness, dimension.Consistency, dimension.Correctness, dimension.Relevance,
	}, dims)
}
