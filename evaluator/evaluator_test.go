//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draftforge/evalengine/status"
)

func TestStatusForScore_Bands(t *testing.T) {
	tests := []struct {
		name      string
		score     float64
		threshold float64
		want      status.EvalStatus
	}{
		{name: "at threshold passes", score: 0.7, threshold: 0.7, want: status.EvalStatusPass},
		{name: "above threshold passes", score: 0.95, threshold: 0.7, want: status.EvalStatusPass},
		{name: "half threshold is partial", score: 0.35, threshold: 0.7, want: status.EvalStatusPartial},
		{name: "between bands is partial", score: 0.5, threshold: 0.7, want: status.EvalStatusPartial},
		{name: "below half threshold fails", score: 0.34, threshold: 0.7, want: status.EvalStatusFail},
		{name: "zero fails", score: 0, threshold: 0.7, want: status.EvalStatusFail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForScore(tt.score, tt.threshold))
		})
	}
}

func TestOutputText(t *testing.T) {
	assert.Equal(t, "plain text", OutputText("plain text"))
	assert.Equal(t, `{"title":"X"}`, OutputText(map[string]any{"title": "X"}))
	assert.Equal(t, "", OutputText(func() {}))
}

func TestOutputJSON(t *testing.T) {
	raw, ok := OutputJSON("not json")
	assert.True(t, ok)
	assert.Equal(t, "not json", raw)

	raw, ok = OutputJSON(map[string]any{"a": 1})
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, raw)

	_, ok = OutputJSON(func() {})
	assert.False(t, ok)
}
