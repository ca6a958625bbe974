//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalStatus_String(t *testing.T) {
	assert.Equal(t, "pass", EvalStatusPass.String())
	assert.Equal(t, "fail", EvalStatusFail.String())
	assert.Equal(t, "partial", EvalStatusPartial.String())
	assert.Equal(t, "skip", EvalStatusSkip.String())
	assert.Equal(t, "error", EvalStatusError.String())
	assert.Equal(t, "unknown", EvalStatusUnknown.String())
	assert.Equal(t, "unknown", EvalStatus(42).String())
}

func TestEvalStatus_TextRoundTrip(t *testing.T) {
	for _, s := range []EvalStatus{EvalStatusPass, EvalStatusFail, EvalStatusPartial, EvalStatusSkip, EvalStatusError} {
		b, err := s.MarshalText()
		require.NoError(t, err)
		var decoded EvalStatus
		require.NoError(t, decoded.UnmarshalText(b))
		assert.Equal(t, s, decoded)
	}
	var decoded EvalStatus
	require.NoError(t, decoded.UnmarshalText([]byte("bogus")))
	assert.Equal(t, EvalStatusUnknown, decoded)
}
