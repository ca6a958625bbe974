//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

// Package evalengine scores generated artifacts (roadmaps, slide decks,
// documents) along independent quality dimensions and aggregates the results
// into one verdict. The engine is a pure library: it never calls the network,
// never persists anything, and never renders anything.
//
// Most callers only need EvaluateOutput. Callers that want an isolated
// configuration (a stricter gate for financial content, say) should construct
// their own composite.Evaluator instead of relying on the shared default.
package evalengine

import (
	"context"
	"sync"

	"github.com/draftforge/evalengine/composite"
	"github.com/draftforge/evalengine/evalresult"
	"github.com/draftforge/evalengine/evaluator"
)

var (
	defaultMu        sync.Mutex
	defaultEvaluator *composite.Evaluator
)

// Default returns the process-wide composite evaluator, creating it on first
// use. Options only take effect on the call that constructs the instance;
// later calls return the existing one unchanged.
func Default(opt ...evaluator.Option) (*composite.Evaluator, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultEvaluator != nil {
		return defaultEvaluator, nil
	}
	e, err := composite.New(evaluator.NewConfig(opt...))
	if err != nil {
		return nil, err
	}
	defaultEvaluator = e
	return defaultEvaluator, nil
}

// Reset discards the process-wide evaluator so the next Default call builds a
// fresh one. Intended for test isolation between scenarios.
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultEvaluator != nil {
		defaultEvaluator.Close()
		defaultEvaluator = nil
	}
}

// EvaluateOutput scores output against the optional reference context using
// the process-wide default evaluator.
func EvaluateOutput(ctx context.Context, output any, evalCtx *evaluator.Context) (*evalresult.Verdict, error) {
	e, err := Default()
	if err != nil {
		return nil, err
	}
	return e.Evaluate(ctx, output, evalCtx)
}
