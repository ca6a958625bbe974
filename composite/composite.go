//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

// Package composite runs every configured dimension evaluator over one
// artifact and aggregates the results into a single verdict.
package composite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/draftforge/evalengine/dimension"
	"github.com/draftforge/evalengine/evalresult"
	"github.com/draftforge/evalengine/evaluator"
	"github.com/draftforge/evalengine/evaluator/registry"
	"github.com/draftforge/evalengine/log"
	"github.com/draftforge/evalengine/status"
)

// Evaluator fans one evaluate call out to every configured dimension and
// folds the per-dimension results into a verdict. Instances are immutable
// after construction apart from explicit SetEvaluator calls.
type Evaluator struct {
	cfg      evaluator.Config
	registry registry.Registry
	pool     *dimensionPool
}

// New creates a composite evaluator with the built-in dimension evaluators.
func New(cfg evaluator.Config) (*Evaluator, error) {
	if len(cfg.Dimensions) == 0 {
		cfg.Dimensions = dimension.All()
	}
	if cfg.PassingThreshold == 0 {
		cfg.PassingThreshold = evaluator.DefaultPassingThreshold
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("composite evaluator config: %w", err)
	}
	e := &Evaluator{
		cfg:      cfg,
		registry: registry.New(cfg),
	}
	if cfg.Parallelism > 1 {
		pool, err := newDimensionPool(cfg.Parallelism)
		if err != nil {
			return nil, fmt.Errorf("create dimension pool: %w", err)
		}
		e.pool = pool
	}
	return e, nil
}

// Config returns the configuration the evaluator was built with.
func (e *Evaluator) Config() evaluator.Config {
	return e.cfg
}

// SetEvaluator replaces or adds the strategy for one dimension. This is the
// engine's sole extension point; it must not be called concurrently with
// Evaluate.
func (e *Evaluator) SetEvaluator(dim dimension.Dimension, ev evaluator.Evaluator) error {
	return e.registry.Register(dim, ev)
}

// Close releases the dimension pool, if any.
func (e *Evaluator) Close() error {
	if e.pool != nil {
		e.pool.release()
	}
	return nil
}

// Evaluate scores the output on every configured dimension and aggregates
// the results. Evaluator failures never abort sibling dimensions; they
// surface as error-status results with score zero.
func (e *Evaluator) Evaluate(ctx context.Context, output any, evalCtx *evaluator.Context) (*evalresult.Verdict, error) {
	dims := e.cfg.Dimensions
	results := make([]*evalresult.EvalResult, len(dims))
	run := func(i int) {
		results[i] = e.evaluateDimension(ctx, dims[i], output, evalCtx)
	}
	if e.pool != nil {
		e.pool.runAll(len(dims), run)
	} else {
		for i := range dims {
			run(i)
		}
	}
	return e.aggregate(dims, results), nil
}

// evaluateDimension runs one dimension, converting missing registrations to
// skip results and failures (errors or panics) to error results.
func (e *Evaluator) evaluateDimension(ctx context.Context, dim dimension.Dimension, output any, evalCtx *evaluator.Context) (result *evalresult.EvalResult) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("evaluator for dimension %s panicked: %v", dim, rec)
			result = evalresult.Errored(dim, fmt.Errorf("%v", rec))
		}
	}()
	ev, err := e.registry.Get(dim)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debugf("dimension %s has no registered evaluator, skipping", dim)
			return evalresult.Skipped(dim, fmt.Sprintf("no evaluator registered for dimension %s", dim))
		}
		return evalresult.Errored(dim, err)
	}
	res, err := ev.Evaluate(ctx, output, evalCtx)
	if err != nil {
		log.Warnf("evaluator for dimension %s failed: %v", dim, err)
		return evalresult.Errored(dim, err)
	}
	if res == nil {
		return evalresult.Errored(dim, errors.New("evaluator returned no result"))
	}
	if res.Dimension == "" {
		res.Dimension = dim
	}
	clampResult(res)
	return res
}

// clampResult keeps score and confidence inside [0, 1] whatever a custom
// evaluator returns.
func clampResult(r *evalresult.EvalResult) {
	if r.Score < 0 {
		r.Score = 0
	}
	if r.Score > 1 {
		r.Score = 1
	}
	if r.Confidence < 0 {
		r.Confidence = 0
	}
	if r.Confidence > 1 {
		r.Confidence = 1
	}
}

// aggregate folds the ordered per-dimension results into a verdict.
// Skip results are reported but excluded from the score mean and the status
// policy; error results score zero and aggregate like failures.
func (e *Evaluator) aggregate(dims []dimension.Dimension, results []*evalresult.EvalResult) *evalresult.Verdict {
	verdict := &evalresult.Verdict{
		VerdictID: uuid.NewString(),
		Results:   make(map[dimension.Dimension]*evalresult.EvalResult, len(results)),
		Timestamp: time.Now().UTC(),
	}
	type scored struct {
		index int
		score float64
	}
	scoredResults := make([]scored, 0, len(results))
	var total float64
	anyFailed, anyPartial := false, false
	for i, r := range results {
		verdict.Results[r.Dimension] = r
		switch r.Status {
		case status.EvalStatusPass:
			verdict.Summary.Passed++
		case status.EvalStatusFail:
			verdict.Summary.Failed++
			anyFailed = true
		case status.EvalStatusPartial:
			verdict.Summary.Partial++
			anyPartial = true
		case status.EvalStatusSkip:
			verdict.Summary.Skipped++
			continue
		case status.EvalStatusError:
			verdict.Summary.Errored++
			anyFailed = true
		}
		scoredResults = append(scoredResults, scored{index: i, score: r.Score})
		total += r.Score
	}
	if len(scoredResults) == 0 {
		verdict.OverallStatus = status.EvalStatusSkip
		return verdict
	}
	verdict.OverallScore = total / float64(len(scoredResults))
	switch {
	case anyFailed && e.cfg.StrictMode:
		verdict.OverallStatus = status.EvalStatusFail
	case anyFailed || anyPartial:
		verdict.OverallStatus = status.EvalStatusPartial
	default:
		verdict.OverallStatus = status.EvalStatusPass
	}
	verdict.Passed = verdict.OverallStatus == status.EvalStatusPass
	sort.SliceStable(scoredResults, func(i, j int) bool {
		if scoredResults[i].score != scoredResults[j].score {
			return scoredResults[i].score < scoredResults[j].score
		}
		return scoredResults[i].index < scoredResults[j].index
	})
	lowest := len(scoredResults)
	if lowest > 2 {
		lowest = 2
	}
	for _, s := range scoredResults[:lowest] {
		verdict.Summary.LowestDimensions = append(verdict.Summary.LowestDimensions, dims[s.index])
	}
	return verdict
}
