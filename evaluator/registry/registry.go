//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

// Package registry manages the registration and retrieval of dimension evaluators.
package registry

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/draftforge/evalengine/dimension"
	"github.com/draftforge/evalengine/evaluator"
	"github.com/draftforge/evalengine/evaluator/completeness"
	"github.com/draftforge/evalengine/evaluator/consistency"
	"github.com/draftforge/evalengine/evaluator/correctness"
	"github.com/draftforge/evalengine/evaluator/format"
	"github.com/draftforge/evalengine/evaluator/relevance"
)

// Registry defines the interface for dimension evaluator registries.
type Registry interface {
	// Register registers an evaluator under a dimension.
	Register(dim dimension.Dimension, e evaluator.Evaluator) error
	// Get retrieves the evaluator for a dimension.
	Get(dim dimension.Dimension) (evaluator.Evaluator, error)
	// Unregister removes the evaluator for a dimension.
	Unregister(dim dimension.Dimension)
	// List returns the registered dimensions sorted lexicographically.
	List() []dimension.Dimension
}

// registry is the default implementation of Registry.
type registry struct {
	mu         sync.RWMutex
	evaluators map[dimension.Dimension]evaluator.Evaluator
}

// New creates a registry populated with the five built-in evaluators
// configured by cfg.
func New(cfg evaluator.Config) Registry {
	r := NewEmpty()
	for _, e := range []evaluator.Evaluator{
		correctness.New(cfg),
		completeness.New(cfg),
		consistency.New(cfg),
		relevance.New(cfg),
		format.New(cfg),
	} {
		r.Register(e.Dimension(), e)
	}
	return r
}

// NewEmpty creates a registry with no evaluators registered.
func NewEmpty() Registry {
	return &registry{
		evaluators: make(map[dimension.Dimension]evaluator.Evaluator),
	}
}

// Register registers an evaluator under a dimension.
// A dimension already registered is overwritten.
func (r *registry) Register(dim dimension.Dimension, e evaluator.Evaluator) error {
	if e == nil {
		return errors.New("evaluator is nil")
	}
	if dim == "" {
		dim = e.Dimension()
	}
	if dim == "" {
		return errors.New("dimension name is empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evaluators[dim] = e
	return nil
}

// Get retrieves the evaluator for a dimension.
// Returns os.ErrNotExist if no evaluator is registered for it.
func (r *registry) Get(dim dimension.Dimension) (evaluator.Evaluator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.evaluators[dim]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("get evaluator for dimension %s: %w", dim, os.ErrNotExist)
}

// Unregister removes the evaluator for a dimension.
func (r *registry) Unregister(dim dimension.Dimension) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.evaluators, dim)
}

// List returns the registered dimensions sorted lexicographically.
func (r *registry) List() []dimension.Dimension {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dims := make([]dimension.Dimension, 0, len(r.evaluators))
	for dim := range r.evaluators {
		dims = append(dims, dim)
	}
	sort.Slice(dims, func(i, j int) bool { return dims[i] < dims[j] })
	return dims
}
