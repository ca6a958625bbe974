//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

package composite

import (
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// dimensionPool evaluates dimensions concurrently. Results land at fixed
// indices, so the assembled order is deterministic regardless of scheduling.
type dimensionPool struct {
	pool *ants.Pool
}

// newDimensionPool creates a goroutine pool of the given size.
func newDimensionPool(size int) (*dimensionPool, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, fmt.Errorf("create dimension evaluation pool: %w", err)
	}
	return &dimensionPool{pool: pool}, nil
}

// runAll runs fn(0..n-1) on the pool and waits for all of them. A submit
// failure falls back to running the task inline so no dimension is dropped.
func (p *dimensionPool) runAll(n int, fn func(i int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		idx := i
		if err := p.pool.Submit(func() {
			defer wg.Done()
			fn(idx)
		}); err != nil {
			fn(idx)
			wg.Done()
		}
	}
	wg.Wait()
}

// release frees the pool workers.
func (p *dimensionPool) release() {
	p.pool.Release()
}
