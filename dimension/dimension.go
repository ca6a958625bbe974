//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

// Package dimension declares the quality dimensions the engine can score.
package dimension

// Dimension identifies one independent axis of artifact quality.
type Dimension string

const (
	// Correctness verifies extracted factual claims against reference material.
	Correctness Dimension = "correctness"
	// Completeness checks that required structural elements are present.
	Completeness Dimension = "completeness"
	// Consistency detects internal and cross-output contradictions.
	Consistency Dimension = "consistency"
	// Relevance measures concept overlap with the user prompt.
	Relevance Dimension = "relevance"
	// Format validates JSON shape and content-type structure.
	Format Dimension = "format"
)

// All returns the built-in dimensions in their declaration order.
// The order is load-bearing: composite summaries break score ties by it.
func All() []Dimension {
	return []Dimension{Correctness, Completeness, Consistency, Relevance, Format}
}

// Valid reports whether d names a built-in dimension.
func (d Dimension) Valid() bool {
	switch d {
	case Correctness, Completeness, Consistency, Relevance, Format:
		return true
	default:
		return false
	}
}

// String returns the dimension name.
func (d Dimension) String() string {
	return string(d)
}
