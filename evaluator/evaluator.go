//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

// Package evaluator defines the contract every dimension evaluator implements
// and the reference context evaluations run against.
package evaluator

import (
	"context"
	"encoding/json"

	"github.com/draftforge/evalengine/dimension"
	"github.com/draftforge/evalengine/evalresult"
	"github.com/draftforge/evalengine/status"
)

// Evaluator scores one quality dimension of a generated artifact.
//
// Implementations must be pure functions of (output, evalCtx, config):
// no I/O, no mutation of inputs, identical results for identical inputs
// (timestamps aside).
type Evaluator interface {
	// Dimension returns the dimension this evaluator scores.
	Dimension() dimension.Dimension
	// Description describes what this evaluator measures.
	Description() string
	// Evaluate scores the output against the optional reference context.
	Evaluate(ctx context.Context, output any, evalCtx *Context) (*evalresult.EvalResult, error)
}

// Context is the bag of optional reference material an evaluation can draw
// on. Every field may be empty; evaluators degrade confidence rather than
// fail when the material they need is missing.
type Context struct {
	// GroundTruth is reference text claims can be verified against.
	GroundTruth string `json:"groundTruth,omitempty"`
	// SourceFiles holds the research inputs the artifact was generated from.
	SourceFiles []string `json:"sourceFiles,omitempty"`
	// Requirements overrides the built-in per-content-type requirement table.
	Requirements []Requirement `json:"requirements,omitempty"`
	// Schema is an optional JSON-schema fragment for structural checks.
	Schema *Schema `json:"schema,omitempty"`
	// ContentType selects built-in requirement and structure tables
	// (roadmap, slides, document, research-analysis).
	ContentType string `json:"contentType,omitempty"`
	// UserPrompt is the prompt the artifact was generated for.
	UserPrompt string `json:"userPrompt,omitempty"`
	// Keywords are caller-supplied terms expected verbatim in the output.
	Keywords []string `json:"keywords,omitempty"`
	// PreviousOutputs are earlier artifacts in the same session, used for
	// cross-output consistency checks.
	PreviousOutputs []any `json:"previousOutputs,omitempty"`
}

// Requirement describes one structural element an artifact must contain.
type Requirement struct {
	// Name identifies the requirement in diagnostics.
	Name string `json:"name" yaml:"name"`
	// Path locates the element; "items[].field" traverses the first array element.
	Path string `json:"path" yaml:"path"`
	// Type is the expected value type: array, object, string or number.
	Type string `json:"type" yaml:"type"`
	// MinLength is the minimum array or string length, when positive.
	MinLength int `json:"minLength,omitempty" yaml:"minLength,omitempty"`
}

// Schema is the JSON-schema fragment the engine understands: a declared type
// and a required-field list. Anything richer belongs to the caller.
type Schema struct {
	// Type is the expected top-level JSON type (object, array, string, number).
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// Required lists top-level fields that must be present.
	Required []string `json:"required,omitempty" yaml:"required,omitempty"`
}

// StatusForScore maps a score to a status band around the passing threshold:
// score >= threshold passes, score >= threshold/2 is partial, else fail.
func StatusForScore(score, threshold float64) status.EvalStatus {
	switch {
	case score >= threshold:
		return status.EvalStatusPass
	case score >= threshold*0.5:
		return status.EvalStatusPartial
	default:
		return status.EvalStatusFail
	}
}

// OutputText renders the artifact under test as text. Strings pass through;
// structured outputs are rendered as their JSON encoding so the lexical
// evaluators can still scan them.
func OutputText(output any) string {
	if s, ok := output.(string); ok {
		return s
	}
	b, err := json.Marshal(output)
	if err != nil {
		return ""
	}
	return string(b)
}

// OutputJSON renders the artifact as a JSON document. A string output is
// returned as-is (it may or may not parse); structured outputs are marshaled.
// ok is false when the output cannot be represented as JSON at all.
func OutputJSON(output any) (raw string, ok bool) {
	if s, isStr := output.(string); isStr {
		return s, true
	}
	b, err := json.Marshal(output)
	if err != nil {
		return "", false
	}
	return string(b), true
}
