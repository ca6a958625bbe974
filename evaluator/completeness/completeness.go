//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

// Package completeness provides requirement-driven structural evaluation.
package completeness

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/draftforge/evalengine/dimension"
	"github.com/draftforge/evalengine/evalresult"
	"github.com/draftforge/evalengine/evaluator"
)

// builtinRequirements lists the elements each known content type must carry.
// Callers can override the table per call via Context.Requirements.
var builtinRequirements = map[string][]evaluator.Requirement{
	"roadmap": {
		{Name: "title", Path: "title", Type: "string"},
		{Name: "timeColumns", Path: "timeColumns", Type: "array", MinLength: 2},
		{Name: "data", Path: "data", Type: "array", MinLength: 1},
		{Name: "rowLabel", Path: "data[].label", Type: "string"},
	},
	"slides": {
		{Name: "title", Path: "title", Type: "string"},
		{Name: "slides", Path: "slides", Type: "array", MinLength: 1},
		{Name: "slideTitle", Path: "slides[].title", Type: "string"},
	},
	"document": {
		{Name: "title", Path: "title", Type: "string"},
		{Name: "sections", Path: "sections", Type: "array", MinLength: 1},
		{Name: "sectionContent", Path: "sections[].content", Type: "string"},
	},
	"research-analysis": {
		{Name: "summary", Path: "summary", Type: "string", MinLength: 20},
		{Name: "findings", Path: "findings", Type: "array", MinLength: 1},
		{Name: "recommendations", Path: "recommendations", Type: "array"},
	},
}

// completenessEvaluator checks that required structural elements are present.
type completenessEvaluator struct {
	cfg evaluator.Config
}

// New creates a completeness evaluator.
func New(cfg evaluator.Config) evaluator.Evaluator {
	return &completenessEvaluator{cfg: cfg}
}

// Dimension returns the dimension this evaluator scores.
func (e *completenessEvaluator) Dimension() dimension.Dimension {
	return dimension.Completeness
}

// Description describes what this evaluator measures.
func (e *completenessEvaluator) Description() string {
	return "Checks required structural elements for the content type are present and well-typed"
}

// Evaluate resolves every requirement path against the output and scores the
// present fraction.
func (e *completenessEvaluator) Evaluate(_ context.Context, output any, evalCtx *evaluator.Context) (*evalresult.EvalResult, error) {
	requirements := resolveRequirements(evalCtx)
	if len(requirements) == 0 {
		r := evalresult.New(dimension.Completeness, evaluator.StatusForScore(1.0, e.cfg.PassingThreshold), 1.0)
		r.Message = "no requirements apply"
		return r, nil
	}
	raw, _ := evaluator.OutputJSON(output)
	doc := gjson.Parse(raw)
	present := 0
	missing := make([]string, 0)
	for _, req := range requirements {
		if requirementSatisfied(doc, req) {
			present++
			continue
		}
		missing = append(missing, req.Name)
	}
	score := float64(present) / float64(len(requirements))
	details := map[string]any{
		"requiredElements": len(requirements),
		"presentElements":  present,
		"missingElements":  missing,
	}
	if evalCtx != nil && evalCtx.Schema != nil && len(evalCtx.Schema.Required) > 0 {
		// Informational only: schema compliance never moves the score.
		details["schemaCompliance"] = schemaCompliance(doc, evalCtx.Schema)
	}
	r := evalresult.New(dimension.Completeness, evaluator.StatusForScore(score, e.cfg.PassingThreshold), score)
	r.Message = fmt.Sprintf("%d of %d required elements present", present, len(requirements))
	r.Details = details
	return r, nil
}

// resolveRequirements picks explicit requirements, falling back to the
// built-in table for the content type.
func resolveRequirements(evalCtx *evaluator.Context) []evaluator.Requirement {
	if evalCtx == nil {
		return nil
	}
	if len(evalCtx.Requirements) > 0 {
		return evalCtx.Requirements
	}
	return builtinRequirements[evalCtx.ContentType]
}

// requirementSatisfied resolves the requirement path and checks type and
// minimum length.
func requirementSatisfied(doc gjson.Result, req evaluator.Requirement) bool {
	value := doc.Get(resolvePath(req.Path))
	if !value.Exists() {
		return false
	}
	if !typeMatches(value, req.Type) {
		return false
	}
	if req.MinLength > 0 {
		switch {
		case value.IsArray():
			if len(value.Array()) < req.MinLength {
				return false
			}
		case value.Type == gjson.String:
			if len(value.String()) < req.MinLength {
				return false
			}
		}
	}
	return true
}

// resolvePath converts "items[].field" array notation into first-element
// traversal ("items.0.field").
func resolvePath(path string) string {
	return strings.ReplaceAll(path, "[]", ".0")
}

// typeMatches checks the resolved value against the declared requirement type.
// An empty declared type accepts anything.
func typeMatches(value gjson.Result, declared string) bool {
	switch declared {
	case "":
		return true
	case "array":
		return value.IsArray()
	case "object":
		return value.IsObject()
	case "string":
		return value.Type == gjson.String
	case "number":
		return value.Type == gjson.Number
	default:
		return false
	}
}

// schemaCompliance reports which schema-required fields are absent.
func schemaCompliance(doc gjson.Result, schema *evaluator.Schema) map[string]any {
	missing := make([]string, 0)
	for _, field := range schema.Required {
		if !doc.Get(field).Exists() {
			missing = append(missing, field)
		}
	}
	return map[string]any{
		"passed":        len(missing) == 0,
		"missingFields": missing,
	}
}
