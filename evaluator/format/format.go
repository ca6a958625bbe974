//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

// Package format provides JSON validity and structural shape evaluation.
package format

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/draftforge/evalengine/dimension"
	"github.com/draftforge/evalengine/evalresult"
	"github.com/draftforge/evalengine/evaluator"
)

const (
	// validJSONBaseline is the score for parsing as JSON at all.
	validJSONBaseline = 0.3
	// schemaWeight is added when the schema check does not fail.
	schemaWeight = 0.35
	// structureWeight is added when the content-type structure check passes.
	structureWeight = 0.35
	// issuePenalty is subtracted per recorded issue.
	issuePenalty = 0.1
)

// builtinStructure lists the top-level fields each content type must expose.
var builtinStructure = map[string][]string{
	"roadmap":           {"title", "timeColumns", "data"},
	"slides":            {"title", "slides"},
	"document":          {"title", "sections"},
	"research-analysis": {"summary", "findings"},
}

// formatEvaluator validates JSON shape against schema and content-type structure.
type formatEvaluator struct {
	cfg evaluator.Config
}

// New creates a format evaluator.
func New(cfg evaluator.Config) evaluator.Evaluator {
	return &formatEvaluator{cfg: cfg}
}

// Dimension returns the dimension this evaluator scores.
func (e *formatEvaluator) Dimension() dimension.Dimension {
	return dimension.Format
}

// Description describes what this evaluator measures.
func (e *formatEvaluator) Description() string {
	return "Validates JSON syntax, declared schema type and content-type structure"
}

// Evaluate short-circuits on invalid JSON, then applies schema and structural checks.
func (e *formatEvaluator) Evaluate(_ context.Context, output any, evalCtx *evaluator.Context) (*evalresult.EvalResult, error) {
	raw, ok := evaluator.OutputJSON(output)
	if !ok || !gjson.Valid(raw) {
		r := evalresult.New(dimension.Format, evaluator.StatusForScore(0, e.cfg.PassingThreshold), 0)
		r.Message = "output is not valid JSON"
		r.Details = map[string]any{"isValidJSON": false}
		return r, nil
	}
	doc := gjson.Parse(raw)
	issues := make([]string, 0)
	schemaFailed := false
	if evalCtx != nil && evalCtx.Schema != nil {
		schemaIssues := checkSchema(doc, evalCtx.Schema)
		schemaFailed = len(schemaIssues) > 0
		issues = append(issues, schemaIssues...)
	}
	structurePassed := true
	if evalCtx != nil {
		if fields, known := builtinStructure[evalCtx.ContentType]; known {
			structureIssues := checkStructure(doc, fields)
			structurePassed = len(structureIssues) == 0
			issues = append(issues, structureIssues...)
		}
	}
	score := validJSONBaseline
	if !schemaFailed {
		score += schemaWeight
	}
	if structurePassed {
		score += structureWeight
	}
	score -= issuePenalty * float64(len(issues))
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	r := evalresult.New(dimension.Format, evaluator.StatusForScore(score, e.cfg.PassingThreshold), score)
	if len(issues) == 0 {
		r.Message = "output is well-formed"
	} else {
		r.Message = fmt.Sprintf("%d format issues found", len(issues))
	}
	r.Details = map[string]any{
		"isValidJSON":     true,
		"issues":          issues,
		"schemaPassed":    !schemaFailed,
		"structurePassed": structurePassed,
	}
	return r, nil
}

// checkSchema validates the declared top-level type and required fields.
func checkSchema(doc gjson.Result, schema *evaluator.Schema) []string {
	issues := make([]string, 0)
	if schema.Type != "" && !matchesSchemaType(doc, schema.Type) {
		issues = append(issues, fmt.Sprintf("expected top-level type %s", schema.Type))
	}
	for _, field := range schema.Required {
		if !doc.Get(field).Exists() {
			issues = append(issues, fmt.Sprintf("missing required field %s", field))
		}
	}
	return issues
}

// matchesSchemaType compares the parsed document against a JSON-schema type name.
func matchesSchemaType(doc gjson.Result, declared string) bool {
	switch declared {
	case "object":
		return doc.IsObject()
	case "array":
		return doc.IsArray()
	case "string":
		return doc.Type == gjson.String
	case "number":
		return doc.Type == gjson.Number
	case "boolean":
		return doc.Type == gjson.True || doc.Type == gjson.False
	default:
		return true
	}
}

// checkStructure verifies the built-in top-level field list for a content type.
func checkStructure(doc gjson.Result, fields []string) []string {
	if !doc.IsObject() {
		return []string{"expected a JSON object for structural check"}
	}
	issues := make([]string, 0)
	for _, field := range fields {
		if !doc.Get(field).Exists() {
			issues = append(issues, fmt.Sprintf("missing structural field %s", field))
		}
	}
	return issues
}
