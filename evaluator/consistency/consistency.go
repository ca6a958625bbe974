//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

// Package consistency provides internal and cross-output contradiction detection.
package consistency

import (
	"context"
	"fmt"
	"strings"

	"github.com/draftforge/evalengine/dimension"
	"github.com/draftforge/evalengine/evalresult"
	"github.com/draftforge/evalengine/evaluator"
	"github.com/draftforge/evalengine/internal/text"
)

const (
	// minStatementLength is the shortest sentence considered a statement.
	minStatementLength = 10
	// numericConflictPenalty is subtracted per key recorded with two values.
	numericConflictPenalty = 0.1
	// contradictionPenalty is subtracted per contradictory statement pair.
	contradictionPenalty = 0.15
	// crossOutputPenalty is subtracted per value that drifted from a previous output.
	crossOutputPenalty = 0.1
)

// antonymPair is a curated pair of opposing content words.
type antonymPair struct {
	a string
	b string
}

var antonymPairs = []antonymPair{
	{a: "increase", b: "decrease"},
	{a: "grow", b: "shrink"},
	{a: "more", b: "less"},
	{a: "higher", b: "lower"},
	{a: "better", b: "worse"},
}

// consistencyEvaluator flags numeric conflicts and contradictory statements.
type consistencyEvaluator struct {
	cfg evaluator.Config
}

// New creates a consistency evaluator.
func New(cfg evaluator.Config) evaluator.Evaluator {
	return &consistencyEvaluator{cfg: cfg}
}

// Dimension returns the dimension this evaluator scores.
func (e *consistencyEvaluator) Dimension() dimension.Dimension {
	return dimension.Consistency
}

// Description describes what this evaluator measures.
func (e *consistencyEvaluator) Description() string {
	return "Detects conflicting numbers and contradictory statements within and across outputs"
}

// Evaluate runs the internal check, and the cross-output check when previous
// outputs exist, averaging the two sub-scores.
func (e *consistencyEvaluator) Evaluate(_ context.Context, output any, evalCtx *evaluator.Context) (*evalresult.EvalResult, error) {
	body := evaluator.OutputText(output)
	internalScore, conflicts, contradictions := internalConsistency(body)
	score := internalScore
	details := map[string]any{
		"numericConflicts": conflicts,
		"contradictions":   contradictions,
	}
	if evalCtx != nil && len(evalCtx.PreviousOutputs) > 0 {
		crossScore, drifts := crossOutputConsistency(body, evalCtx.PreviousOutputs)
		details["crossOutputConflicts"] = drifts
		score = (internalScore + crossScore) / 2
	}
	r := evalresult.New(dimension.Consistency, evaluator.StatusForScore(score, e.cfg.PassingThreshold), score)
	r.Message = fmt.Sprintf("%d numeric conflicts, %d contradictory statement pairs", len(conflicts), len(contradictions))
	r.Details = details
	return r, nil
}

// internalConsistency scores one output against itself.
func internalConsistency(body string) (score float64, conflicts, contradictions []string) {
	conflicts = numericConflicts(body)
	contradictions = statementContradictions(body)
	score = 1.0 - numericConflictPenalty*float64(len(conflicts)) - contradictionPenalty*float64(len(contradictions))
	if score < 0 {
		score = 0
	}
	return score, conflicts, contradictions
}

// numericConflicts reports each key recorded with more than one value.
func numericConflicts(body string) []string {
	seen := make(map[string]string)
	conflicted := make(map[string]struct{})
	var conflicts []string
	for _, m := range text.NumericMentions(body) {
		prev, ok := seen[m.Key]
		if !ok {
			seen[m.Key] = m.Value
			continue
		}
		if prev == m.Value {
			continue
		}
		if _, dup := conflicted[m.Key]; dup {
			continue
		}
		conflicted[m.Key] = struct{}{}
		conflicts = append(conflicts, fmt.Sprintf("%s recorded as both %s and %s", m.Key, prev, m.Value))
	}
	return conflicts
}

// statementContradictions flags statement pairs that share a content word and
// use opposite members of the antonym list.
func statementContradictions(body string) []string {
	statements := make([]string, 0, 8)
	for _, s := range text.Sentences(body) {
		if len(s) > minStatementLength {
			statements = append(statements, s)
		}
	}
	var contradictions []string
	for i := 0; i < len(statements); i++ {
		for j := i + 1; j < len(statements); j++ {
			if statementsContradict(statements[i], statements[j]) {
				contradictions = append(contradictions,
					fmt.Sprintf("%q contradicts %q", statements[i], statements[j]))
			}
		}
	}
	return contradictions
}

// statementsContradict reports whether two statements discuss a shared
// content word with opposing antonyms. Only content words (longer than four
// characters) can establish the shared topic; the antonym check runs over
// every token so short antonyms like "more" and "grow" still count.
func statementsContradict(a, b string) bool {
	contentA := text.Words(a, 4)
	contentB := text.WordSet(b, 4)
	shared := false
	for _, w := range contentA {
		if _, ok := contentB[w]; ok {
			shared = true
			break
		}
	}
	if !shared {
		return false
	}
	wordsA := text.Words(a, 0)
	wordsB := text.WordSet(b, 0)
	for _, pair := range antonymPairs {
		if hasAntonym(wordsA, pair.a) && hasAntonymSet(wordsB, pair.b) {
			return true
		}
		if hasAntonym(wordsA, pair.b) && hasAntonymSet(wordsB, pair.a) {
			return true
		}
	}
	return false
}

// hasAntonym matches inflected forms by prefix ("increased" matches "increase").
func hasAntonym(words []string, antonym string) bool {
	for _, w := range words {
		if strings.HasPrefix(w, antonym) {
			return true
		}
	}
	return false
}

func hasAntonymSet(words map[string]struct{}, antonym string) bool {
	for w := range words {
		if strings.HasPrefix(w, antonym) {
			return true
		}
	}
	return false
}

// crossOutputConsistency compares the current output's numeric mentions with
// each previous output's and penalizes drifted values.
func crossOutputConsistency(body string, previous []any) (score float64, drifts []string) {
	current := make(map[string]string)
	for _, m := range text.NumericMentions(body) {
		if _, ok := current[m.Key]; !ok {
			current[m.Key] = m.Value
		}
	}
	drifted := make(map[string]struct{})
	for _, prev := range previous {
		for _, m := range text.NumericMentions(evaluator.OutputText(prev)) {
			value, ok := current[m.Key]
			if !ok || value == m.Value {
				continue
			}
			if _, dup := drifted[m.Key]; dup {
				continue
			}
			drifted[m.Key] = struct{}{}
			drifts = append(drifts, fmt.Sprintf("%s changed from %s to %s", m.Key, m.Value, value))
		}
	}
	score = 1.0 - crossOutputPenalty*float64(len(drifts))
	if score < 0 {
		score = 0
	}
	return score, drifts
}
