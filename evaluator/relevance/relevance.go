//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

// Package relevance provides concept-overlap evaluation against the user prompt.
package relevance

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/draftforge/evalengine/dimension"
	"github.com/draftforge/evalengine/evalresult"
	"github.com/draftforge/evalengine/evaluator"
	"github.com/draftforge/evalengine/internal/text"
)

const (
	// coverageWeight scales the fraction of prompt concepts found in the output.
	coverageWeight = 0.4
	// alignmentWeight scales the fraction of output concepts found in the prompt.
	alignmentWeight = 0.4
	// conceptBlendWeight and keywordBlendWeight mix the concept score with the
	// verbatim keyword match rate when keywords are supplied.
	conceptBlendWeight = 0.8
	keywordBlendWeight = 0.2
	// offTopicPenalty is subtracted per frequent concept absent from the prompt.
	offTopicPenalty = 0.05
	// offTopicFrequency is the occurrence count above which a concept is
	// considered a theme of the output.
	offTopicFrequency = 3
	// maxOffTopicReported caps the off-topic concepts listed in details.
	// The penalty still counts every off-topic concept.
	maxOffTopicReported = 5
)

// relevanceEvaluator measures how well the output stays on the prompt's topic.
type relevanceEvaluator struct {
	cfg evaluator.Config
}

// New creates a relevance evaluator.
func New(cfg evaluator.Config) evaluator.Evaluator {
	return &relevanceEvaluator{cfg: cfg}
}

// Dimension returns the dimension this evaluator scores.
func (e *relevanceEvaluator) Dimension() dimension.Dimension {
	return dimension.Relevance
}

// Description describes what this evaluator measures.
func (e *relevanceEvaluator) Description() string {
	return "Measures concept overlap between the output and the user prompt"
}

// Evaluate scores prompt coverage, topic alignment and keyword presence.
func (e *relevanceEvaluator) Evaluate(_ context.Context, output any, evalCtx *evaluator.Context) (*evalresult.EvalResult, error) {
	if evalCtx == nil || strings.TrimSpace(evalCtx.UserPrompt) == "" {
		r := evalresult.New(dimension.Relevance, evaluator.StatusForScore(0.5, e.cfg.PassingThreshold), 0.5)
		r.Confidence = 0.3
		r.Message = "no user prompt to judge relevance against"
		return r, nil
	}
	body := evaluator.OutputText(output)
	promptConcepts := conceptSet(evalCtx.UserPrompt)
	outputConcepts := text.Concepts(body, 3)
	outputSet := make(map[string]struct{}, len(outputConcepts))
	counts := make(map[string]int, len(outputConcepts))
	order := make([]string, 0, len(outputConcepts))
	for _, c := range outputConcepts {
		if _, seen := outputSet[c]; !seen {
			order = append(order, c)
		}
		outputSet[c] = struct{}{}
		counts[c]++
	}

	coverage := setOverlap(promptConcepts, outputSet)
	alignment := setOverlap(outputSet, promptConcepts)
	score := coverageWeight*coverage + alignmentWeight*alignment

	details := map[string]any{
		"promptCoverage": coverage,
		"topicAlignment": alignment,
	}
	if len(evalCtx.Keywords) > 0 {
		keywordMatches := keywordMatchRate(body, evalCtx.Keywords)
		details["keywordMatches"] = keywordMatches
		score = conceptBlendWeight*score + keywordBlendWeight*keywordMatches
	}

	offTopic := offTopicConcepts(order, counts, promptConcepts)
	score -= offTopicPenalty * float64(len(offTopic))
	if len(offTopic) > maxOffTopicReported {
		offTopic = offTopic[:maxOffTopicReported]
	}
	details["offTopicConcepts"] = offTopic
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	r := evalresult.New(dimension.Relevance, evaluator.StatusForScore(score, e.cfg.PassingThreshold), score)
	r.Message = fmt.Sprintf("prompt coverage %.2f, topic alignment %.2f", coverage, alignment)
	r.Details = details
	return r, nil
}

// conceptSet extracts the distinct concepts of a text.
func conceptSet(s string) map[string]struct{} {
	concepts := text.Concepts(s, 3)
	set := make(map[string]struct{}, len(concepts))
	for _, c := range concepts {
		set[c] = struct{}{}
	}
	return set
}

// setOverlap returns the fraction of members of a that appear in b.
func setOverlap(a, b map[string]struct{}) float64 {
	if len(a) == 0 {
		return 0
	}
	matched := 0
	for m := range a {
		if _, ok := b[m]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(a))
}

// keywordMatchRate returns the fraction of keywords found verbatim in the
// output, case-insensitively.
func keywordMatchRate(body string, keywords []string) float64 {
	lower := strings.ToLower(body)
	matched := 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords))
}

// offTopicConcepts lists every output theme absent from the prompt: concepts
// that occur more than offTopicFrequency times, most frequent first. Ties keep
// first-occurrence order. Callers cap the reported list, not this function.
func offTopicConcepts(order []string, counts map[string]int, prompt map[string]struct{}) []string {
	offTopic := make([]string, 0)
	for _, c := range order {
		if counts[c] <= offTopicFrequency {
			continue
		}
		if _, onTopic := prompt[c]; onTopic {
			continue
		}
		offTopic = append(offTopic, c)
	}
	sort.SliceStable(offTopic, func(i, j int) bool {
		return counts[offTopic[i]] > counts[offTopic[j]]
	})
	return offTopic
}
