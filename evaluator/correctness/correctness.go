//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

// Package correctness provides claim-extraction based factual evaluation.
//
// The evaluator is a lexical approximation, not a fact checker: it extracts
// sentences that look like factual claims and verifies them by word overlap
// against reference material.
package correctness

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/draftforge/evalengine/dimension"
	"github.com/draftforge/evalengine/evalresult"
	"github.com/draftforge/evalengine/evaluator"
	"github.com/draftforge/evalengine/internal/text"
)

const (
	// minClaimLength is the shortest sentence considered a candidate claim.
	minClaimLength = 20
	// verifiedOverlap is the overlap ratio above which a claim counts as verified.
	verifiedOverlap = 0.5
	// unverifiableOverlap is the overlap ratio below which a claim is dropped
	// from the denominator instead of being judged.
	unverifiableOverlap = 0.2
	// contradictionPenalty is subtracted from the score per contradiction.
	contradictionPenalty = 0.2
)

// claimPatterns mark a sentence as a candidate factual claim.
var claimPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?\s*%`),                                        // percentage
	regexp.MustCompile(`\b(?:19|20)\d{2}\b`),                                       // 4-digit year
	regexp.MustCompile(`\$\s?\d`),                                                  // dollar amount
	regexp.MustCompile(`(?i)\b(?:will|must|should|shall|can)\b`),                   // declarative modal
	regexp.MustCompile(`(?i)\b(?:increas|decreas|grew|grow|fell|fall|rose|rise|declin)\w*\b`), // trend verb
}

// polarityPair is a curated positive/negative wording pair used for
// contradiction detection between a claim and the reference.
type polarityPair struct {
	positive string
	negative string
}

var polarityPairs = []polarityPair{
	{positive: " is ", negative: " is not "},
	{positive: " will ", negative: " won't "},
	{positive: " can ", negative: " can't "},
	{positive: "increased", negative: "decreased"},
	{positive: "grew", negative: "fell"},
}

// correctnessEvaluator verifies extracted claims against reference material.
type correctnessEvaluator struct {
	cfg evaluator.Config
}

// New creates a correctness evaluator.
func New(cfg evaluator.Config) evaluator.Evaluator {
	return &correctnessEvaluator{cfg: cfg}
}

// Dimension returns the dimension this evaluator scores.
func (e *correctnessEvaluator) Dimension() dimension.Dimension {
	return dimension.Correctness
}

// Description describes what this evaluator measures.
func (e *correctnessEvaluator) Description() string {
	return "Verifies factual claims in the output against ground truth and source files"
}

// Evaluate extracts candidate claims and scores them against the reference.
func (e *correctnessEvaluator) Evaluate(_ context.Context, output any, evalCtx *evaluator.Context) (*evalresult.EvalResult, error) {
	body := evaluator.OutputText(output)
	claims := extractClaims(body)
	if len(claims) == 0 {
		// Vacuously correct, but an empty claim set is weak evidence.
		r := evalresult.New(dimension.Correctness, evaluator.StatusForScore(1.0, e.cfg.PassingThreshold), 1.0)
		r.Confidence = 0.5
		r.Message = "no claims to verify"
		r.Details = map[string]any{"claimsFound": 0}
		return r, nil
	}
	reference := referenceText(evalCtx)
	if reference == "" {
		r := evalresult.New(dimension.Correctness, evaluator.StatusForScore(0.5, e.cfg.PassingThreshold), 0.5)
		r.Confidence = 0.3
		r.Message = fmt.Sprintf("found %d claims but no reference material to verify against", len(claims))
		r.Details = map[string]any{"claimsFound": len(claims)}
		return r, nil
	}
	verified, unverifiable, contradictions := verifyClaims(claims, reference)
	score := 0.5
	if denom := len(claims) - unverifiable; denom > 0 {
		score = float64(verified) / float64(denom)
	}
	score -= contradictionPenalty * float64(len(contradictions))
	if score < 0 {
		score = 0
	}
	r := evalresult.New(dimension.Correctness, evaluator.StatusForScore(score, e.cfg.PassingThreshold), score)
	r.Confidence = 0.8
	r.Message = fmt.Sprintf("verified %d of %d claims (%d unverifiable, %d contradictions)",
		verified, len(claims), unverifiable, len(contradictions))
	r.Details = map[string]any{
		"claimsFound":    len(claims),
		"verified":       verified,
		"unverifiable":   unverifiable,
		"contradictions": contradictions,
	}
	return r, nil
}

// extractClaims returns the sentences that look like verifiable claims.
func extractClaims(body string) []string {
	var claims []string
	for _, sentence := range text.Sentences(body) {
		if len(sentence) <= minClaimLength {
			continue
		}
		for _, pattern := range claimPatterns {
			if pattern.MatchString(sentence) {
				claims = append(claims, sentence)
				break
			}
		}
	}
	return claims
}

// verifyClaims buckets each claim into verified/unverifiable and collects
// contradiction descriptions for the mid-overlap band.
func verifyClaims(claims []string, reference string) (verified, unverifiable int, contradictions []string) {
	refSet := text.WordSet(reference, 3)
	refLower := strings.ToLower(reference)
	for _, claim := range claims {
		ratio := text.OverlapRatio(text.Words(claim, 3), refSet)
		switch {
		case ratio > verifiedOverlap:
			verified++
		case ratio < unverifiableOverlap:
			unverifiable++
		default:
			if pair, ok := contradicts(strings.ToLower(claim), refLower); ok {
				contradictions = append(contradictions,
					fmt.Sprintf("claim %q contradicts reference on %s/%s", claim, strings.TrimSpace(pair.positive), strings.TrimSpace(pair.negative)))
			}
		}
	}
	return verified, unverifiable, contradictions
}

// contradicts reports whether the claim asserts one polarity of a curated
// pair while the reference asserts the other.
func contradicts(claim, reference string) (polarityPair, bool) {
	for _, pair := range polarityPairs {
		claimPolarity := polarity(claim, pair)
		if claimPolarity == 0 {
			continue
		}
		refPolarity := polarity(reference, pair)
		if refPolarity != 0 && refPolarity != claimPolarity {
			return pair, true
		}
	}
	return polarityPair{}, false
}

// polarity returns +1 when s uses the positive wording, -1 for the negative
// wording, and 0 when the pair does not appear. The negative form is checked
// first because it usually contains the positive form as a substring.
func polarity(s string, pair polarityPair) int {
	if strings.Contains(s, pair.negative) {
		return -1
	}
	if strings.Contains(s, pair.positive) {
		return 1
	}
	return 0
}

// referenceText joins ground truth and source files into one reference corpus.
func referenceText(evalCtx *evaluator.Context) string {
	if evalCtx == nil {
		return ""
	}
	parts := make([]string, 0, 1+len(evalCtx.SourceFiles))
	if evalCtx.GroundTruth != "" {
		parts = append(parts, evalCtx.GroundTruth)
	}
	for _, f := range evalCtx.SourceFiles {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, "\n")
}
