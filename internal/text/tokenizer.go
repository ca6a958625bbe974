//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

// Package text provides the lexical helpers shared by the dimension evaluators.
// The tokenization is deliberately approximate: evaluator thresholds are tuned
// to this simple scheme, not to real NLP.
package text

import (
	"regexp"
	"strings"
)

var (
	// nonAlphaNumRE matches one or more non-alphanumeric characters for normalization.
	nonAlphaNumRE = regexp.MustCompile(`[^a-z0-9]+`)
	// spacesRE matches one or more whitespace characters for token splitting.
	spacesRE = regexp.MustCompile(`\s+`)
)

// stopWords are excluded from concept extraction.
var stopWords = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "from": {}, "have": {}, "been": {},
	"were": {}, "will": {}, "would": {}, "could": {}, "should": {}, "about": {},
	"their": {}, "there": {}, "which": {}, "when": {}, "what": {}, "them": {},
	"then": {}, "than": {}, "also": {}, "into": {}, "over": {}, "more": {},
	"some": {}, "such": {}, "each": {}, "other": {}, "these": {}, "those": {},
}

// Words lowercases, strips punctuation, and returns tokens strictly longer
// than minLen characters.
func Words(s string, minLen int) []string {
	s = strings.ToLower(s)
	s = nonAlphaNumRE.ReplaceAllString(s, " ")
	parts := spacesRE.Split(strings.TrimSpace(s), -1)
	tokens := make([]string, 0, len(parts))
	for _, token := range parts {
		if len(token) <= minLen {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// WordSet returns the distinct tokens of Words(s, minLen).
func WordSet(s string, minLen int) map[string]struct{} {
	words := Words(s, minLen)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Concepts returns the tokens of Words(s, minLen) with stop words removed,
// preserving occurrence order and duplicates.
func Concepts(s string, minLen int) []string {
	words := Words(s, minLen)
	concepts := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := stopWords[w]; stop {
			continue
		}
		concepts = append(concepts, w)
	}
	return concepts
}

// OverlapRatio returns the fraction of tokens that appear in the reference
// set. It returns 0 when tokens is empty.
func OverlapRatio(tokens []string, reference map[string]struct{}) float64 {
	if len(tokens) == 0 {
		return 0
	}
	matched := 0
	for _, t := range tokens {
		if _, ok := reference[t]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(tokens))
}
