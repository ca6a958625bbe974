//
// DraftForge is pleased to support the open source community by making evalengine available.
//
// Copyright (C) 2026 DraftForge.  All rights reserved.
//
// evalengine is licensed under the Apache License Version 2.0.
//
//

package text

import (
	"regexp"
	"strings"
)

// NumericMention records a key/value pair extracted from prose, e.g.
// "revenue" -> "10%" from "revenue is 10%".
type NumericMention struct {
	Key   string
	Value string
}

var (
	// keyThenValueRE matches "X is 10%" style mentions.
	keyThenValueRE = regexp.MustCompile(`(?i)([a-z][a-z ]{2,}?)\s+(?:is|was|are|were)\s+(\$?\d+(?:\.\d+)?%?)`)
	// valueThenKeyRE matches "10% growth" style mentions.
	valueThenKeyRE = regexp.MustCompile(`(?i)(\$?\d+(?:\.\d+)?%?)\s+([a-z]{3,})`)
)

// NumericMentions extracts key/value numeric pairs from text using the two
// regex passes. Keys are lowercased and trimmed; later mentions of a key are
// kept alongside earlier ones so callers can detect conflicts.
func NumericMentions(s string) []NumericMention {
	mentions := make([]NumericMention, 0, 8)
	for _, m := range keyThenValueRE.FindAllStringSubmatch(s, -1) {
		mentions = append(mentions, NumericMention{
			Key:   normalizeMentionKey(m[1]),
			Value: strings.ToLower(m[2]),
		})
	}
	for _, m := range valueThenKeyRE.FindAllStringSubmatch(s, -1) {
		mentions = append(mentions, NumericMention{
			Key:   normalizeMentionKey(m[2]),
			Value: strings.ToLower(m[1]),
		})
	}
	return mentions
}

// normalizeMentionKey lowercases a key and keeps only its last two words so
// that "the quarterly revenue" and "quarterly revenue" collide.
func normalizeMentionKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	words := strings.Fields(key)
	if len(words) > 2 {
		words = words[len(words)-2:]
	}
	return strings.Join(words, " ")
}
