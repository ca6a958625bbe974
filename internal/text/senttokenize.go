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
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

var (
	// englishSentenceTokenizerOnce ensures the Punkt model is loaded once.
	englishSentenceTokenizerOnce sync.Once
	// englishSentenceTokenizer holds the initialized sentence tokenizer instance.
	englishSentenceTokenizer *sentences.DefaultSentenceTokenizer
	// englishSentenceTokenizerErr caches any initialization error.
	englishSentenceTokenizerErr error
)

// sentenceBoundaryRE is the fallback splitter when the Punkt model is unavailable.
var sentenceBoundaryRE = regexp.MustCompile(`[.!?]+\s+`)

// Sentences splits English text into sentences using Punkt training data,
// falling back to a naive boundary split if the model cannot be loaded.
// Evaluation must degrade rather than fail on tokenizer initialization.
func Sentences(text string) []string {
	raw, err := punktSentences(text)
	if err != nil {
		raw = sentenceBoundaryRE.Split(text, -1)
	}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// punktSentences tokenizes with the cached Punkt model.
func punktSentences(text string) ([]string, error) {
	englishSentenceTokenizerOnce.Do(func() {
		b, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			englishSentenceTokenizerErr = fmt.Errorf("load english punkt data: %w", err)
			return
		}
		training, err := sentences.LoadTraining(b)
		if err != nil {
			englishSentenceTokenizerErr = fmt.Errorf("parse english punkt data: %w", err)
			return
		}
		englishSentenceTokenizer = sentences.NewSentenceTokenizer(training)
	})
	if englishSentenceTokenizerErr != nil {
		return nil, englishSentenceTokenizerErr
	}
	tokenized := englishSentenceTokenizer.Tokenize(text)
	out := make([]string, 0, len(tokenized))
	for _, sent := range tokenized {
		out = append(out, sent.Text)
	}
	return out, nil
}
