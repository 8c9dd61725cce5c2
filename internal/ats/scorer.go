package ats

import (
	"sort"
	"strings"
)

// punctuation mirrors the character class stripped from text before
// tokenization. Characters are deleted, not replaced, so "node.js"
// tokenizes to "nodejs".
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// RoleMatch is the result of scoring a resume against a fixed keyword list.
type RoleMatch struct {
	// Score is the percentage of keywords found, 0..100.
	Score float64
	// Matched holds the found keywords in the keyword list's original order.
	Matched []string
}

// JDMatch is the result of scoring a resume against a free-text job description.
type JDMatch struct {
	// Score is the truncated percentage of job-description tokens found in
	// the resume, 0..100.
	Score int
	// Matched and Missing are sorted alphabetically so output is stable
	// across runs.
	Matched []string
	Missing []string
}

// ScoreAgainstKeywords counts how many keywords appear as case-insensitive
// substrings of the resume text. An empty keyword list scores zero.
func ScoreAgainstKeywords(resumeText string, keywords []string) RoleMatch {
	match := RoleMatch{Matched: make([]string, 0, len(keywords))}
	if len(keywords) == 0 {
		return match
	}

	lower := strings.ToLower(resumeText)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			match.Matched = append(match.Matched, kw)
		}
	}

	match.Score = float64(len(match.Matched)) / float64(len(keywords)) * 100
	return match
}

// ScoreAgainstJobDescription tokenizes both texts and compares the unique
// token sets. The score is the share of job-description tokens present in the
// resume, truncated to an integer. Empty inputs score zero with empty sets.
func ScoreAgainstJobDescription(resumeText, jdText string) JDMatch {
	match := JDMatch{Matched: []string{}, Missing: []string{}}
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jdText) == "" {
		return match
	}

	resumeTokens := tokenSet(Tokenize(resumeText))
	jdTokens := tokenSet(Tokenize(jdText))
	if len(jdTokens) == 0 {
		return match
	}

	for token := range jdTokens {
		if _, ok := resumeTokens[token]; ok {
			match.Matched = append(match.Matched, token)
		} else {
			match.Missing = append(match.Missing, token)
		}
	}

	sort.Strings(match.Matched)
	sort.Strings(match.Missing)

	match.Score = len(match.Matched) * 100 / len(jdTokens)
	return match
}

// Tokenize lowercases the text, deletes punctuation, splits on whitespace and
// drops English stopwords. Duplicates are preserved.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, strings.ToLower(text))

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, word := range fields {
		if _, ok := stopwords[word]; ok {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
