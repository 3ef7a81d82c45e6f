// Package lithology classifies free-text drillers' log descriptions into
// canonical material and color tags for the front end's log rendering.
package lithology

import (
	"strings"

	"github.com/blevesearch/segment"
)

// Tokenize lowercases a description and splits it into word tokens
// (letter and number runs), preserving order. Punctuation and whitespace
// never produce tokens. An empty or unsegmentable description yields an
// empty slice.
func Tokenize(description string) []string {
	seg := segment.NewWordSegmenter(strings.NewReader(strings.ToLower(description)))
	tokens := []string{}
	for seg.Segment() {
		if seg.Type() == segment.None {
			continue
		}
		tokens = append(tokens, seg.Text())
	}
	return tokens
}

// Materials maps tokens to canonical material tags, in token order and with
// duplicates preserved. Tokens outside the vocabulary are ignored.
func Materials(tokens []string) []string {
	return lookup(tokens, materialVocabulary)
}

// Colors maps tokens to canonical color tags, in token order and with
// duplicates preserved.
func Colors(tokens []string) []string {
	return lookup(tokens, colorVocabulary)
}

func lookup(tokens []string, vocabulary map[string]string) []string {
	matches := []string{}
	for _, token := range tokens {
		if tag, ok := vocabulary[token]; ok {
			matches = append(matches, tag)
		}
	}
	return matches
}
