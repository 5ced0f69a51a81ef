package util

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// asciiMention matches @ followed by [0-9A-Za-z_]+.
	asciiMention = regexp.MustCompile(`@(\w+)`)
	// unicodeMention widens the handle class to letters, marks, digits and connector punctuation.
	unicodeMention = regexp.MustCompile(`@([\p{L}\p{M}\p{Nd}\p{Pc}]+)`)
)

// MentionScanner extracts lowercase @-mentions from text.
// It holds a stateful case folder and must not be shared between goroutines.
type MentionScanner struct {
	re    *regexp.Regexp
	lower cases.Caser
}

// NewMentionScanner returns a scanner using the ASCII word class, or the Unicode one if unicode is set.
func NewMentionScanner(unicode bool) *MentionScanner {
	re := asciiMention
	if unicode {
		re = unicodeMention
	}
	return &MentionScanner{re: re, lower: cases.Lower(language.Und)}
}

// Lower case-folds a handle.
func (s *MentionScanner) Lower(handle string) string {
	return s.lower.String(handle)
}

// Scan returns every mention in text, left to right, lowercased. Duplicates are kept.
func (s *MentionScanner) Scan(text string) []string {
	matches := s.re.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, s.Lower(m[1]))
	}
	return out
}
