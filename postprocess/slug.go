package postprocess

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Slug converts text to a GitHub-style anchor: lowercased, with everything
// but letters, marks, digits, underscores, hyphens and spaces removed, and
// spaces replaced by hyphens.
func Slug(text string) string {
	text = cases.Lower(language.Und).String(norm.NFC.String(text))

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		switch {
		case r == ' ':
			sb.WriteByte('-')
		case r == '-' || r == '_':
			sb.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r):
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Slugger generates unique slugs. Repeated slugs get -1, -2, ... suffixes in
// order of appearance.
type Slugger struct {
	occurrences map[string]int
}

// NewSlugger creates a Slugger with no slugs issued
func NewSlugger() *Slugger {
	return &Slugger{occurrences: make(map[string]int)}
}

// Slug returns a slug for text that this Slugger has not returned before
func (s *Slugger) Slug(text string) string {
	original := Slug(text)
	result := original
	for {
		if _, seen := s.occurrences[result]; !seen {
			break
		}
		s.occurrences[original]++
		result = original + "-" + strconv.Itoa(s.occurrences[original])
	}
	s.occurrences[result] = 0
	return result
}

// Reset forgets every issued slug
func (s *Slugger) Reset() {
	s.occurrences = make(map[string]int)
}
