package mdtools

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// MinHeadingLevel and MaxHeadingLevel bound the headings listed in a TOC.
// The document title (H1) is never listed.
const (
	MinHeadingLevel = 2
	MaxHeadingLevel = 6
)

// Heading represents a markdown heading listed in a table of contents.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// HeadingParser extracts TOC headings from a markdown document.
type HeadingParser interface {
	// ParseHeadings returns the H2-H6 headings of source in document order,
	// ignoring fenced code blocks. Anchors are unique within the result.
	ParseHeadings(source []byte) ([]Heading, error)
}

var headingRe = regexp.MustCompile(`^(#{2,6})\s+(.*)`)

// ExtractHeadings scans markdown lines and returns all ATX headings from
// H2 to H6. Lines inside fenced code blocks are skipped.
func ExtractHeadings(lines []string) []Heading {
	var fences fenceTracker
	var headings []Heading
	anchors := NewAnchorSet()

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if fences.step(trimmed) {
			continue
		}
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}

		match := headingRe.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}
		title := strings.TrimSpace(match[2])
		headings = append(headings, Heading{
			Level:  len(match[1]),
			Title:  title,
			Anchor: anchors.Add(title),
		})
	}

	return headings
}

// FilterHeadings returns the headings whose level lies within [lo, hi].
func FilterHeadings(headings []Heading, lo, hi int) []Heading {
	var out []Heading
	for _, h := range headings {
		if h.Level >= lo && h.Level <= hi {
			out = append(out, h)
		}
	}
	return out
}

// Slugify converts a heading title to the anchor GitHub generates for it:
// lowercase, punctuation removed, each whitespace run replaced by a hyphen.
func Slugify(title string) string {
	var sb strings.Builder
	inSpace := false

	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsSpace(r):
			if !inSpace {
				sb.WriteRune('-')
				inSpace = true
			}
		case unicode.IsLetter(r), unicode.IsNumber(r), r == '_', r == '-':
			sb.WriteRune(r)
			inSpace = false
		}
	}

	return sb.String()
}

// AnchorSet hands out unique anchors, suffixing repeats with -1, -2, ...
type AnchorSet struct {
	counts map[string]int
}

// NewAnchorSet returns an empty AnchorSet.
func NewAnchorSet() *AnchorSet {
	return &AnchorSet{counts: make(map[string]int)}
}

// Add slugifies title and returns its anchor, unique within the set.
func (s *AnchorSet) Add(title string) string {
	base := Slugify(title)
	count, exists := s.counts[base]
	s.counts[base] = count + 1
	if !exists {
		return base
	}
	return base + "-" + strconv.Itoa(count)
}
