package mdtools

import (
	"strings"
)

// Markers delimiting a generated table of contents.
const (
	TOCStart = "<!-- toc -->"
	TOCEnd   = "<!-- tocstop -->"
)

// BuildTOC renders headings as a nested markdown list wrapped in TOC markers.
// Each returned line ends with a newline.
func BuildTOC(headings []Heading) []string {
	lines := make([]string, 0, len(headings)+2)
	lines = append(lines, TOCStart+"\n")
	for _, h := range headings {
		indent := strings.Repeat("  ", max(h.Level-MinHeadingLevel, 0))
		lines = append(lines, indent+"- ["+h.Title+"](#"+h.Anchor+")\n")
	}
	lines = append(lines, TOCEnd+"\n")
	return lines
}

// UpdateTOC places toc into lines and returns the updated document.
//
// An existing marker block is replaced in place. Without markers the TOC is
// inserted, surrounded by blank lines, after the first H1 line; documents
// without an H1 get the TOC prepended. Inserted lines use the document's
// line ending.
func UpdateTOC(lines, toc []string) ([]string, error) {
	eol := lineEnding(lines)
	toc = withLineEnding(toc, eol)
	start, end := markerIndex(lines, TOCStart), markerIndex(lines, TOCEnd)

	switch {
	case start >= 0 && end >= 0:
		if end < start {
			return nil, Errorf(EINVALID, "%s on line %d appears before %s on line %d", TOCEnd, end+1, TOCStart, start+1)
		}
		return concatLines(lines[:start], toc, lines[end+1:]), nil
	case start >= 0:
		return nil, Errorf(EINVALID, "%s on line %d has no matching %s", TOCStart, start+1, TOCEnd)
	case end >= 0:
		return nil, Errorf(EINVALID, "%s on line %d has no matching %s", TOCEnd, end+1, TOCStart)
	}

	if i := titleIndex(lines); i >= 0 {
		head := lines[:i+1]
		if !strings.HasSuffix(head[i], "\n") {
			head = concatLines(lines[:i], []string{lines[i] + eol})
		}
		return concatLines(head, []string{eol}, toc, []string{eol}, lines[i+1:]), nil
	}

	return concatLines(toc, []string{eol}, lines), nil
}

// lineEnding returns the line terminator of the first terminated line,
// "\n" if there is none.
func lineEnding(lines []string) string {
	for _, line := range lines {
		if strings.HasSuffix(line, "\r\n") {
			return "\r\n"
		} else if strings.HasSuffix(line, "\n") {
			return "\n"
		}
	}
	return "\n"
}

// withLineEnding returns lines terminated with eol instead of "\n".
func withLineEnding(lines []string, eol string) []string {
	if eol == "\n" {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.HasSuffix(line, "\n") && !strings.HasSuffix(line, eol) {
			line = strings.TrimSuffix(line, "\n") + eol
		}
		out[i] = line
	}
	return out
}

// markerIndex returns the index of the first line containing marker, or -1.
func markerIndex(lines []string, marker string) int {
	for i, line := range lines {
		if strings.Contains(line, marker) {
			return i
		}
	}
	return -1
}

// titleIndex returns the index of the first H1 line outside fenced blocks, or -1.
func titleIndex(lines []string) int {
	var fences fenceTracker
	for i, line := range lines {
		if fences.step(strings.TrimSpace(line)) {
			continue
		}
		if strings.HasPrefix(line, "# ") {
			return i
		}
	}
	return -1
}

func concatLines(parts ...[]string) []string {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]string, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
