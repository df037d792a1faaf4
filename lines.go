package mdtools

import "strings"

// SplitLines splits s into lines, keeping each line's trailing newline.
// The final line has no newline if s does not end with one.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines concatenates lines produced by SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "")
}

// fenceTracker follows fenced code blocks line by line.
// A block opened with ``` is only closed by ```, and likewise for ~~~.
type fenceTracker struct {
	open string
}

// step consumes a trimmed line and reports whether it belongs to a fenced
// block, fence lines included.
func (f *fenceTracker) step(trimmed string) bool {
	if f.open != "" {
		if strings.HasPrefix(trimmed, f.open) {
			f.open = ""
		}
		return true
	}
	for _, fence := range []string{"```", "~~~"} {
		if strings.HasPrefix(trimmed, fence) {
			f.open = fence
			return true
		}
	}
	return false
}
