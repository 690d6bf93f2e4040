package markdown

import "strings"

// FindSection returns the text between heading h and the next heading of
// equal or higher level (or end of document). The heading line itself is
// not included. Headings inside fenced code blocks are ignored.
// found is false when no line matches h.
func FindSection(text string, h Heading) (body string, found bool) {
	lines := strings.Split(text, "\n")
	start := -1
	inFence := false

	for i, line := range lines {
		if isFence(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		level, _, ok := headingOf(line)
		if !ok {
			continue
		}
		if start < 0 {
			if h.Matches(line) {
				start = i + 1
			}
			continue
		}
		if level <= h.Level {
			return strings.Join(lines[start:i], "\n"), true
		}
	}

	if start < 0 {
		return "", false
	}
	return strings.Join(lines[start:], "\n"), true
}

// Preamble returns the part of text before its first heading.
func Preamble(text string) string {
	lines := strings.Split(text, "\n")
	inFence := false
	for i, line := range lines {
		if isFence(line) {
			inFence = !inFence
			continue
		}
		if !inFence && IsHeading(line) {
			return strings.Join(lines[:i], "\n")
		}
	}
	return text
}

// SplitOnRule splits text into chunks separated by horizontal rule lines
// ("---"). Rules inside fenced code blocks do not split.
// Chunks are returned untrimmed and may be empty.
func SplitOnRule(text string) []string {
	lines := strings.Split(text, "\n")
	var chunks []string
	start := 0
	inFence := false

	for i, line := range lines {
		if isFence(line) {
			inFence = !inFence
			continue
		}
		if !inFence && strings.TrimSpace(line) == "---" {
			chunks = append(chunks, strings.Join(lines[start:i], "\n"))
			start = i + 1
		}
	}
	return append(chunks, strings.Join(lines[start:], "\n"))
}
