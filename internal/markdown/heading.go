package markdown

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHeading indicates a heading pattern that is not "#... title".
var ErrInvalidHeading = errors.New("invalid heading pattern")

// maxHeadingLevel is the deepest ATX heading level.
const maxHeadingLevel = 6

// Heading identifies a section by its level and title prefix.
// A line matches when it has exactly Level '#' characters, a space,
// and a title starting with Title.
type Heading struct {
	Level int
	Title string
}

// ParseHeading parses a pattern such as "## 📋 基本情報" into a Heading.
func ParseHeading(pattern string) (Heading, error) {
	level, title, ok := headingOf(strings.TrimSpace(pattern))
	if !ok || title == "" {
		return Heading{}, fmt.Errorf("%w: %q", ErrInvalidHeading, pattern)
	}
	return Heading{Level: level, Title: title}, nil
}

// MustParseHeading is like ParseHeading but panics on error.
// Intended for package-level defaults.
func MustParseHeading(pattern string) Heading {
	h, err := ParseHeading(pattern)
	if err != nil {
		panic(err)
	}
	return h
}

// String returns the heading in markdown form.
func (h Heading) String() string {
	if h.Level == 0 {
		return ""
	}
	return strings.Repeat("#", h.Level) + " " + h.Title
}

// Matches reports whether line is this heading.
func (h Heading) Matches(line string) bool {
	if h.Level == 0 {
		return false
	}
	level, title, ok := headingOf(line)
	return ok && level == h.Level && strings.HasPrefix(title, h.Title)
}

// IsHeading reports whether line is an ATX heading of any level.
func IsHeading(line string) bool {
	_, _, ok := headingOf(line)
	return ok
}

// headingOf returns the level and trimmed title of an ATX heading line.
func headingOf(line string) (level int, title string, ok bool) {
	line = strings.TrimRight(line, " \t\r")
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel {
		return 0, "", false
	}
	rest := line[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return 0, "", false
	}
	return level, strings.TrimSpace(rest), true
}

// isFence reports whether line opens or closes a fenced code block.
func isFence(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}
