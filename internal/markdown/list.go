package markdown

import "strings"

// ListOptions controls ListItems.
type ListOptions struct {
	StripEmphasis bool // remove "**" and "__" from items
	TopLevelOnly  bool // ignore indented bullets
}

// ListItems returns the text of every bullet line in text, in order.
// The bullet marker and surrounding whitespace are removed; empty items are
// skipped.
func ListItems(text string, opts ListOptions) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		item, indent, ok := bulletOf(line)
		if !ok || item == "" {
			continue
		}
		if opts.TopLevelOnly && indent > 0 {
			continue
		}
		if opts.StripEmphasis {
			item = StripEmphasis(item)
		}
		items = append(items, item)
	}
	return items
}

// BoldItems returns bullets whose whole text is bold ("- **X**"), unwrapped.
func BoldItems(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		item, _, ok := bulletOf(line)
		if !ok {
			continue
		}
		if inner, bold := unwrapBold(item); bold && inner != "" {
			items = append(items, inner)
		}
	}
	return items
}

// lineKind classifies a line for MergedItems.
type lineKind int

const (
	lineBlank lineKind = iota
	lineHeading
	lineTopBullet
	lineSubBullet
	lineText
)

// mergeState is the state of the item merger.
type mergeState int

const (
	stateIdle mergeState = iota
	stateAccumulating
)

// itemMerger builds multi-clause items from a bullet list: sub-bullets and
// continuation lines are appended to the current top-level item. Blank lines
// do not end an item, so loose lists merge like tight ones.
//
//	idle         + top bullet -> accumulating (start item)
//	idle         + sub/text   -> idle (dropped)
//	accumulating + top bullet -> accumulating (flush, start item)
//	accumulating + sub/text   -> accumulating (append)
//	any          + blank      -> unchanged
//	any          + heading    -> idle (flush)
type itemMerger struct {
	state   mergeState
	current []string
	items   []string
	dropped []string
}

func (m *itemMerger) feed(kind lineKind, text string) {
	switch kind {
	case lineTopBullet:
		m.flush()
		if inner, bold := unwrapBold(text); bold {
			text = inner
		}
		m.current = []string{text}
		m.state = stateAccumulating
	case lineSubBullet, lineText:
		if m.state == stateAccumulating {
			m.current = append(m.current, text)
		} else {
			m.dropped = append(m.dropped, text)
		}
	case lineHeading:
		m.flush()
	}
}

func (m *itemMerger) flush() {
	if m.state == stateAccumulating {
		if item := strings.TrimSpace(strings.Join(m.current, " ")); item != "" {
			m.items = append(m.items, item)
		}
	}
	m.current = nil
	m.state = stateIdle
}

// MergedItems returns one string per top-level bullet in text, with its
// sub-bullets and continuation lines joined by a single space.
// A fully bold bullet head ("- **X**") is unwrapped. Lines that belong to no
// bullet (before the first one or after a heading) are returned in dropped.
func MergedItems(text string) (items, dropped []string) {
	m := &itemMerger{}
	for _, line := range strings.Split(text, "\n") {
		kind, content := classify(line)
		m.feed(kind, content)
	}
	m.flush()
	return m.items, m.dropped
}

// classify returns the kind of line and its content without markers.
func classify(line string) (lineKind, string) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return lineBlank, ""
	case IsHeading(trimmed):
		return lineHeading, ""
	}
	if item, indent, ok := bulletOf(line); ok {
		if indent > 0 {
			return lineSubBullet, item
		}
		return lineTopBullet, item
	}
	return lineText, trimmed
}

// bulletOf parses a bullet line, returning its text and indentation width.
// Tabs count as four columns.
func bulletOf(line string) (item string, indent int, ok bool) {
	line = strings.TrimRight(line, " \t\r")
	for _, r := range line {
		switch r {
		case ' ':
			indent++
			continue
		case '\t':
			indent += 4
			continue
		}
		break
	}
	rest := strings.TrimLeft(line, " \t")
	if len(rest) < 2 {
		return "", 0, false
	}
	switch rest[0] {
	case '-', '*', '+':
	default:
		return "", 0, false
	}
	if rest[1] != ' ' && rest[1] != '\t' {
		return "", 0, false
	}
	return strings.TrimSpace(rest[2:]), indent, true
}

// unwrapBold returns the inner text of "**X**".
func unwrapBold(s string) (string, bool) {
	if len(s) < 4 || !strings.HasPrefix(s, "**") || !strings.HasSuffix(s, "**") {
		return s, false
	}
	inner := s[2 : len(s)-2]
	if strings.Contains(inner, "**") {
		return s, false
	}
	return strings.TrimSpace(inner), true
}
