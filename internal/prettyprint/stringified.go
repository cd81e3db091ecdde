package prettyprint

import (
	"strings"
	"unicode/utf8"

	"github.com/prettyfmt/prettyfmt/internal/utils"
)

// Line is one line of pretty-printed output. display carries the styling
// sequences; width is the rune count of the unstyled content, accumulated as
// text is appended and never derived from the display form.
type Line struct {
	display string
	width   int
}

func (l Line) Display() string { return l.display }

// Width returns the rune count of the line, styling sequences excluded.
func (l Line) Width() int { return l.width }

func (l Line) append(display string, width int) Line {
	l.display += display
	l.width += width
	return l
}

func (l Line) appendLine(other Line) Line {
	return l.append(other.display, other.width)
}

func (l Line) prepend(display string, width int) Line {
	l.display = display + l.display
	l.width += width
	return l
}

func (l Line) appendStyled(pr *Printer, part Part, text string) Line {
	styled := pr.policy.styles.styler(part).apply(text)
	return l.append(styled, utf8.RuneCountInString(text))
}

func (l Line) appendMark(pr *Printer, part Part) Line {
	display, width := pr.styledMark(part)
	return l.append(display, width)
}

// Stringified is an ordered, non-empty sequence of lines: the output of
// folding one node, or of the whole stringification.
type Stringified struct {
	lines []Line
}

func stringifiedFromLine(l Line) Stringified {
	return Stringified{lines: []Line{l}}
}

func (s Stringified) Lines() []Line { return s.lines }

// Join reconstructs the full representation from the lines.
func (s Stringified) Join(sep string) string {
	var b strings.Builder
	for i, l := range s.lines {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(l.display)
	}
	return b.String()
}

func (s Stringified) isSingleLine() bool { return len(s.lines) == 1 }

// flatten forces the value onto one line: continuation lines lose their
// leading indentation and are joined with single spaces.
func (s Stringified) flatten() Line {
	line := s.lines[0]
	for _, l := range s.lines[1:] {
		line = line.append(" ", 1).appendLine(l.trimLeadingSpaces())
	}
	return line
}

func (l Line) trimLeadingSpaces() Line {
	trimmed := strings.TrimLeft(l.display, " ")
	l.width -= len(l.display) - len(trimmed)
	l.display = trimmed
	return l
}

func (s Stringified) maxLineWidth() int {
	widest := 0
	for _, l := range s.lines {
		widest = utils.Max(widest, l.width)
	}
	return widest
}
