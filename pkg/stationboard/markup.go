package stationboard

import (
	"strings"
)

// Style is a semantic tag that the presentation layer maps to real colours.
type Style string

const (
	StyleSuccess   Style = "success"
	StyleWarning   Style = "warning"
	StyleDanger    Style = "danger"
	StyleSecondary Style = "secondary"
	StyleInfo      Style = "info"
	StylePrimary   Style = "primary"
	StyleLight     Style = "light"
	StyleNeutral   Style = "neutral"
)

var knownStyles = map[Style]bool{
	StyleSuccess:   true,
	StyleWarning:   true,
	StyleDanger:    true,
	StyleSecondary: true,
	StyleInfo:      true,
	StylePrimary:   true,
	StyleLight:     true,
	StyleNeutral:   true,
}

// Markup is text with embedded [style]...[/style] markers. Literal brackets
// and backslashes in the text are escaped with a backslash.
type Markup string

var markupEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`)

// Text escapes plain text for use in markup.
func Text(text string) Markup {
	return Markup(markupEscaper.Replace(text))
}

// Tag styles plain text.
func Tag(style Style, text string) Markup {
	return Wrap(style, Text(text))
}

// Wrap styles a piece of existing markup.
func Wrap(style Style, markup Markup) Markup {
	return Markup("[" + string(style) + "]" + string(markup) + "[/" + string(style) + "]")
}

type Segment struct {
	Text  string
	Style Style
}

// Segments splits markup into styled runs. Unstyled text has an empty Style;
// nested tags take the innermost style. Brackets that do not form a known
// tag are kept as text.
func (m Markup) Segments() []Segment {
	var segments []Segment
	var stack []Style
	var text strings.Builder

	current := func() Style {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1]
	}
	flush := func() {
		if text.Len() > 0 {
			segments = append(segments, Segment{Text: text.String(), Style: current()})
			text.Reset()
		}
	}

	s := string(m)
	for len(s) > 0 {
		if s[0] == '\\' && len(s) > 1 && (s[1] == '\\' || s[1] == '[') {
			text.WriteByte(s[1])
			s = s[2:]
			continue
		}

		if s[0] == '[' {
			if end := strings.IndexByte(s, ']'); end > 0 {
				name := s[1:end]
				closing := strings.HasPrefix(name, "/")
				style := Style(strings.TrimPrefix(name, "/"))

				if knownStyles[style] {
					flush()
					if closing {
						if len(stack) > 0 {
							stack = stack[:len(stack)-1]
						}
					} else {
						stack = append(stack, style)
					}

					s = s[end+1:]
					continue
				}
			}
		}

		text.WriteByte(s[0])
		s = s[1:]
	}
	flush()

	return segments
}

func (m Markup) Plain() string {
	var text strings.Builder
	for _, segment := range m.Segments() {
		text.WriteString(segment.Text)
	}

	return text.String()
}

// Lines splits markup on newlines. Tags never span lines in board output.
func (m Markup) Lines() []Markup {
	parts := strings.Split(string(m), "\n")
	lines := make([]Markup, len(parts))
	for i, part := range parts {
		lines[i] = Markup(part)
	}

	return lines
}
