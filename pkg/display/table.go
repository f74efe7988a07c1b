package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/travigo/railboard/pkg/stationboard"
	"github.com/travigo/railboard/pkg/util"
)

const (
	timeWidth     = 6
	locationWidth = 45
	platformWidth = 4
	expectedWidth = 9
	operatorWidth = 16

	columnGap  = "  "
	tableWidth = timeWidth + locationWidth + platformWidth + expectedWidth + operatorWidth + 4*len(columnGap)
)

type rgb struct {
	r, g, b uint8
}

var palette = map[stationboard.Style]rgb{
	stationboard.StyleSuccess:   {0x19, 0x87, 0x54},
	stationboard.StyleWarning:   {0xff, 0xc1, 0x07},
	stationboard.StyleLight:     {0xf8, 0xf9, 0xfa},
	stationboard.StyleInfo:      {0x0d, 0xca, 0xf0},
	stationboard.StylePrimary:   {0x0d, 0x6e, 0xfd},
	stationboard.StyleDanger:    {0xdc, 0x35, 0x45},
	stationboard.StyleSecondary: {0x6c, 0x75, 0x7d},
}

// cell is a run of styled segments that is measured on its plain text.
type cell []stationboard.Segment

func (c cell) width() int {
	width := 0
	for _, segment := range c {
		width += runewidth.StringWidth(segment.Text)
	}

	return width
}

// painter writes segments as 24-bit ANSI colour, or as plain text when
// colour is off.
type painter struct {
	colour bool
}

func (p painter) paint(segments cell, fallback stationboard.Style) string {
	var out strings.Builder
	for _, segment := range segments {
		style := segment.Style
		if style == "" {
			style = fallback
		}

		out.WriteString(p.colourise(segment.Text, style, false))
	}

	return out.String()
}

func (p painter) colourise(text string, style stationboard.Style, background bool) string {
	colour, ok := palette[style]
	if !p.colour || !ok || text == "" {
		return text
	}

	layer := 38
	if background {
		layer = 48
	}

	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm%s\x1b[0m", layer, colour.r, colour.g, colour.b, text)
}

func (p painter) bold(text string) string {
	if !p.colour {
		return text
	}

	return "\x1b[1m" + text + "\x1b[0m"
}

// column pads a painted cell to its width. Right aligned columns are padded
// on the left.
func (p painter) column(c cell, width int, right bool, fallback stationboard.Style) string {
	padding := strings.Repeat(" ", max(width-c.width(), 0))
	if right {
		return padding + p.paint(c, fallback)
	}

	return p.paint(c, fallback) + padding
}

// WriteTable prints a rendered board as a fixed width table followed by its
// messages.
func WriteTable(w io.Writer, result stationboard.Result, colour bool) error {
	p := painter{colour: colour}
	var out strings.Builder

	title := util.Centre(result.Title, tableWidth)
	if colour {
		light := palette[stationboard.StyleLight]
		primary := palette[stationboard.StylePrimary]
		title = fmt.Sprintf("\x1b[1;38;2;%d;%d;%d;48;2;%d;%d;%dm%s\x1b[0m",
			light.r, light.g, light.b, primary.r, primary.g, primary.b, title)
	}
	out.WriteString(title + "\n")

	header := strings.Join([]string{
		util.PadRight("Time", timeWidth),
		util.PadRight(result.LocationHeader, locationWidth),
		util.PadLeft("Plat", platformWidth),
		util.PadLeft("Expected", expectedWidth),
		util.PadLeft("Operator", operatorWidth),
	}, columnGap)
	out.WriteString(p.bold(header) + "\n")
	out.WriteString(p.colourise(strings.Repeat("─", tableWidth), stationboard.StyleSecondary, false) + "\n")

	for _, row := range result.Rows {
		writeRow(&out, p, row)
	}

	for _, message := range result.Messages {
		out.WriteString("\n")
		for _, line := range wrapText(message, tableWidth) {
			out.WriteString(p.colourise(util.Centre(line, tableWidth), stationboard.StyleSecondary, false) + "\n")
		}
	}

	_, err := io.WriteString(w, out.String())
	return err
}

func writeRow(out *strings.Builder, p painter, row stationboard.Row) {
	var locationLines []cell
	for _, line := range row.Location.Lines() {
		locationLines = append(locationLines, wrapSegments(line.Segments(), locationWidth)...)
	}
	if len(locationLines) == 0 {
		locationLines = []cell{nil}
	}

	operator := runewidth.Truncate(row.Operator, operatorWidth, "")

	for i, location := range locationLines {
		columns := []string{
			strings.Repeat(" ", timeWidth),
			p.column(location, locationWidth, false, stationboard.StyleWarning),
		}

		if i == 0 {
			columns[0] = util.PadRight(row.Time, timeWidth)
			columns = append(columns,
				util.PadLeft(runewidth.Truncate(row.Platform, platformWidth, ""), platformWidth),
				p.column(row.Status.Segments(), expectedWidth, true, ""),
				p.column(cell{{Text: operator}}, operatorWidth, true, stationboard.StyleInfo),
			)
		}

		out.WriteString(strings.TrimRight(strings.Join(columns, columnGap), " ") + "\n")
	}
}

// wrapSegments breaks a styled line into lines no wider than width, breaking
// on spaces where possible.
func wrapSegments(segments []stationboard.Segment, width int) []cell {
	var lines []cell
	var current cell
	currentWidth := 0

	for _, word := range splitWords(segments) {
		wordWidth := runewidth.StringWidth(word.Text)
		trimmed := strings.TrimRight(word.Text, " ")

		if currentWidth > 0 && currentWidth+runewidth.StringWidth(trimmed) > width {
			lines = append(lines, trimCell(current))
			current = nil
			currentWidth = 0
		}

		for wordWidth > width {
			head := runewidth.Truncate(word.Text, width, "")
			lines = append(lines, cell{{Text: head, Style: word.Style}})
			word.Text = strings.TrimPrefix(word.Text, head)
			wordWidth = runewidth.StringWidth(word.Text)
		}

		if word.Text != "" {
			current = append(current, word)
			currentWidth += wordWidth
		}
	}

	if len(current) > 0 {
		lines = append(lines, trimCell(current))
	}

	return lines
}

// splitWords cuts segments into words that keep their trailing spaces and
// their style.
func splitWords(segments []stationboard.Segment) []stationboard.Segment {
	var words []stationboard.Segment
	for _, segment := range segments {
		text := segment.Text
		for text != "" {
			end := strings.IndexByte(text, ' ')
			if end < 0 {
				end = len(text)
			} else {
				for end < len(text) && text[end] == ' ' {
					end++
				}
			}

			words = append(words, stationboard.Segment{Text: text[:end], Style: segment.Style})
			text = text[end:]
		}
	}

	return words
}

// trimCell merges neighbouring segments of the same style and drops the
// trailing space of the line.
func trimCell(c cell) cell {
	var merged cell
	for _, segment := range c {
		if n := len(merged); n > 0 && merged[n-1].Style == segment.Style {
			merged[n-1].Text += segment.Text
			continue
		}
		merged = append(merged, segment)
	}

	if n := len(merged); n > 0 {
		merged[n-1].Text = strings.TrimRight(merged[n-1].Text, " ")
		if merged[n-1].Text == "" {
			merged = merged[:n-1]
		}
	}

	return merged
}

func wrapText(text string, width int) []string {
	var lines []string
	for _, line := range wrapSegments([]stationboard.Segment{{Text: text}}, width) {
		var plain strings.Builder
		for _, segment := range line {
			plain.WriteString(segment.Text)
		}
		lines = append(lines, plain.String())
	}

	return lines
}
