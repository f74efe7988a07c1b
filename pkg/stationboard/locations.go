package stationboard

import (
	"strings"

	"github.com/travigo/railboard/pkg/ldb"
)

// PluralizeLocations joins items as "A", "A and B" or "A, B and C", with the
// separators styled secondary.
func PluralizeLocations(items []Markup) Markup {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}

	and := " " + Tag(StyleSecondary, "and") + " "
	comma := Tag(StyleSecondary, ",") + " "

	head := make([]string, len(items)-1)
	for i, item := range items[:len(items)-1] {
		head[i] = string(item)
	}

	return Markup(strings.Join(head, string(comma))) + and + items[len(items)-1]
}

func locationMarkup(location ldb.Location) Markup {
	if location.Via == nil {
		return Text(location.LocationName)
	}

	return Text(location.LocationName) + " " + Tag(StyleNeutral, *location.Via)
}

// FormatLocations renders destinations or origins, including any via notes.
func FormatLocations(locations []ldb.Location) Markup {
	items := make([]Markup, len(locations))
	for i, location := range locations {
		items[i] = locationMarkup(location)
	}

	return PluralizeLocations(items)
}
