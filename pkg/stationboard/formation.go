package stationboard

import (
	"fmt"
	"strings"

	"github.com/travigo/railboard/pkg/ldb"
)

const (
	formationMarker         = "◢"
	formationMarkerReversed = "◣"
	coachWithToilet         = "■"
	coachWithoutToilet      = "◻"
)

// FormationDiagram draws one glyph per coach in train order, prefixed with a
// direction marker and followed by the coach count. Coaches with a working
// toilet are filled; first class coaches are styled primary.
func FormationDiagram(formation *ldb.Formation, reversed bool) Markup {
	if formation == nil || len(formation.Coaches) == 0 {
		return ""
	}

	var diagram strings.Builder
	if reversed {
		diagram.WriteString(formationMarkerReversed)
	} else {
		diagram.WriteString(formationMarker)
	}

	for _, coach := range formation.Coaches {
		glyph := coachWithoutToilet
		if coach.Toilet.IsWorking() {
			glyph = coachWithToilet
		}

		tint := StyleLight
		if coach.IsFirstClass() {
			tint = StylePrimary
		}

		diagram.WriteString(string(Tag(tint, glyph)))
	}

	fmt.Fprintf(&diagram, " %d", len(formation.Coaches))

	return Markup(diagram.String())
}
