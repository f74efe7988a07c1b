package stationboard

import (
	"github.com/travigo/railboard/pkg/ldb"
)

// CallingPointsLine lists calling points with their scheduled times, e.g.
// "Calling at: Woking (10:20), Basingstoke (10:45) and Salisbury". Cancelled
// calls are styled danger.
func CallingPointsLine(lists []ldb.CallingPointList) Markup {
	var items []Markup

	for _, list := range lists {
		for _, callingPoint := range list.CallingPoints {
			item := Text(callingPoint.LocationName)
			if callingPoint.St != nil {
				item += Markup(" (" + callingPoint.St.String() + ")")
			}
			if callingPoint.IsCancelled {
				item = Wrap(StyleDanger, item)
			}

			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return ""
	}

	return Tag(StyleSecondary, "Calling at:") + " " + PluralizeLocations(items)
}
