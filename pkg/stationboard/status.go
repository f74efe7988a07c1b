package stationboard

import (
	"github.com/travigo/railboard/pkg/ldb"
)

const emDash = "—"

// StatusTag renders the expected time column and the single style that
// applies to it.
func StatusTag(service *ldb.Service, direction ldb.Direction) (Markup, Style) {
	expected := service.Expected(direction)

	var style Style
	switch {
	case expected == nil:
		return Tag(StyleNeutral, emDash), StyleNeutral
	case expected.Status == ldb.StatusOnTime:
		style = StyleSuccess
	case expected.Status == ldb.StatusDelayed:
		style = StyleWarning
	case expected.Status == ldb.StatusCancelled && service.IsCancelled:
		style = StyleDanger
	case expected.Status == ldb.StatusCancelled:
		style = StyleNeutral
	case expected.Time != nil:
		scheduled := service.Scheduled(direction)
		if scheduled != nil && expected.Time.Equal(*scheduled) {
			style = StyleSuccess
		} else {
			style = StyleWarning
		}
	default:
		style = StyleNeutral
	}

	return Tag(style, expected.String()), style
}
