package stationboard

import (
	"fmt"
	"time"

	"github.com/travigo/railboard/pkg/ldb"
)

type Config struct {
	Direction         ldb.Direction
	ShowMessages      bool
	ShowFormation     bool
	ShowCallingPoints bool
}

type Row struct {
	Mode        string    `json:"mode" groups:"basic,detailed"`
	Time        string    `json:"time" groups:"basic,detailed"`
	Location    Markup    `json:"location" groups:"basic,detailed"`
	Platform    string    `json:"platform" groups:"basic,detailed"`
	Status      Markup    `json:"status" groups:"basic,detailed"`
	StatusStyle Style     `json:"statusStyle" groups:"basic,detailed"`
	Operator    string    `json:"operator" groups:"basic,detailed"`
	Cancelled   bool      `json:"cancelled" groups:"detailed"`
	ServiceID   string    `json:"serviceId,omitempty" groups:"detailed"`
	ScheduledAt time.Time `json:"scheduledAt,omitempty" groups:"detailed"`
}

type Result struct {
	Station        string    `json:"station" groups:"basic,detailed"`
	Title          string    `json:"title" groups:"basic,detailed"`
	LocationHeader string    `json:"locationHeader" groups:"basic,detailed"`
	GeneratedAt    time.Time `json:"generatedAt" groups:"basic,detailed"`
	Rows           []Row     `json:"rows" groups:"basic,detailed"`
	Messages       []string  `json:"messages" groups:"basic,detailed"`
}

// Render turns a board into display rows. Services keep the order the source
// delivered them in.
func Render(board *ldb.Board, crs string, cfg Config) Result {
	direction := cfg.Direction
	if direction == "" {
		direction = ldb.DirectionDepartures
	}

	titleSuffix := "Departures"
	locationHeader := "Destination"
	if direction == ldb.DirectionArrivals {
		titleSuffix = "Arrivals"
		locationHeader = "Origin"
	}

	result := Result{
		Station:        crs,
		Title:          fmt.Sprintf("%s: %s", board.DisplayName(crs), titleSuffix),
		LocationHeader: locationHeader,
		GeneratedAt:    board.GeneratedAt,
		Rows:           make([]Row, 0, len(board.TrainServices)+len(board.BusServices)+len(board.FerryServices)),
		Messages:       []string{},
	}

	for _, service := range board.Services() {
		result.Rows = append(result.Rows, renderRow(service, board.GeneratedAt, direction, cfg))
	}

	if cfg.ShowMessages {
		result.Messages = SanitizeMessages(board.NrccMessages)
	}

	return result
}

func renderRow(service *ldb.Service, generatedAt time.Time, direction ldb.Direction, cfg Config) Row {
	status, statusStyle := StatusTag(service, direction)

	row := Row{
		Mode:        service.ServiceType.String(),
		Time:        emDash,
		Location:    locationColumn(service, direction, cfg),
		Platform:    "-",
		Status:      status,
		StatusStyle: statusStyle,
		Operator:    service.OperatorShortName(),
		Cancelled:   service.IsCancelled,
	}

	if scheduled := service.Scheduled(direction); scheduled != nil {
		row.Time = scheduled.String()
		row.ScheduledAt = scheduledAt(*scheduled, generatedAt)
	}
	if service.Platform != nil {
		row.Platform = *service.Platform
	}
	if service.ServiceIDGUID != nil {
		row.ServiceID = *service.ServiceIDGUID
	} else if service.ServiceID != nil {
		row.ServiceID = *service.ServiceID
	}

	return row
}

func locationColumn(service *ldb.Service, direction ldb.Direction, cfg Config) Markup {
	location := FormatLocations(service.Locations(direction))

	if reason := Annotation(service); reason != "" {
		location += "\n" + Tag(StyleSecondary, reason)
	}

	if cfg.ShowFormation && !service.IsCancelled {
		if diagram := FormationDiagram(service.Formation, service.IsReverseFormation); diagram != "" {
			location += "\n" + diagram
		}
	}

	if cfg.ShowCallingPoints {
		if callingPoints := CallingPointsLine(service.CallingPoints(direction)); callingPoints != "" {
			location += "\n" + callingPoints
		}
	}

	return location
}

// Annotation picks the reason line shown under a service: the cancellation
// reason for a cancelled service, otherwise the delay reason when no
// cancellation reason is present.
func Annotation(service *ldb.Service) string {
	if service.IsCancelled && service.CancelReason != nil {
		return *service.CancelReason
	}
	if service.DelayReason != nil && service.CancelReason == nil {
		return *service.DelayReason
	}

	return ""
}

// scheduledAt places a board clock time on the calendar, rolling over
// midnight when the time is far behind the board timestamp.
func scheduledAt(clock ldb.ClockTime, generatedAt time.Time) time.Time {
	scheduled := clock.On(generatedAt)

	if generatedAt.Sub(scheduled) > 12*time.Hour {
		scheduled = scheduled.AddDate(0, 0, 1)
	} else if scheduled.Sub(generatedAt) > 12*time.Hour {
		scheduled = scheduled.AddDate(0, 0, -1)
	}

	return scheduled
}
