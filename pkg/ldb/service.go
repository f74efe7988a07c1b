package ldb

import "fmt"

type Direction string

const (
	DirectionDepartures Direction = "departures"
	DirectionArrivals   Direction = "arrivals"
)

func ParseDirection(value string) (Direction, error) {
	switch Direction(value) {
	case DirectionDepartures, "":
		return DirectionDepartures, nil
	case DirectionArrivals:
		return DirectionArrivals, nil
	default:
		return "", fmt.Errorf("unknown board direction %q", value)
	}
}

type ServiceType int

const (
	ServiceTypeTrain ServiceType = iota
	ServiceTypeBus
	ServiceTypeFerry
)

func (s ServiceType) String() string {
	switch s {
	case ServiceTypeTrain:
		return "train"
	case ServiceTypeBus:
		return "bus"
	case ServiceTypeFerry:
		return "ferry"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Service is a single train, bus or ferry on a board.
type Service struct {
	Std *ClockTime
	Sta *ClockTime
	Etd *Expected
	Eta *Expected

	Platform *string

	Operator     string
	OperatorCode string

	IsCancelled        bool
	IsCircularRoute    bool
	IsReverseFormation bool
	DetachFront        bool

	CancelReason *string
	DelayReason  *string

	Formation *Formation

	Destination []Location
	Origin      []Location

	PreviousCallingPoints   []CallingPointList
	SubsequentCallingPoints []CallingPointList

	ServiceID     *string
	ServiceIDGUID *string
	Rsid          *string
	ServiceType   ServiceType
	Length        int
}

// Scheduled returns the scheduled time for the board direction.
func (s *Service) Scheduled(direction Direction) *ClockTime {
	if direction == DirectionArrivals {
		return s.Sta
	}

	return s.Std
}

// Expected returns the estimated time for the board direction.
func (s *Service) Expected(direction Direction) *Expected {
	if direction == DirectionArrivals {
		return s.Eta
	}

	return s.Etd
}

// Locations returns destinations for a departure board and origins for an
// arrival board.
func (s *Service) Locations(direction Direction) []Location {
	if direction == DirectionArrivals {
		return s.Origin
	}

	return s.Destination
}

// CallingPoints returns the calling points relevant to the board direction:
// those still to come on departure, those already served on arrival.
func (s *Service) CallingPoints(direction Direction) []CallingPointList {
	if direction == DirectionArrivals {
		return s.PreviousCallingPoints
	}

	return s.SubsequentCallingPoints
}

func (s *Service) OperatorShortName() string {
	return OperatorShortName(s.OperatorCode, s.Operator)
}

// BuildService validates and converts a raw service.
func BuildService(raw RawService) (*Service, error) {
	switch {
	case raw.IsCancelled == nil:
		return nil, missingKey("isCancelled")
	case raw.IsCircularRoute == nil:
		return nil, missingKey("isCircularRoute")
	case raw.Operator == nil:
		return nil, missingKey("operator")
	case raw.OperatorCode == nil:
		return nil, missingKey("operatorCode")
	case raw.ServiceType == nil:
		return nil, missingKey("serviceType")
	}

	destination, err := buildLocations(raw.Destination, "destination")
	if err != nil {
		return nil, err
	}
	origin, err := buildLocations(raw.Origin, "origin")
	if err != nil {
		return nil, err
	}

	service := &Service{
		Platform:           raw.Platform,
		Operator:           *raw.Operator,
		OperatorCode:       *raw.OperatorCode,
		IsCancelled:        *raw.IsCancelled,
		IsCircularRoute:    *raw.IsCircularRoute,
		IsReverseFormation: boolOrFalse(raw.IsReverseFormation),
		DetachFront:        boolOrFalse(raw.DetachFront),
		CancelReason:       raw.CancelReason,
		DelayReason:        raw.DelayReason,
		Destination:        destination,
		Origin:             origin,
		ServiceID:          raw.ServiceID,
		ServiceIDGUID:      raw.ServiceIDGUID,
		Rsid:               raw.Rsid,
		ServiceType:        ServiceType(*raw.ServiceType),
		Length:             intOrZero(raw.Length),
	}

	if service.Std, err = ParseClock(raw.Std); err != nil {
		return nil, withField(err, "std")
	}
	if service.Sta, err = ParseClock(raw.Sta); err != nil {
		return nil, withField(err, "sta")
	}
	if service.Etd, err = ParseExpected(raw.Etd); err != nil {
		return nil, withField(err, "etd")
	}
	if service.Eta, err = ParseExpected(raw.Eta); err != nil {
		return nil, withField(err, "eta")
	}

	if service.Formation, err = buildFormation(raw.Formation); err != nil {
		return nil, err
	}

	if service.PreviousCallingPoints, err = buildCallingPointLists(raw.PreviousCallingPoints); err != nil {
		return nil, err
	}
	if service.SubsequentCallingPoints, err = buildCallingPointLists(raw.SubsequentCallingPoints); err != nil {
		return nil, err
	}

	return service, nil
}
