package ldb

// CallingPoint is a stop before or after the board's station. Only present
// when the board was requested in expanded form.
type CallingPoint struct {
	LocationName string
	Crs          string
	St           *ClockTime
	Et           *Expected
	At           *Expected
	IsCancelled  bool
	Length       int
	DetachFront  bool
}

// StatusNoReport appears in calling point et/at columns when the train has
// passed a location without a recorded time. It is not valid on a service.
const StatusNoReport ExpectedStatus = "No report"

type CallingPointList struct {
	CallingPoints         []CallingPoint
	ServiceType           ServiceType
	ServiceChangeRequired bool
	AssocIsCancelled      bool
}

func buildCallingPoint(raw RawCallingPoint) (CallingPoint, error) {
	if raw.LocationName == nil {
		return CallingPoint{}, missingKey("callingPoint.locationName")
	}

	callingPoint := CallingPoint{
		LocationName: *raw.LocationName,
		IsCancelled:  boolOrFalse(raw.IsCancelled),
		Length:       intOrZero(raw.Length),
		DetachFront:  boolOrFalse(raw.DetachFront),
	}
	if raw.Crs != nil {
		callingPoint.Crs = *raw.Crs
	}

	var err error
	if callingPoint.St, err = ParseClock(raw.St); err != nil {
		return CallingPoint{}, withField(err, "callingPoint.st")
	}
	if callingPoint.Et, err = parseCallingPointExpected(raw.Et); err != nil {
		return CallingPoint{}, withField(err, "callingPoint.et")
	}
	if callingPoint.At, err = parseCallingPointExpected(raw.At); err != nil {
		return CallingPoint{}, withField(err, "callingPoint.at")
	}

	return callingPoint, nil
}

func buildCallingPointLists(raw []RawCallingPointList) ([]CallingPointList, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	lists := make([]CallingPointList, 0, len(raw))
	for _, rawList := range raw {
		list := CallingPointList{
			ServiceType:           ServiceType(intOrZero(rawList.ServiceType)),
			ServiceChangeRequired: boolOrFalse(rawList.ServiceChangeRequired),
			AssocIsCancelled:      boolOrFalse(rawList.AssocIsCancelled),
		}

		for _, rawPoint := range rawList.CallingPoint {
			callingPoint, err := buildCallingPoint(rawPoint)
			if err != nil {
				return nil, err
			}

			list.CallingPoints = append(list.CallingPoints, callingPoint)
		}

		lists = append(lists, list)
	}

	return lists, nil
}

func parseCallingPointExpected(raw *string) (*Expected, error) {
	if raw != nil && ExpectedStatus(*raw) == StatusNoReport {
		return &Expected{Status: StatusNoReport}, nil
	}

	return ParseExpected(raw)
}
