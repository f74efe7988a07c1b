package ldb

// ToiletStatusInService is the toilet status code for a working toilet.
const ToiletStatusInService = 1

const CoachClassFirst = "First"

type Toilet struct {
	Status int
	Value  string
}

func (t *Toilet) IsWorking() bool {
	return t != nil && t.Status == ToiletStatusInService
}

type Coach struct {
	Number           string
	CoachClass       string
	Loading          int
	LoadingSpecified bool
	Toilet           *Toilet
}

func (c Coach) IsFirstClass() bool {
	return c.CoachClass == CoachClassFirst
}

type Formation struct {
	AvgLoading          int
	AvgLoadingSpecified bool
	Coaches             []Coach
}

func buildToilet(raw *RawToilet) (*Toilet, error) {
	if raw == nil {
		return nil, nil
	}
	if raw.Status == nil {
		return nil, missingKey("toilet.status")
	}

	toilet := &Toilet{Status: *raw.Status}
	if raw.Value != nil {
		toilet.Value = *raw.Value
	}

	return toilet, nil
}

func buildCoach(raw RawCoach) (Coach, error) {
	if raw.CoachClass == nil {
		return Coach{}, missingKey("coach.coachClass")
	}
	if raw.Number == nil {
		return Coach{}, missingKey("coach.number")
	}

	toilet, err := buildToilet(raw.Toilet)
	if err != nil {
		return Coach{}, err
	}

	return Coach{
		Number:           *raw.Number,
		CoachClass:       *raw.CoachClass,
		Loading:          intOrZero(raw.Loading),
		LoadingSpecified: boolOrFalse(raw.LoadingSpecified),
		Toilet:           toilet,
	}, nil
}

func buildFormation(raw *RawFormation) (*Formation, error) {
	if raw == nil {
		return nil, nil
	}

	formation := &Formation{
		AvgLoading:          intOrZero(raw.AvgLoading),
		AvgLoadingSpecified: boolOrFalse(raw.AvgLoadingSpecified),
		Coaches:             make([]Coach, 0, len(raw.Coaches)),
	}

	for _, rawCoach := range raw.Coaches {
		coach, err := buildCoach(rawCoach)
		if err != nil {
			return nil, err
		}

		formation.Coaches = append(formation.Coaches, coach)
	}

	return formation, nil
}
