package ldb

// Raw* types mirror the Huxley JSON payload. Every field is a pointer so the
// builders can tell an absent or null key apart from a zero value.

type RawBoard struct {
	TrainServices        []RawService `json:"trainServices"`
	BusServices          []RawService `json:"busServices"`
	FerryServices        []RawService `json:"ferryServices"`
	GeneratedAt          *string      `json:"generatedAt"`
	LocationName         *string      `json:"locationName"`
	Crs                  *string      `json:"crs"`
	NrccMessages         []RawMessage `json:"nrccMessages"`
	PlatformAvailable    *bool        `json:"platformAvailable"`
	AreServicesAvailable *bool        `json:"areServicesAvailable"`
}

type RawMessage struct {
	Value *string `json:"value"`
}

type RawService struct {
	Formation               *RawFormation         `json:"formation"`
	Origin                  []RawLocation         `json:"origin"`
	Destination             []RawLocation         `json:"destination"`
	PreviousCallingPoints   []RawCallingPointList `json:"previousCallingPoints"`
	SubsequentCallingPoints []RawCallingPointList `json:"subsequentCallingPoints"`
	Rsid                    *string               `json:"rsid"`
	Sta                     *string               `json:"sta"`
	Eta                     *string               `json:"eta"`
	Std                     *string               `json:"std"`
	Etd                     *string               `json:"etd"`
	Platform                *string               `json:"platform"`
	Operator                *string               `json:"operator"`
	OperatorCode            *string               `json:"operatorCode"`
	IsCircularRoute         *bool                 `json:"isCircularRoute"`
	IsCancelled             *bool                 `json:"isCancelled"`
	ServiceType             *int                  `json:"serviceType"`
	Length                  *int                  `json:"length"`
	DetachFront             *bool                 `json:"detachFront"`
	IsReverseFormation      *bool                 `json:"isReverseFormation"`
	CancelReason            *string               `json:"cancelReason"`
	DelayReason             *string               `json:"delayReason"`
	ServiceID               *string               `json:"serviceID"`
	ServiceIDGUID           *string               `json:"serviceIdGuid"`
}

type RawLocation struct {
	LocationName     *string `json:"locationName"`
	Crs              *string `json:"crs"`
	Via              *string `json:"via"`
	FutureChangeTo   *string `json:"futureChangeTo"`
	AssocIsCancelled *bool   `json:"assocIsCancelled"`
}

type RawFormation struct {
	AvgLoading          *int       `json:"avgLoading"`
	AvgLoadingSpecified *bool      `json:"avgLoadingSpecified"`
	Coaches             []RawCoach `json:"coaches"`
}

type RawCoach struct {
	CoachClass       *string    `json:"coachClass"`
	Toilet           *RawToilet `json:"toilet"`
	Loading          *int       `json:"loading"`
	LoadingSpecified *bool      `json:"loadingSpecified"`
	Number           *string    `json:"number"`
}

type RawToilet struct {
	Status *int    `json:"status"`
	Value  *string `json:"value"`
}

type RawCallingPointList struct {
	CallingPoint          []RawCallingPoint `json:"callingPoint"`
	ServiceType           *int              `json:"serviceType"`
	ServiceChangeRequired *bool             `json:"serviceChangeRequired"`
	AssocIsCancelled      *bool             `json:"assocIsCancelled"`
}

type RawCallingPoint struct {
	LocationName *string `json:"locationName"`
	Crs          *string `json:"crs"`
	St           *string `json:"st"`
	Et           *string `json:"et"`
	At           *string `json:"at"`
	IsCancelled  *bool   `json:"isCancelled"`
	Length       *int    `json:"length"`
	DetachFront  *bool   `json:"detachFront"`
}

func boolOrFalse(value *bool) bool {
	return value != nil && *value
}

func intOrZero(value *int) int {
	if value == nil {
		return 0
	}

	return *value
}
