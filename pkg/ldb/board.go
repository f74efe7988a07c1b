package ldb

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	_ "time/tzdata"
)

// DisplayTimezone is the zone every board timestamp is normalised to.
const DisplayTimezone = "Europe/London"

var displayLocation = mustLoadLocation(DisplayTimezone)

var now = time.Now

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}

	return location
}

type Message struct {
	Value string
}

// Board is one departure or arrival board for a station.
type Board struct {
	LocationName *string
	Crs          *string
	GeneratedAt  time.Time

	AreServicesAvailable bool
	PlatformAvailable    bool

	TrainServices []*Service
	BusServices   []*Service
	FerryServices []*Service

	NrccMessages []Message
}

// DisplayName is the station name, or a placeholder naming the CRS code when
// the payload did not carry one.
func (b *Board) DisplayName(crs string) string {
	if b.LocationName != nil {
		return *b.LocationName
	}
	if b.Crs != nil {
		crs = *b.Crs
	}

	return fmt.Sprintf("Unknown location: '%s'", crs)
}

// Services returns train, bus and ferry services in that order.
func (b *Board) Services() []*Service {
	services := make([]*Service, 0, len(b.TrainServices)+len(b.BusServices)+len(b.FerryServices))
	services = append(services, b.TrainServices...)
	services = append(services, b.BusServices...)
	services = append(services, b.FerryServices...)

	return services
}

func DecodeBoard(r io.Reader) (*Board, error) {
	var raw RawBoard
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, translateDecodeError(err)
	}

	return BuildBoard(&raw)
}

func ParseBoard(data []byte) (*Board, error) {
	return DecodeBoard(bytes.NewReader(data))
}

func translateDecodeError(err error) error {
	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		key := typeError.Field
		if key == "" {
			key = "(root)"
		}

		return &SchemaViolationError{
			Key:    key,
			Reason: fmt.Sprintf("has JSON type %s, expected %s", typeError.Value, typeError.Type),
		}
	}

	return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
}

func BuildBoard(raw *RawBoard) (*Board, error) {
	if raw == nil {
		return nil, missingKey("(root)")
	}

	generatedAt, err := parseGeneratedAt(raw.GeneratedAt)
	if err != nil {
		return nil, err
	}

	board := &Board{
		LocationName:         raw.LocationName,
		Crs:                  raw.Crs,
		GeneratedAt:          generatedAt,
		AreServicesAvailable: boolOrFalse(raw.AreServicesAvailable),
		PlatformAvailable:    boolOrFalse(raw.PlatformAvailable),
	}

	if board.TrainServices, err = buildServices(raw.TrainServices, "trainServices"); err != nil {
		return nil, err
	}
	if board.BusServices, err = buildServices(raw.BusServices, "busServices"); err != nil {
		return nil, err
	}
	if board.FerryServices, err = buildServices(raw.FerryServices, "ferryServices"); err != nil {
		return nil, err
	}

	board.NrccMessages = make([]Message, 0, len(raw.NrccMessages))
	for _, message := range raw.NrccMessages {
		if message.Value == nil {
			return nil, missingKey("nrccMessages.value")
		}

		board.NrccMessages = append(board.NrccMessages, Message{Value: *message.Value})
	}

	return board, nil
}

func buildServices(raw []RawService, key string) ([]*Service, error) {
	services := make([]*Service, 0, len(raw))

	for i, rawService := range raw {
		service, err := BuildService(rawService)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}

		services = append(services, service)
	}

	return services, nil
}

// parseGeneratedAt reads the board timestamp. Timestamps without an offset
// are taken as UTC.
func parseGeneratedAt(raw *string) (time.Time, error) {
	if raw == nil {
		return now().In(displayLocation), nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, *raw)
	if err != nil {
		var utcErr error
		parsed, utcErr = time.ParseInLocation("2006-01-02T15:04:05.999999999", *raw, time.UTC)
		if utcErr != nil {
			return time.Time{}, &MalformedTimeError{Field: "generatedAt", Value: *raw}
		}
	}

	return parsed.In(displayLocation), nil
}
