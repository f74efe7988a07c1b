package ldb

// Location is an origin or destination point of a service. Services that
// split or join carry more than one.
type Location struct {
	LocationName     string
	Crs              string
	Via              *string
	FutureChangeTo   *string
	AssocIsCancelled bool
}

func buildLocation(raw RawLocation, key string) (Location, error) {
	if raw.LocationName == nil {
		return Location{}, missingKey(key + ".locationName")
	}
	if raw.Crs == nil {
		return Location{}, missingKey(key + ".crs")
	}

	return Location{
		LocationName:     *raw.LocationName,
		Crs:              *raw.Crs,
		Via:              raw.Via,
		FutureChangeTo:   raw.FutureChangeTo,
		AssocIsCancelled: boolOrFalse(raw.AssocIsCancelled),
	}, nil
}

// buildLocations requires a non-empty list under key.
func buildLocations(raw []RawLocation, key string) ([]Location, error) {
	if len(raw) == 0 {
		return nil, missingKey(key)
	}

	locations := make([]Location, 0, len(raw))
	for _, rawLocation := range raw {
		location, err := buildLocation(rawLocation, key)
		if err != nil {
			return nil, err
		}

		locations = append(locations, location)
	}

	return locations, nil
}
