package solaredge

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/solarmon/go-solaredge/quantity"
)

// Wire formats for the API's date and time fields. Both are site-local
// "naive" values without a zone designator; they are parsed in the local
// location so arithmetic against time.Now is unit-correct.
const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

func requireString(field string, v *string) (string, error) {
	if v == nil {
		return "", newParseError(field, nil)
	}
	return *v, nil
}

func requireInt(field string, v *int64) (int64, error) {
	if v == nil {
		return 0, newParseError(field, nil)
	}
	return *v, nil
}

func requireTimestamp(field string, v *string) (time.Time, error) {
	if v == nil {
		return time.Time{}, newParseError(field, nil)
	}
	t, err := time.ParseInLocation(timestampLayout, *v, time.Local)
	if err != nil {
		return time.Time{}, newParseError(field, err)
	}
	return t, nil
}

func requireDate(field string, v *string) (time.Time, error) {
	if v == nil {
		return time.Time{}, newParseError(field, nil)
	}
	t, err := time.ParseInLocation(dateLayout, *v, time.Local)
	if err != nil {
		return time.Time{}, newParseError(field, err)
	}
	return t, nil
}

func optionalDate(field string, v *string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, *v, time.Local)
	if err != nil {
		return nil, newParseError(field, err)
	}
	return &t, nil
}

// requirePowerKW parses a power field the API expresses in kilowatts
// (site peak power, module maximum power).
func requirePowerKW(field string, v *float64) (quantity.Power, error) {
	if v == nil {
		return 0, newParseError(field, nil)
	}
	return quantity.Kilowatts(*v), nil
}

// requirePowerW parses a power field the API expresses in watts
// (current production).
func requirePowerW(field string, v *float64) (quantity.Power, error) {
	if v == nil {
		return 0, newParseError(field, nil)
	}
	return quantity.Watts(*v), nil
}

// requireEnergyWh parses an accumulated energy field, always watt-hours.
// Accumulations can never go backwards, so a negative value means the
// response is corrupt rather than a valid reading.
func requireEnergyWh(field string, v *float64) (quantity.Energy, error) {
	if v == nil {
		return 0, newParseError(field, nil)
	}
	if *v < 0 {
		return 0, newParseError(field, errors.Newf("negative energy accumulation %v", *v))
	}
	return quantity.WattHours(*v), nil
}
