// Package quantity provides unit-tagged value types for the physical
// quantities the monitoring API reports.
//
// The API sends bare numbers whose unit is implied by the field they appear
// in (or by a sibling "unit" string for series data). Wrapping them in
// defined types keeps power and energy from ever being mixed up, the same
// way time.Duration keeps nanoseconds from being mistaken for seconds. All
// unit conversion lives in this package; the rest of the library never
// scales a raw float.
package quantity

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Power is an instantaneous power value, stored in watts.
type Power float64

// Watts returns a Power from a value expressed in watts.
func Watts(v float64) Power { return Power(v) }

// Kilowatts returns a Power from a value expressed in kilowatts.
func Kilowatts(v float64) Power { return Power(v * 1e3) }

// Megawatts returns a Power from a value expressed in megawatts.
func Megawatts(v float64) Power { return Power(v * 1e6) }

// Watts returns the value in watts.
func (p Power) Watts() float64 { return float64(p) }

// Kilowatts returns the value in kilowatts.
func (p Power) Kilowatts() float64 { return float64(p) / 1e3 }

// Megawatts returns the value in megawatts.
func (p Power) Megawatts() float64 { return float64(p) / 1e6 }

func (p Power) String() string {
	switch {
	case p >= 1e6 || p <= -1e6:
		return fmt.Sprintf("%.3f MW", p.Megawatts())
	case p >= 1e3 || p <= -1e3:
		return fmt.Sprintf("%.3f kW", p.Kilowatts())
	default:
		return fmt.Sprintf("%.1f W", p.Watts())
	}
}

// Energy is an amount of energy, stored in watt-hours.
type Energy float64

// WattHours returns an Energy from a value expressed in watt-hours.
func WattHours(v float64) Energy { return Energy(v) }

// KilowattHours returns an Energy from a value expressed in kilowatt-hours.
func KilowattHours(v float64) Energy { return Energy(v * 1e3) }

// MegawattHours returns an Energy from a value expressed in megawatt-hours.
func MegawattHours(v float64) Energy { return Energy(v * 1e6) }

// WattHours returns the value in watt-hours.
func (e Energy) WattHours() float64 { return float64(e) }

// KilowattHours returns the value in kilowatt-hours.
func (e Energy) KilowattHours() float64 { return float64(e) / 1e3 }

// MegawattHours returns the value in megawatt-hours.
func (e Energy) MegawattHours() float64 { return float64(e) / 1e6 }

func (e Energy) String() string {
	switch {
	case e >= 1e6 || e <= -1e6:
		return fmt.Sprintf("%.3f MWh", e.MegawattHours())
	case e >= 1e3 || e <= -1e3:
		return fmt.Sprintf("%.3f kWh", e.KilowattHours())
	default:
		return fmt.Sprintf("%.1f Wh", e.WattHours())
	}
}

// PowerConverter returns a conversion function for the unit string the API
// uses to tag power series ("W", "kW", "MW").
func PowerConverter(unit string) (func(float64) Power, error) {
	switch unit {
	case "W":
		return Watts, nil
	case "kW":
		return Kilowatts, nil
	case "MW":
		return Megawatts, nil
	}
	return nil, errors.Newf("unsupported power unit %q", unit)
}

// EnergyConverter returns a conversion function for the unit string the API
// uses to tag energy series ("Wh", "kWh", "MWh").
func EnergyConverter(unit string) (func(float64) Energy, error) {
	switch unit {
	case "Wh":
		return WattHours, nil
	case "kWh":
		return KilowattHours, nil
	case "MWh":
		return MegawattHours, nil
	}
	return nil, errors.Newf("unsupported energy unit %q", unit)
}
