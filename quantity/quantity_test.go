package quantity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarmon/go-solaredge/quantity"
)

func TestPowerConversions(t *testing.T) {
	t.Parallel()

	p := quantity.Kilowatts(7.41)

	assert.InDelta(t, 7410.0, p.Watts(), 1e-9)
	assert.InDelta(t, 7.41, p.Kilowatts(), 1e-9)
	assert.InDelta(t, 0.00741, p.Megawatts(), 1e-9)
}

func TestEnergyConversions(t *testing.T) {
	t.Parallel()

	e := quantity.WattHours(1.9191678e7)

	assert.InDelta(t, 1.9191678e7, e.WattHours(), 1e-3)
	assert.InDelta(t, 19191.678, e.KilowattHours(), 1e-6)
	assert.InDelta(t, 19.191678, e.MegawattHours(), 1e-9)
}

func TestPowerString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		power quantity.Power
		want  string
	}{
		{name: "watts", power: quantity.Watts(761.5), want: "761.5 W"},
		{name: "kilowatts", power: quantity.Watts(7410), want: "7.410 kW"},
		{name: "megawatts", power: quantity.Kilowatts(1250), want: "1.250 MW"},
		{name: "negative", power: quantity.Watts(-120), want: "-120.0 W"},
		{name: "zero", power: quantity.Watts(0), want: "0.0 W"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.power.String())
		})
	}
}

func TestEnergyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		energy quantity.Energy
		want   string
	}{
		{name: "watt hours", energy: quantity.WattHours(222), want: "222.0 Wh"},
		{name: "kilowatt hours", energy: quantity.WattHours(38709), want: "38.709 kWh"},
		{name: "megawatt hours", energy: quantity.WattHours(1.9191678e7), want: "19.192 MWh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.energy.String())
		})
	}
}

func TestPowerConverter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		unit    string
		value   float64
		want    quantity.Power
		wantErr bool
	}{
		{name: "watts", unit: "W", value: 1234.5, want: quantity.Watts(1234.5)},
		{name: "kilowatts", unit: "kW", value: 7.41, want: quantity.Watts(7410)},
		{name: "megawatts", unit: "MW", value: 1.5, want: quantity.Watts(1.5e6)},
		{name: "unknown unit", unit: "hp", wantErr: true},
		{name: "empty unit", unit: "", wantErr: true},
		{name: "energy unit is not a power unit", unit: "Wh", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := quantity.PowerConverter(tt.unit)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, float64(tt.want), float64(conv(tt.value)), 1e-9)
		})
	}
}

func TestEnergyConverter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		unit    string
		value   float64
		want    quantity.Energy
		wantErr bool
	}{
		{name: "watt hours", unit: "Wh", value: 45718, want: quantity.WattHours(45718)},
		{name: "kilowatt hours", unit: "kWh", value: 2.5, want: quantity.WattHours(2500)},
		{name: "megawatt hours", unit: "MWh", value: 0.5, want: quantity.WattHours(5e5)},
		{name: "unknown unit", unit: "J", wantErr: true},
		{name: "power unit is not an energy unit", unit: "W", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := quantity.EnergyConverter(tt.unit)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, float64(tt.want), float64(conv(tt.value)), 1e-9)
		})
	}
}
