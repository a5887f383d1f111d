package solaredge

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/solarmon/go-solaredge/quantity"
)

// SiteID identifies a registered solar installation. It is the unit of
// query scope for all endpoints except the site list.
type SiteID int64

func (id SiteID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Location is the postal location of a site.
type Location struct {
	Country     string `json:"country"`
	City        string `json:"city"`
	Address     string `json:"address"`
	Zip         string `json:"zip"`
	TimeZone    string `json:"timeZone"`
	CountryCode string `json:"countryCode"`
}

// PublicSettings reports whether the site is publicly visible and under
// which name.
type PublicSettings struct {
	IsPublic bool    `json:"isPublic"`
	Name     *string `json:"name"`
}

// PrimaryModule describes the model of the site's primary solar module.
type PrimaryModule struct {
	ManufacturerName string
	ModelName        string
	MaximumPower     quantity.Power
	TemperatureCoef  float64
}

func (m *PrimaryModule) UnmarshalJSON(data []byte) error {
	var raw struct {
		ManufacturerName string   `json:"manufacturerName"`
		ModelName        string   `json:"modelName"`
		MaximumPower     *float64 `json:"maximumPower"`
		TemperatureCoef  float64  `json:"temperatureCoef"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return newParseError("primaryModule", err)
	}

	maxPower, err := requirePowerKW("primaryModule.maximumPower", raw.MaximumPower)
	if err != nil {
		return err
	}

	m.ManufacturerName = raw.ManufacturerName
	m.ModelName = raw.ModelName
	m.MaximumPower = maxPower
	m.TemperatureCoef = raw.TemperatureCoef
	return nil
}

// Site is the descriptive metadata of an installation, as returned by both
// the site list and the details endpoint.
type Site struct {
	ID             SiteID
	Name           string
	AccountID      int64
	Status         string
	PeakPower      quantity.Power
	LastUpdateTime time.Time
	// InstallationDate is the date the site went into operation.
	InstallationDate time.Time
	// PTODate is the permission-to-operate date; nil when not reported.
	PTODate        *time.Time
	Notes          string
	Type           string
	Location       Location
	PrimaryModule  PrimaryModule
	URIs           map[string]string
	PublicSettings PublicSettings
}

func (s *Site) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID               *int64            `json:"id"`
		Name             *string           `json:"name"`
		AccountID        *int64            `json:"accountId"`
		Status           *string           `json:"status"`
		PeakPower        *float64          `json:"peakPower"`
		LastUpdateTime   *string           `json:"lastUpdateTime"`
		InstallationDate *string           `json:"installationDate"`
		PTODate          *string           `json:"ptoDate"`
		Notes            *string           `json:"notes"`
		Type             *string           `json:"type"`
		Location         *Location         `json:"location"`
		PrimaryModule    *PrimaryModule    `json:"primaryModule"`
		URIs             map[string]string `json:"uris"`
		PublicSettings   *PublicSettings   `json:"publicSettings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return asParseError("site", err)
	}

	id, err := requireInt("id", raw.ID)
	if err != nil {
		return err
	}
	name, err := requireString("name", raw.Name)
	if err != nil {
		return err
	}
	accountID, err := requireInt("accountId", raw.AccountID)
	if err != nil {
		return err
	}
	status, err := requireString("status", raw.Status)
	if err != nil {
		return err
	}
	peakPower, err := requirePowerKW("peakPower", raw.PeakPower)
	if err != nil {
		return err
	}
	lastUpdate, err := requireDate("lastUpdateTime", raw.LastUpdateTime)
	if err != nil {
		return err
	}
	installed, err := requireDate("installationDate", raw.InstallationDate)
	if err != nil {
		return err
	}
	ptoDate, err := optionalDate("ptoDate", raw.PTODate)
	if err != nil {
		return err
	}
	notes, err := requireString("notes", raw.Notes)
	if err != nil {
		return err
	}
	siteType, err := requireString("type", raw.Type)
	if err != nil {
		return err
	}

	// The sub-objects are required too: an absent primaryModule must not
	// decode into a default module whose 0 W maximum power looks like a
	// real reading.
	if raw.Location == nil {
		return newParseError("location", nil)
	}
	if raw.PrimaryModule == nil {
		return newParseError("primaryModule", nil)
	}
	if raw.URIs == nil {
		return newParseError("uris", nil)
	}
	if raw.PublicSettings == nil {
		return newParseError("publicSettings", nil)
	}

	s.ID = SiteID(id)
	s.Name = name
	s.AccountID = accountID
	s.Status = status
	s.PeakPower = peakPower
	s.LastUpdateTime = lastUpdate
	s.InstallationDate = installed
	s.PTODate = ptoDate
	s.Notes = notes
	s.Type = siteType
	s.Location = *raw.Location
	s.PrimaryModule = *raw.PrimaryModule
	s.URIs = raw.URIs
	s.PublicSettings = *raw.PublicSettings
	return nil
}

// SiteList is the result of the site list endpoint. Count is the total the
// API reports; Sites carries the listed page in API order.
type SiteList struct {
	Count int
	Sites []Site
}

func (l *SiteList) UnmarshalJSON(data []byte) error {
	var raw struct {
		Count int    `json:"count"`
		Site  []Site `json:"site"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return asParseError("sites", err)
	}
	if raw.Site == nil {
		return newParseError("sites.site", nil)
	}

	l.Count = raw.Count
	l.Sites = raw.Site
	return nil
}

// DataPeriod is the date range over which a site has produced data. It
// doubles as the range argument for the energy endpoints.
type DataPeriod struct {
	StartDate time.Time
	EndDate   time.Time
}

func (p *DataPeriod) UnmarshalJSON(data []byte) error {
	var raw struct {
		StartDate *string `json:"startDate"`
		EndDate   *string `json:"endDate"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return asParseError("dataPeriod", err)
	}

	start, err := requireDate("startDate", raw.StartDate)
	if err != nil {
		return err
	}
	end, err := requireDate("endDate", raw.EndDate)
	if err != nil {
		return err
	}

	p.StartDate = start
	p.EndDate = end
	return nil
}

// EnergyReading is an accumulated energy amount plus the optional revenue
// the API attributes to it. Revenue is nil when not reported.
type EnergyReading struct {
	Energy  quantity.Energy
	Revenue *float64
}

func decodeEnergyReading(field string, data json.RawMessage) (EnergyReading, error) {
	var raw struct {
		Energy  *float64 `json:"energy"`
		Revenue *float64 `json:"revenue"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return EnergyReading{}, newParseError(field, err)
	}

	energy, err := requireEnergyWh(field+".energy", raw.Energy)
	if err != nil {
		return EnergyReading{}, err
	}

	return EnergyReading{Energy: energy, Revenue: raw.Revenue}, nil
}

// Overview is a snapshot of a site's most recent production: the timestamp
// of the last reading, current power, and accumulated energy over the
// standard windows.
type Overview struct {
	LastUpdateTime time.Time
	LifeTimeData   EnergyReading
	LastYearData   EnergyReading
	LastMonthData  EnergyReading
	LastDayData    EnergyReading
	CurrentPower   quantity.Power
	MeasuredBy     string
}

func (o *Overview) UnmarshalJSON(data []byte) error {
	var raw struct {
		LastUpdateTime *string          `json:"lastUpdateTime"`
		LifeTimeData   *json.RawMessage `json:"lifeTimeData"`
		LastYearData   *json.RawMessage `json:"lastYearData"`
		LastMonthData  *json.RawMessage `json:"lastMonthData"`
		LastDayData    *json.RawMessage `json:"lastDayData"`
		CurrentPower   *struct {
			Power *float64 `json:"power"`
		} `json:"currentPower"`
		MeasuredBy *string `json:"measuredBy"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return asParseError("overview", err)
	}

	lastUpdate, err := requireTimestamp("lastUpdateTime", raw.LastUpdateTime)
	if err != nil {
		return err
	}

	windows := []struct {
		field string
		raw   *json.RawMessage
		dst   *EnergyReading
	}{
		{"lifeTimeData", raw.LifeTimeData, &o.LifeTimeData},
		{"lastYearData", raw.LastYearData, &o.LastYearData},
		{"lastMonthData", raw.LastMonthData, &o.LastMonthData},
		{"lastDayData", raw.LastDayData, &o.LastDayData},
	}
	for _, w := range windows {
		if w.raw == nil {
			return newParseError(w.field, nil)
		}
		reading, err := decodeEnergyReading(w.field, *w.raw)
		if err != nil {
			return err
		}
		*w.dst = reading
	}

	if raw.CurrentPower == nil {
		return newParseError("currentPower", nil)
	}
	power, err := requirePowerW("currentPower.power", raw.CurrentPower.Power)
	if err != nil {
		return err
	}
	measuredBy, err := requireString("measuredBy", raw.MeasuredBy)
	if err != nil {
		return err
	}

	o.LastUpdateTime = lastUpdate
	o.CurrentPower = power
	o.MeasuredBy = measuredBy
	return nil
}

// TimeUnit is the aggregation resolution of a measurement series.
type TimeUnit string

const (
	TimeUnitQuarterOfAnHour TimeUnit = "QUARTER_OF_AN_HOUR"
	TimeUnitHour            TimeUnit = "HOUR"
	TimeUnitDay             TimeUnit = "DAY"
	TimeUnitWeek            TimeUnit = "WEEK"
	TimeUnitMonth           TimeUnit = "MONTH"
	TimeUnitYear            TimeUnit = "YEAR"
)

func (u TimeUnit) valid() bool {
	switch u {
	case TimeUnitQuarterOfAnHour, TimeUnitHour, TimeUnitDay, TimeUnitWeek, TimeUnitMonth, TimeUnitYear:
		return true
	}
	return false
}

// EnergyValue is one point of an energy series. Value is nil when the API
// reported no measurement for the slot; a present zero is a real reading.
type EnergyValue struct {
	Time  time.Time
	Value *quantity.Energy
}

// EnergySeries is the energy production of a site over a queried window,
// in chronological order as returned by the API.
type EnergySeries struct {
	TimeUnit   TimeUnit
	MeasuredBy string
	Values     []EnergyValue
}

func (s *EnergySeries) UnmarshalJSON(data []byte) error {
	var raw struct {
		TimeUnit   *string `json:"timeUnit"`
		Unit       *string `json:"unit"`
		MeasuredBy string  `json:"measuredBy"`
		Values     []struct {
			Date  *string  `json:"date"`
			Value *float64 `json:"value"`
		} `json:"values"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return asParseError("energy", err)
	}

	timeUnit, err := requireString("timeUnit", raw.TimeUnit)
	if err != nil {
		return err
	}
	if !TimeUnit(timeUnit).valid() {
		return newParseError("timeUnit", fmt.Errorf("unknown time unit %q", timeUnit))
	}
	unit, err := requireString("unit", raw.Unit)
	if err != nil {
		return err
	}
	conv, err := quantity.EnergyConverter(unit)
	if err != nil {
		return newParseError("unit", err)
	}
	if raw.Values == nil {
		return newParseError("values", nil)
	}

	values := make([]EnergyValue, 0, len(raw.Values))
	for i, rv := range raw.Values {
		ts, err := requireTimestamp(fmt.Sprintf("values[%d].date", i), rv.Date)
		if err != nil {
			return err
		}
		var value *quantity.Energy
		if rv.Value != nil {
			if *rv.Value < 0 {
				return newParseError(fmt.Sprintf("values[%d].value", i),
					fmt.Errorf("negative energy accumulation %v", *rv.Value))
			}
			e := conv(*rv.Value)
			value = &e
		}
		values = append(values, EnergyValue{Time: ts, Value: value})
	}

	s.TimeUnit = TimeUnit(timeUnit)
	s.MeasuredBy = raw.MeasuredBy
	s.Values = values
	return nil
}

// PowerValue is one point of a power series. Value is nil when the API
// reported no measurement for the slot.
type PowerValue struct {
	Time  time.Time
	Value *quantity.Power
}

// PowerSeries is the power production of a site over a queried window, in
// quarter-hour resolution, chronological order as returned by the API.
type PowerSeries struct {
	TimeUnit   TimeUnit
	MeasuredBy string
	Values     []PowerValue
}

func (s *PowerSeries) UnmarshalJSON(data []byte) error {
	var raw struct {
		TimeUnit   *string `json:"timeUnit"`
		Unit       *string `json:"unit"`
		MeasuredBy string  `json:"measuredBy"`
		Values     []struct {
			Date  *string  `json:"date"`
			Value *float64 `json:"value"`
		} `json:"values"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return asParseError("power", err)
	}

	timeUnit, err := requireString("timeUnit", raw.TimeUnit)
	if err != nil {
		return err
	}
	if !TimeUnit(timeUnit).valid() {
		return newParseError("timeUnit", fmt.Errorf("unknown time unit %q", timeUnit))
	}
	unit, err := requireString("unit", raw.Unit)
	if err != nil {
		return err
	}
	conv, err := quantity.PowerConverter(unit)
	if err != nil {
		return newParseError("unit", err)
	}
	if raw.Values == nil {
		return newParseError("values", nil)
	}

	values := make([]PowerValue, 0, len(raw.Values))
	for i, rv := range raw.Values {
		ts, err := requireTimestamp(fmt.Sprintf("values[%d].date", i), rv.Date)
		if err != nil {
			return err
		}
		var value *quantity.Power
		if rv.Value != nil {
			p := conv(*rv.Value)
			value = &p
		}
		values = append(values, PowerValue{Time: ts, Value: value})
	}

	s.TimeUnit = TimeUnit(timeUnit)
	s.MeasuredBy = raw.MeasuredBy
	s.Values = values
	return nil
}

// TimeFrameEnergy is the total energy produced over a queried date range.
type TimeFrameEnergy struct {
	Energy quantity.Energy
}

func (e *TimeFrameEnergy) UnmarshalJSON(data []byte) error {
	var raw struct {
		Energy *float64 `json:"energy"`
		Unit   *string  `json:"unit"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return asParseError("timeFrameEnergy", err)
	}

	unit, err := requireString("unit", raw.Unit)
	if err != nil {
		return err
	}
	conv, err := quantity.EnergyConverter(unit)
	if err != nil {
		return newParseError("unit", err)
	}
	if raw.Energy == nil {
		return newParseError("energy", nil)
	}
	if *raw.Energy < 0 {
		return newParseError("energy", fmt.Errorf("negative energy accumulation %v", *raw.Energy))
	}

	e.Energy = conv(*raw.Energy)
	return nil
}

// Reply envelopes. The API nests every payload under an endpoint-specific
// key; these stay internal so models decode free of that wrapping.
type (
	sitesReply           struct{ Sites *SiteList `json:"sites"` }
	siteDetailsReply     struct{ Details *Site `json:"details"` }
	dataPeriodReply      struct{ DataPeriod *DataPeriod `json:"dataPeriod"` }
	overviewReply        struct{ Overview *Overview `json:"overview"` }
	energyReply          struct{ Energy *EnergySeries `json:"energy"` }
	timeFrameEnergyReply struct{ TimeFrameEnergy *TimeFrameEnergy `json:"timeFrameEnergy"` }
	powerReply           struct{ Power *PowerSeries `json:"power"` }
)
