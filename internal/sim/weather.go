package sim

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// ErrMissingLocation is returned when a weather lookup has no location.
var ErrMissingLocation = errors.New("please enter a location")

// WeatherSnapshot is the recomputed-wholesale result of one lookup.
type WeatherSnapshot struct {
	Location    string
	TempC       int
	Condition   string
	HumidityPct int
	WindKmh     int
	Forecast    []ForecastDay
	UpdatedAt   time.Time
}

// ForecastDay is one entry of the five-day outlook.
type ForecastDay struct {
	Day       string
	TempC     int
	Condition string
}

// WeatherAlert is an advisory derived from a snapshot.
type WeatherAlert struct {
	Message  string
	Severity string // info|warning
}

type cityWeather struct {
	temp      int
	condition string
	humidity  int
	wind      int
}

var cityTable = map[string]cityWeather{
	"mumbai":    {28, "Humid", 85, 15},
	"delhi":     {24, "Sunny", 65, 12},
	"bangalore": {22, "Pleasant", 70, 8},
	"chennai":   {30, "Hot", 78, 18},
	"kolkata":   {26, "Cloudy", 82, 10},
	"hyderabad": {25, "Clear", 60, 14},
	"pune":      {23, "Pleasant", 68, 11},
	"ahmedabad": {29, "Warm", 55, 16},
	"london":    {15, "Rainy", 90, 20},
	"new york":  {18, "Cloudy", 75, 22},
	"tokyo":     {20, "Mild", 72, 13},
	"paris":     {16, "Cool", 80, 18},
	"dubai":     {35, "Very Hot", 45, 25},
	"singapore": {27, "Tropical", 88, 12},
}

type conditionRange struct {
	condition string
	minTemp   int
	maxTemp   int
}

var unknownCityConditions = []conditionRange{
	{"Sunny", 20, 35},
	{"Cloudy", 15, 25},
	{"Rainy", 12, 22},
	{"Pleasant", 18, 28},
}

var forecastDays = []string{"Tomorrow", "Day 2", "Day 3", "Day 4", "Day 5"}
var forecastConditions = []string{"Sunny", "Cloudy", "Rainy", "Pleasant", "Clear"}

// WeatherAutoUpdateInterval is how long a cached snapshot stays fresh.
const WeatherAutoUpdateInterval = 5 * time.Minute

// WeatherService answers location lookups, caching snapshots for the
// auto-update window so repeated polls of the same city are stable.
type WeatherService struct {
	engine    *Engine
	snapshots *cache.Cache
}

// NewWeatherService wraps engine with a TTL snapshot cache.
func NewWeatherService(engine *Engine) *WeatherService {
	return &WeatherService{
		engine:    engine,
		snapshots: cache.New(WeatherAutoUpdateInterval, 10*time.Minute),
	}
}

// Lookup returns the snapshot for location, serving a cached one while it
// is fresh.
func (s *WeatherService) Lookup(location string) (WeatherSnapshot, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return WeatherSnapshot{}, ErrMissingLocation
	}
	key := strings.ToLower(location)
	if x, found := s.snapshots.Get(key); found {
		return x.(WeatherSnapshot), nil
	}
	snap := s.engine.Weather(location)
	s.snapshots.Set(key, snap, cache.DefaultExpiration)
	return snap, nil
}

// Refresh recomputes the snapshot for location, replacing any cached one.
func (s *WeatherService) Refresh(location string) (WeatherSnapshot, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return WeatherSnapshot{}, ErrMissingLocation
	}
	snap := s.engine.Weather(location)
	s.snapshots.Set(strings.ToLower(location), snap, cache.DefaultExpiration)
	return snap, nil
}

// Weather fabricates a snapshot. Known cities come from the fixed table;
// unknown cities get a random condition with a temperature inside that
// condition's range.
func (e *Engine) Weather(location string) WeatherSnapshot {
	key := strings.ToLower(strings.TrimSpace(location))
	if base, ok := cityTable[key]; ok {
		return WeatherSnapshot{
			Location:    location,
			TempC:       base.temp,
			Condition:   base.condition,
			HumidityPct: base.humidity,
			WindKmh:     base.wind,
			Forecast:    e.forecast(base.temp),
			UpdatedAt:   e.now(),
		}
	}

	cond := unknownCityConditions[e.intn(len(unknownCityConditions))]
	temp := cond.minTemp + e.intn(cond.maxTemp-cond.minTemp)
	return WeatherSnapshot{
		Location:    location,
		TempC:       temp,
		Condition:   cond.condition,
		HumidityPct: 50 + e.intn(40),
		WindKmh:     5 + e.intn(20),
		Forecast:    e.forecast(temp),
		UpdatedAt:   e.now(),
	}
}

func (e *Engine) forecast(baseTemp int) []ForecastDay {
	out := make([]ForecastDay, 0, len(forecastDays))
	for _, day := range forecastDays {
		out = append(out, ForecastDay{
			Day:       day,
			TempC:     baseTemp + e.intn(10) - 5,
			Condition: forecastConditions[e.intn(len(forecastConditions))],
		})
	}
	return out
}

// Alert derives an advisory from a snapshot, or nil when conditions are
// unremarkable. Rule order matches severity: heat, cold, rain, wind.
func Alert(snap WeatherSnapshot) *WeatherAlert {
	switch {
	case snap.TempC > 35:
		return &WeatherAlert{
			Message:  "⚠️ Heat Alert: Very high temperature (" + strconv.Itoa(snap.TempC) + "°C) in " + snap.Location + ". Stay hydrated!",
			Severity: "warning",
		}
	case snap.TempC < 5:
		return &WeatherAlert{
			Message:  "❄️ Cold Alert: Very low temperature (" + strconv.Itoa(snap.TempC) + "°C) in " + snap.Location + ". Stay warm!",
			Severity: "warning",
		}
	case strings.Contains(strings.ToLower(snap.Condition), "rain"):
		return &WeatherAlert{
			Message:  "🌧️ Rain Alert: Rainy conditions expected in " + snap.Location + ". Carry an umbrella!",
			Severity: "info",
		}
	case snap.WindKmh > 25:
		return &WeatherAlert{
			Message:  "💨 Wind Alert: Strong winds (" + strconv.Itoa(snap.WindKmh) + " km/h) in " + snap.Location + ". Be cautious!",
			Severity: "warning",
		}
	}
	return nil
}

