// Package weather produces the simulated weather reading shown in the guide
// header. The data is a presentation stub with plausible Rio values, not an
// observation from any meteorological source; responses are flagged as
// simulated so it is never mistaken for a real forecast.
package weather

import (
	"math/rand"
	"sync"
	"time"
)

// Condition is the coarse sky state the widget renders an icon for.
type Condition string

const (
	ConditionClear        Condition = "clear"
	ConditionPartlyCloudy Condition = "partly-cloudy"
	ConditionCloudy       Condition = "cloudy"
	ConditionRainy        Condition = "rainy"
)

// conditionDescriptions maps each condition to its fixed display text.
var conditionDescriptions = map[Condition]string{
	ConditionClear:        "Céu limpo, dia perfeito de praia",
	ConditionPartlyCloudy: "Parcialmente nublado, sol entre nuvens",
	ConditionCloudy:       "Nublado, bom para passeios a pé",
	ConditionRainy:        "Chuva passageira, leve um guarda-chuva",
}

// Reading is one simulated weather observation. Presentation collaborators
// bind to the JSON field names; they are part of the external contract.
type Reading struct {
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feelsLike"`
	Condition   Condition `json:"condition"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"windSpeed"`
	Description string    `json:"description"`
	ObservedAt  int64     `json:"observedAtEpochMillis"`
}

// Simulator draws readings from fixed distributions: temperature uniform in
// [25,35)°C, humidity in [60,90)%, wind in [5,20) km/h, feels-like within
// ±2°C of the temperature, and a categorical sky condition weighted
// 40/35/15/10 toward clear skies.
type Simulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator returns a Simulator seeded with the given value. The seed is
// only pinned in tests; production callers seed with the current time.
func NewSimulator(seed int64) *Simulator {
	return &Simulator{rng: rand.New(rand.NewSource(seed))}
}

// Simulate draws a fresh reading observed at now.
func (s *Simulator) Simulate(now time.Time) Reading {
	s.mu.Lock()
	defer s.mu.Unlock()

	temp := 25 + s.rng.Float64()*10
	cond := s.drawCondition()

	return Reading{
		Temperature: temp,
		FeelsLike:   temp + (s.rng.Float64()*4 - 2),
		Condition:   cond,
		Humidity:    60 + s.rng.Float64()*30,
		WindSpeed:   5 + s.rng.Float64()*15,
		Description: conditionDescriptions[cond],
		ObservedAt:  now.UnixMilli(),
	}
}

func (s *Simulator) drawCondition() Condition {
	r := s.rng.Float64()
	switch {
	case r < 0.40:
		return ConditionClear
	case r < 0.75:
		return ConditionPartlyCloudy
	case r < 0.90:
		return ConditionCloudy
	default:
		return ConditionRainy
	}
}
