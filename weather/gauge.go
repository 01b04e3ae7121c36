package weather

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sabi-health/sabi-api/external/openmeteo"
)

const (
	logPrefix = "weather"

	attempts = 3
	backoff  = time.Second
	window   = 24 * time.Hour

	// MockRainfallMM is returned for every reading while the mock
	// switch is on.
	MockRainfallMM = 25.5
)

// MockRainSwitch is the process-wide demo override. It is toggled
// through the admin API and read fresh at the start of every gauge
// call, so flipping it takes effect on the very next reading.
type MockRainSwitch struct {
	mu      sync.RWMutex
	enabled bool
}

func NewMockRainSwitch() *MockRainSwitch {
	return &MockRainSwitch{}
}

func (s *MockRainSwitch) Set(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}

func (s *MockRainSwitch) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

// Gauge measures recent rainfall for a coordinate pair. Readings are
// never cached and never fail: an unreachable provider degrades to a
// zero reading so risk assessment can proceed.
type Gauge struct {
	forecast openmeteo.Forecast
	mock     *MockRainSwitch
	now      func() time.Time
}

func NewGauge(forecast openmeteo.Forecast, mock *MockRainSwitch) *Gauge {
	return &Gauge{
		forecast: forecast,
		mock:     mock,
		now:      time.Now,
	}
}

// RecentRainfall returns the total rainfall in millimeters over the
// trailing 24 hours. The forecast provider is retried up to three
// times with a fixed backoff; total failure yields 0.0.
func (g *Gauge) RecentRainfall(lat, lon float64) float64 {
	if g.mock != nil && g.mock.Enabled() {
		return MockRainfallMM
	}

	var series *openmeteo.HourlySeries
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		series, err = g.forecast.HourlyPrecipitation(lat, lon)
		if err == nil {
			break
		}
		log.WithField("prefix", logPrefix).Warnf("open-meteo attempt %d failed: %s", attempt, err)
		if attempt == attempts {
			return 0.0
		}
		time.Sleep(backoff)
	}

	cutoff := g.now().UTC().Add(-window)

	total := 0.0
	for i, ts := range series.Time {
		if i >= len(series.Precipitation) {
			break
		}
		t, err := time.Parse("2006-01-02T15:04", ts)
		if err != nil {
			continue
		}
		if !t.Before(cutoff) {
			total += series.Precipitation[i]
		}
	}

	return total
}
