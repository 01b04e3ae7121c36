package weather

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sabi-health/sabi-api/external/openmeteo"
)

type stubForecast struct {
	series   *openmeteo.HourlySeries
	err      error
	failures int
	calls    int
}

func (s *stubForecast) HourlyPrecipitation(lat, lng float64) (*openmeteo.HourlySeries, error) {
	s.calls++
	if s.calls <= s.failures {
		return nil, errors.New("upstream down")
	}
	return s.series, s.err
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func TestRecentRainfallSumsTrailingWindow(t *testing.T) {
	f := &stubForecast{
		series: &openmeteo.HourlySeries{
			Time: []string{
				"2026-03-09T10:00", // before cutoff, dropped
				"2026-03-09T13:00",
				"2026-03-10T02:00",
				"2026-03-10T11:00",
			},
			Precipitation: []float64{99.0, 1.5, 2.0, 3.25},
		},
	}

	g := NewGauge(f, NewMockRainSwitch())
	g.now = fixedNow

	assert.Equal(t, 6.75, g.RecentRainfall(9.0, 7.4), "wrong trailing sum")
	assert.Equal(t, 1, f.calls, "one fetch expected")
}

func TestRecentRainfallSkipsMalformedTimestamps(t *testing.T) {
	f := &stubForecast{
		series: &openmeteo.HourlySeries{
			Time:          []string{"not-a-time", "2026-03-10T11:00"},
			Precipitation: []float64{50.0, 2.0},
		},
	}

	g := NewGauge(f, NewMockRainSwitch())
	g.now = fixedNow

	assert.Equal(t, 2.0, g.RecentRainfall(9.0, 7.4), "malformed sample must be skipped")
}

func TestRecentRainfallRetriesThenRecovers(t *testing.T) {
	f := &stubForecast{
		failures: 2,
		series: &openmeteo.HourlySeries{
			Time:          []string{"2026-03-10T11:00"},
			Precipitation: []float64{4.5},
		},
	}

	g := NewGauge(f, NewMockRainSwitch())
	g.now = fixedNow

	assert.Equal(t, 4.5, g.RecentRainfall(9.0, 7.4), "third attempt should succeed")
	assert.Equal(t, 3, f.calls, "wrong attempt count")
}

func TestRecentRainfallDegradesToZero(t *testing.T) {
	f := &stubForecast{failures: attempts}

	g := NewGauge(f, NewMockRainSwitch())
	g.now = fixedNow

	assert.Equal(t, 0.0, g.RecentRainfall(9.0, 7.4), "total failure must yield zero")
	assert.Equal(t, attempts, f.calls, "wrong attempt count")
}

func TestRecentRainfallMockOverride(t *testing.T) {
	f := &stubForecast{}
	mock := NewMockRainSwitch()
	mock.Set(true)

	g := NewGauge(f, mock)

	assert.Equal(t, MockRainfallMM, g.RecentRainfall(9.0, 7.4), "mock value expected")
	assert.Equal(t, 0, f.calls, "provider must not be touched while mocked")

	mock.Set(false)
	g.now = fixedNow
	f.series = &openmeteo.HourlySeries{
		Time:          []string{"2026-03-10T11:00"},
		Precipitation: []float64{1.0},
	}
	assert.Equal(t, 1.0, g.RecentRainfall(9.0, 7.4), "switch off must restore real readings")
}
