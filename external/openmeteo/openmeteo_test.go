package openmeteo_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sabi-health/sabi-api/external/openmeteo"
)

func TestHourlyPrecipitation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "precipitation", r.URL.Query().Get("hourly"), "wrong hourly param")
		assert.Equal(t, "1", r.URL.Query().Get("past_days"), "wrong past_days param")
		assert.Equal(t, "UTC", r.URL.Query().Get("timezone"), "wrong timezone param")

		resp := map[string]interface{}{
			"hourly": map[string]interface{}{
				"time":          []string{"2026-03-10T00:00", "2026-03-10T01:00"},
				"precipitation": []float64{0.4, 1.2},
			},
		}

		b, _ := json.Marshal(resp)
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	f := openmeteo.New(ts.URL)
	series, err := f.HourlyPrecipitation(9.0765, 7.3986)
	assert.Nil(t, err, "wrong HourlyPrecipitation")
	assert.Equal(t, []float64{0.4, 1.2}, series.Precipitation, "wrong precipitation values")
	assert.Len(t, series.Time, 2, "wrong sample count")
}

func TestHourlyPrecipitationBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	f := openmeteo.New(ts.URL)
	_, err := f.HourlyPrecipitation(9.0765, 7.3986)
	assert.Error(t, err, "status error expected")
}

func TestHourlyPrecipitationEmptySeries(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"hourly":{"time":[],"precipitation":[]}}`))
	}))
	defer ts.Close()

	f := openmeteo.New(ts.URL)
	_, err := f.HourlyPrecipitation(9.0765, 7.3986)
	assert.Error(t, err, "empty series must error")
}
