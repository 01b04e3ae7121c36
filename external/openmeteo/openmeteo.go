package openmeteo

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

const (
	defaultURL     = "https://api.open-meteo.com/v1/forecast"
	defaultTimeout = 10 * time.Second
)

var (
	errResponseStatus = fmt.Errorf("unexpected response status")
	errEmptySeries    = fmt.Errorf("empty precipitation series")
)

// Forecast fetches an hourly precipitation series for a coordinate
// pair. The series covers yesterday plus the current day, which is
// enough for a trailing 24 hour sum.
type Forecast interface {
	HourlyPrecipitation(lat, lng float64) (*HourlySeries, error)
}

// HourlySeries pairs sample timestamps with precipitation amounts
// in millimeters. Timestamps are formatted "2006-01-02T15:04" in UTC.
type HourlySeries struct {
	Time          []string  `json:"time"`
	Precipitation []float64 `json:"precipitation"`
}

type jsonResponse struct {
	Hourly HourlySeries `json:"hourly"`
}

type forecast struct {
	url    string
	client *http.Client
}

func (f forecast) HourlyPrecipitation(lat, lng float64) (*HourlySeries, error) {
	// https://api.open-meteo.com/v1/forecast?latitude=1.2&longitude=3.4&hourly=precipitation&past_days=1&timezone=UTC
	query := fmt.Sprintf("%s?latitude=%f&longitude=%f&hourly=precipitation&past_days=1&timezone=UTC", f.url, lat, lng)
	resp, err := f.client.Get(query)
	if nil != err {
		return nil, err
	}

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errResponseStatus
	}

	var r jsonResponse
	err = json.Unmarshal(d, &r)
	if nil != err {
		return nil, err
	}

	if len(r.Hourly.Time) == 0 || len(r.Hourly.Precipitation) == 0 {
		return nil, errEmptySeries
	}

	return &r.Hourly, nil
}

func New(url string) Forecast {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &forecast{
		url: u,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}
