package background_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sabi-health/sabi-api/api/mocks"
	"github.com/sabi-health/sabi-api/background"
	"github.com/sabi-health/sabi-api/dispatch"
	"github.com/sabi-health/sabi-api/external/openmeteo"
	"github.com/sabi-health/sabi-api/geo"
	"github.com/sabi-health/sabi-api/message"
	"github.com/sabi-health/sabi-api/schema"
	"github.com/sabi-health/sabi-api/store"
	"github.com/sabi-health/sabi-api/weather"
)

type fixedForecast struct {
	mm float64
}

func (f fixedForecast) HourlyPrecipitation(lat, lng float64) (*openmeteo.HourlySeries, error) {
	return &openmeteo.HourlySeries{
		Time:          []string{"2100-01-01T00:00"},
		Precipitation: []float64{f.mm},
	}, nil
}

func TestDispatchRiskCallSkipsQuietUser(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	geo.SetLocationResolver(geo.NewStaticLocationResolver())

	user := &schema.User{ID: uuid.New(), Name: "Amina", LGA: "Ikeja"}

	a := mocks.NewMockSabiCore(ctl)
	a.EXPECT().GetUser(user.ID).Return(user, nil).Times(1)
	// no CreateLog expectation: a quiet lga must not produce a call

	d := dispatch.NewDispatcher(a, message.NewComposer(nil), nil, nil, "https://sabi.example.com", nil)
	gauge := weather.NewGauge(fixedForecast{mm: 1.0}, weather.NewMockRainSwitch())

	m := background.New(a, d, gauge, nil)

	assert.NoError(t, m.DispatchRiskCall(user.ID.String()), "wrong DispatchRiskCall")
}

func TestDispatchRiskCallDeliversForHotspot(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	geo.SetLocationResolver(geo.NewStaticLocationResolver())

	user := &schema.User{ID: uuid.New(), Name: "Amina", LGA: "Kano"}

	a := mocks.NewMockSabiCore(ctl)
	a.EXPECT().GetUser(user.ID).Return(user, nil).Times(1)
	a.EXPECT().CreateLog(user.ID, "HIGH", gomock.Any(), gomock.Nil()).Return(&schema.Log{
		ID:     uuid.New(),
		UserID: user.ID,
	}, nil).Times(1)

	d := dispatch.NewDispatcher(a, message.NewComposer(nil), nil, nil, "https://sabi.example.com", nil)
	gauge := weather.NewGauge(fixedForecast{mm: 1.0}, weather.NewMockRainSwitch())

	m := background.New(a, d, gauge, nil)

	assert.NoError(t, m.DispatchRiskCall(user.ID.String()), "wrong DispatchRiskCall")
}

func TestDispatchRiskCallUnknownUser(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	geo.SetLocationResolver(geo.NewStaticLocationResolver())

	userID := uuid.New()

	a := mocks.NewMockSabiCore(ctl)
	a.EXPECT().GetUser(userID).Return(nil, store.ErrUserNotFound).Times(1)

	m := background.New(a, nil, nil, nil)

	// a user removed between enqueue and execution is not a task failure
	assert.NoError(t, m.DispatchRiskCall(userID.String()), "wrong DispatchRiskCall")
}

func TestDispatchRiskCallBadID(t *testing.T) {
	m := background.New(nil, nil, nil, nil)

	assert.Error(t, m.DispatchRiskCall("not-a-uuid"), "malformed id must fail the task")
}
