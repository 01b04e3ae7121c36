package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally"

	"github.com/sabi-health/sabi-api/api/mocks"
	"github.com/sabi-health/sabi-api/consts"
	"github.com/sabi-health/sabi-api/schema"
	"github.com/sabi-health/sabi-api/store"
)

func symptomRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/symptoms", s.reportSymptoms)
	return router
}

func TestReportSymptomsFeverReferral(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSabiCore(ctl)
	s := Server{store: a, metrics: tally.NoopScope}

	userID := uuid.New()
	a.EXPECT().GetUser(userID).Return(&schema.User{ID: userID, LGA: "Kano"}, nil).Times(1)
	a.EXPECT().CreateSymptomRecord(gomock.Any()).DoAndReturn(
		func(r *schema.SymptomRecord) (*schema.SymptomRecord, error) {
			assert.True(t, r.Fever, "fever flag must be stored")
			return r, nil
		}).Times(1)
	// the feed write runs in a goroutine and may land after the response
	a.EXPECT().CreateNotification(userID, gomock.Any(), gomock.Any(), schema.NotificationAlert).
		Return(&schema.NotificationMessage{}, nil).AnyTimes()

	w := postJSON(symptomRouter(&s), "/symptoms",
		`{"user_id":"`+userID.String()+`","fever":true,"notes":"hot since morning"}`)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Status   string `json:"status"`
		Hospital struct {
			Name           string `json:"name"`
			Recommendation string `json:"recommendation"`
		} `json:"hospital"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong response body")
	assert.Equal(t, "ok", resp.Status, "wrong status")
	assert.Equal(t, "Kano General Hospital", resp.Hospital.Name, "wrong facility")
	assert.NotEmpty(t, resp.Hospital.Recommendation, "missing recommendation")
}

func TestReportSymptomsUnknownLGAGenericAdvice(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSabiCore(ctl)
	s := Server{store: a, metrics: tally.NoopScope}

	userID := uuid.New()
	a.EXPECT().GetUser(userID).Return(&schema.User{ID: userID, LGA: "Atlantis"}, nil).Times(1)
	a.EXPECT().CreateSymptomRecord(gomock.Any()).DoAndReturn(
		func(r *schema.SymptomRecord) (*schema.SymptomRecord, error) {
			return r, nil
		}).Times(1)
	a.EXPECT().CreateNotification(userID, gomock.Any(), gomock.Any(), schema.NotificationAlert).
		Return(&schema.NotificationMessage{}, nil).AnyTimes()

	w := postJSON(symptomRouter(&s), "/symptoms",
		`{"user_id":"`+userID.String()+`","fever":true}`)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Hospital struct {
			Name           string `json:"name"`
			Recommendation string `json:"recommendation"`
		} `json:"hospital"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong response body")
	assert.Empty(t, resp.Hospital.Name, "unknown area must not name a facility")
	assert.Equal(t, consts.GenericFacilityAdvice, resp.Hospital.Recommendation, "wrong fallback recommendation")
}

func TestReportSymptomsMildNoReferral(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSabiCore(ctl)
	s := Server{store: a, metrics: tally.NoopScope}

	userID := uuid.New()
	a.EXPECT().GetUser(userID).Return(&schema.User{ID: userID, LGA: "Kano"}, nil).Times(1)
	a.EXPECT().CreateSymptomRecord(gomock.Any()).DoAndReturn(
		func(r *schema.SymptomRecord) (*schema.SymptomRecord, error) {
			return r, nil
		}).Times(1)
	// no CreateNotification expectation: a mild report must not escalate

	w := postJSON(symptomRouter(&s), "/symptoms",
		`{"user_id":"`+userID.String()+`","cough":true,"headache":true}`)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong response body")
	assert.Equal(t, "ok", resp["status"], "wrong status")
	assert.Nil(t, resp["hospital"], "a mild report must not carry a referral")
}

func TestReportSymptomsUnknownUser(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSabiCore(ctl)
	s := Server{store: a, metrics: tally.NoopScope}

	userID := uuid.New()
	a.EXPECT().GetUser(userID).Return(nil, store.ErrUserNotFound).Times(1)

	w := postJSON(symptomRouter(&s), "/symptoms",
		`{"user_id":"`+userID.String()+`","fever":true}`)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong error body")
	assert.Equal(t, int64(1101), resp.Code, "wrong error code")
}
