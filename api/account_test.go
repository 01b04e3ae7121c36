package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally"

	"github.com/sabi-health/sabi-api/api/mocks"
	"github.com/sabi-health/sabi-api/schema"
	"github.com/sabi-health/sabi-api/store"
)

func testRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", s.register)
	router.PATCH("/me/:userID", s.updatePersonality)
	return router
}

func TestRegister(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSabiCore(ctl)
	s := Server{store: a, metrics: tally.NoopScope}

	userID := uuid.New()
	a.EXPECT().CreateUser("Amina", "+2348012345678", "Kano", "Mama Health").Return(&schema.User{
		ID:          userID,
		Name:        "Amina",
		Phone:       "+2348012345678",
		LGA:         "Kano",
		Personality: "Mama Health",
	}, nil).Times(1)

	body := `{"name":"Amina","phone":"+2348012345678","lga":"Kano","ai_personality":"Mama Health"}`
	req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var user schema.User
	err := json.Unmarshal(w.Body.Bytes(), &user)
	assert.Nil(t, err, "wrong response body")
	assert.Equal(t, userID, user.ID, "wrong user id")
	assert.Equal(t, "Kano", user.LGA, "wrong lga")
}

func TestRegisterUnknownPersonalityFallsBack(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSabiCore(ctl)
	s := Server{store: a, metrics: tally.NoopScope}

	a.EXPECT().CreateUser("Amina", "+2348012345678", "Kano", "Mama Health").Return(&schema.User{
		ID: uuid.New(),
	}, nil).Times(1)

	body := `{"name":"Amina","phone":"+2348012345678","lga":"Kano","ai_personality":"DJ Unknown"}`
	req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestRegisterMissingFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSabiCore(ctl)
	s := Server{store: a, metrics: tally.NoopScope}

	body := `{"name":"Amina","lga":"Kano"}`
	req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong error body")
	assert.Equal(t, int64(1010), resp.Code, "wrong error code")
}

func TestRegisterPhoneTaken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSabiCore(ctl)
	s := Server{store: a, metrics: tally.NoopScope}

	a.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, store.ErrPhoneTaken).Times(1)

	body := `{"name":"Amina","phone":"+2348012345678","lga":"Kano"}`
	req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong error body")
	assert.Equal(t, int64(1100), resp.Code, "wrong error code")
}

func TestUpdatePersonality(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSabiCore(ctl)
	s := Server{store: a, metrics: tally.NoopScope}

	userID := uuid.New()
	a.EXPECT().UpdateUserPersonality(userID, "Oga Doctor").Return(nil).Times(1)

	body := `{"ai_personality":"Oga Doctor"}`
	req := httptest.NewRequest("PATCH", "/me/"+userID.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong response body")
	assert.Equal(t, "Oga Doctor", resp["ai_personality"], "wrong personality")
}

func TestUpdatePersonalityUnknownUser(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSabiCore(ctl)
	s := Server{store: a, metrics: tally.NoopScope}

	userID := uuid.New()
	a.EXPECT().UpdateUserPersonality(userID, gomock.Any()).Return(store.ErrUserNotFound).Times(1)

	body := `{"ai_personality":"Oga Doctor"}`
	req := httptest.NewRequest("PATCH", "/me/"+userID.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}
