package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sabi-health/sabi-api/external/twilio"
	"github.com/sabi-health/sabi-api/schema"
	"github.com/sabi-health/sabi-api/store"
	"github.com/sabi-health/sabi-api/utils"
)

// recordResponse closes the outreach loop. It accepts two shapes keyed
// by the delivery log id in the path: a JSON body from the in-app call
// simulation, or Twilio's form-encoded digit input. JSON callers get
// coded JSON errors; voice callers always get a spoken document, even
// when the record is missing.
func (s *Server) recordResponse(c *gin.Context) {
	logID, err := uuid.Parse(c.Param("logID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if strings.HasPrefix(c.ContentType(), "application/json") {
		s.recordJSONResponse(c, logID)
		return
	}

	s.recordDigitResponse(c, logID)
}

func (s *Server) recordJSONResponse(c *gin.Context, logID uuid.UUID) {
	var params struct {
		Response string   `json:"response"`
		Lat      *float64 `json:"lat"`
		Lon      *float64 `json:"lon"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.Response != schema.ResponseFever && params.Response != schema.ResponseFine {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidResponse)
		return
	}

	logEntry, err := s.store.GetLog(logID)
	if err != nil {
		if err == store.ErrLogNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorLogNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if err := s.store.UpdateLogResponse(logID, params.Response); shouldInterupt(err, c) {
		return
	}
	s.metrics.Counter("respond.recorded").Inc(1)

	if params.Response != schema.ResponseFever {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Response recorded"})
		return
	}

	var loc *schema.Location
	if params.Lat != nil && params.Lon != nil {
		loc = &schema.Location{Latitude: *params.Lat, Longitude: *params.Lon}
	}

	user, err := s.store.GetUser(logEntry.UserID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"message":  "Response recorded",
		"hospital": s.resolveFacility(user.LGA, loc),
	})
}

func (s *Server) recordDigitResponse(c *gin.Context, logID uuid.UUID) {
	digits := c.PostForm("Digits")

	logEntry, err := s.store.GetLog(logID)
	if err != nil {
		// voice callers get a graceful spoken message, never an error
		speak(c, utils.Spoken(utils.VoiceRecordNotFound, nil))
		return
	}

	switch digits {
	case "1":
		if err := s.store.UpdateLogResponse(logID, schema.ResponseFever); shouldInterupt(err, c) {
			return
		}
		s.metrics.Counter("respond.recorded").Inc(1)

		user, err := s.store.GetUser(logEntry.UserID)
		if shouldInterupt(err, c) {
			return
		}

		hospital := s.resolveFacility(user.LGA, nil)
		speak(c, utils.Spoken(utils.VoiceFeverReferral, map[string]interface{}{
			"Facility": hospital.Recommendation,
		}))

	case "2":
		if err := s.store.UpdateLogResponse(logID, schema.ResponseFine); shouldInterupt(err, c) {
			return
		}
		s.metrics.Counter("respond.recorded").Inc(1)

		speak(c, utils.Spoken(utils.VoiceFineClosing, nil))

	default:
		// unrecognized digit: close gracefully without touching the record
		speak(c, utils.Spoken(utils.VoiceInvalidResponse, nil))
	}
}

func speak(c *gin.Context, text string) {
	c.Data(http.StatusOK, "application/xml", []byte(twilio.SpokenResponse(text).Render()))
}
