package api

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sabi-health/sabi-api/schema"
	"github.com/sabi-health/sabi-api/store"
)

// reportSymptoms appends a self-reported check-in. Symptomatic records
// additionally resolve a referral facility, preferring the precise
// coordinates on the record over the user's LGA default.
func (s *Server) reportSymptoms(c *gin.Context) {
	var params struct {
		UserID   string   `json:"user_id"`
		Fever    bool     `json:"fever"`
		Cough    bool     `json:"cough"`
		Headache bool     `json:"headache"`
		Fatigue  bool     `json:"fatigue"`
		Diarrhea bool     `json:"diarrhea"`
		Vomiting bool     `json:"vomiting"`
		Notes    string   `json:"notes"`
		Lat      *float64 `json:"lat"`
		Lon      *float64 `json:"lon"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	userID, err := uuid.Parse(params.UserID)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	user, err := s.store.GetUser(userID)
	if err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	record, err := s.store.CreateSymptomRecord(&schema.SymptomRecord{
		UserID:    user.ID,
		Fever:     params.Fever,
		Cough:     params.Cough,
		Headache:  params.Headache,
		Fatigue:   params.Fatigue,
		Diarrhea:  params.Diarrhea,
		Vomiting:  params.Vomiting,
		Notes:     params.Notes,
		Latitude:  params.Lat,
		Longitude: params.Lon,
	})
	if shouldInterupt(err, c) {
		return
	}

	resp := gin.H{
		"status": "ok",
		"record": record,
	}

	if record.Symptomatic() {
		var loc *schema.Location
		if params.Lat != nil && params.Lon != nil {
			loc = &schema.Location{Latitude: *params.Lat, Longitude: *params.Lon}
		}
		hospital := s.resolveFacility(user.LGA, loc)
		resp["hospital"] = hospital

		// best effort: the feed item never blocks the report
		go func() {
			if _, err := s.store.CreateNotification(user.ID,
				"Please visit a health facility",
				hospital.Recommendation,
				schema.NotificationAlert); err != nil {
				log.WithField("api", "reportSymptoms").Warnf("create escalation notification failed: %s", err)
				sentry.CaptureException(err)
			}
		}()
	}

	c.JSON(http.StatusOK, resp)
}
