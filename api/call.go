package api

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sabi-health/sabi-api/dispatch"
	"github.com/sabi-health/sabi-api/geo"
	"github.com/sabi-health/sabi-api/risk"
	"github.com/sabi-health/sabi-api/schema"
	"github.com/sabi-health/sabi-api/store"
)

// callUser runs the full outreach pipeline for one user: resolve the
// LGA, measure rainfall, classify, then hand over to the dispatcher.
// LOW risk without ?force=true ends with no side effects at all.
func (s *Server) callUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userID"))
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

	loc, err := geo.ResolveLGA(user.LGA)
	if shouldInterupt(err, c) {
		return
	}

	rainfall := s.gauge.RecentRainfall(loc.Latitude, loc.Longitude)
	assessment := risk.Classify(user.LGA, rainfall)

	force := c.Query("force") == "true"
	outcome, err := s.dispatcher.Dispatch(user, assessment, force)
	if shouldInterupt(err, c) {
		return
	}

	if outcome.Skipped {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"risk":    outcome.Level.String(),
			"message": outcome.Message,
		})
		return
	}

	// best effort: the feed alert never blocks the call result
	go func() {
		title := fmt.Sprintf("Health alert for %s", user.LGA)
		if _, err := s.store.CreateNotification(user.ID, title, outcome.Script, schema.NotificationAlert); err != nil {
			log.WithField("api", "callUser").Warnf("create alert notification failed: %s", err)
			sentry.CaptureException(err)
		}
	}()

	resp := gin.H{
		"status":      "call_initiated",
		"method":      outcome.Method,
		"call_id":     outcome.LogID,
		"risk":        outcome.Level.String(),
		"rainfall_mm": outcome.RainfallMM,
		"script":      outcome.Script,
	}
	if outcome.Method == dispatch.MethodTwilio {
		resp["call_sid"] = outcome.CallSID
	} else {
		resp["audio_url"] = outcome.AudioURL
	}

	c.JSON(http.StatusOK, resp)
}

// callStatus receives provider callbacks about call progress. The
// payload is informational only.
func (s *Server) callStatus(c *gin.Context) {
	logID := c.Param("logID")
	status := c.PostForm("CallStatus")

	log.WithField("api", "callStatus").Infof("call %s status: %s", logID, status)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
