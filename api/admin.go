package api

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sabi-health/sabi-api/schema"
	"github.com/sabi-health/sabi-api/weather"
)

// mockRainStatus reports whether the simulated-rainfall override is on.
func (s *Server) mockRainStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"enabled":     s.mockRain.Enabled(),
		"rainfall_mm": weather.MockRainfallMM,
	})
}

// toggleMockRain flips the simulated-rainfall override. Turning it on
// with a user id additionally drops a heavy-rain item into that user's
// feed, so demos show the alert without waiting for a storm.
func (s *Server) toggleMockRain(c *gin.Context) {
	var params struct {
		Enabled bool   `json:"enabled"`
		UserID  string `json:"user_id"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	s.mockRain.Set(params.Enabled)
	log.WithField("api", "toggleMockRain").Infof("mock rain set to %v", params.Enabled)

	if params.Enabled && params.UserID != "" {
		if userID, err := uuid.Parse(params.UserID); err == nil {
			go func() {
				if _, err := s.store.CreateNotification(userID,
					"Heavy rainfall expected",
					fmt.Sprintf("Simulated rainfall of %.1fmm is now active for your area. Expect flood-risk warnings.", weather.MockRainfallMM),
					schema.NotificationRain); err != nil {
					log.WithField("api", "toggleMockRain").Warnf("create rain notification failed: %s", err)
					sentry.CaptureException(err)
				}
			}()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"enabled": params.Enabled,
	})
}
