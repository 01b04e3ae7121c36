package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sabi-health/sabi-api/geo"
	"github.com/sabi-health/sabi-api/risk"
	"github.com/sabi-health/sabi-api/store"
)

// riskCheck runs the assessment pipeline for one user without any
// outreach side effects.
func (s *Server) riskCheck(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"user_id":     user.ID,
		"risk":        assessment.Level.String(),
		"rainfall_mm": assessment.RainfallMM,
		"factors":     assessment.Factors,
	})
}
