package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sabi-health/sabi-api/consts"
	"github.com/sabi-health/sabi-api/geo"
	"github.com/sabi-health/sabi-api/risk"
	"github.com/sabi-health/sabi-api/score"
	"github.com/sabi-health/sabi-api/store"
)

// register is the API for registering a new alert recipient
func (s *Server) register(c *gin.Context) {
	logger := log.WithField("api", "register")

	var params struct {
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		LGA         string `json:"lga"`
		Personality string `json:"ai_personality"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.Name == "" || params.Phone == "" || params.LGA == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	// unknown personality names silently fall back to the default
	personality := consts.PersonalityByName(params.Personality).Name

	user, err := s.store.CreateUser(params.Name, params.Phone, params.LGA, personality)
	if err != nil {
		if err == store.ErrPhoneTaken {
			abortWithEncoding(c, http.StatusConflict, errorPhoneTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.store.ListUsers()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, users)
}

// me aggregates everything the dashboard needs in one call: the user,
// their delivery logs and symptom history, the current risk assessment
// and the derived health score.
func (s *Server) me(c *gin.Context) {
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

	logs, err := s.store.ListLogsByUser(userID)
	if shouldInterupt(err, c) {
		return
	}

	symptoms, err := s.store.ListSymptomsByUser(userID, 30)
	if shouldInterupt(err, c) {
		return
	}

	loc, err := geo.ResolveLGA(user.LGA)
	if shouldInterupt(err, c) {
		return
	}

	rainfall := s.gauge.RecentRainfall(loc.Latitude, loc.Longitude)
	assessment := risk.Classify(user.LGA, rainfall)

	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"logs":         logs,
		"symptoms":     symptoms,
		"health_score": score.HealthScore(assessment.Level, symptoms),
		"current_risk": assessment.Level.String(),
		"rainfall_mm":  rainfall,
	})
}

// updatePersonality changes the message style voice for a user; it is
// the only mutable user attribute.
func (s *Server) updatePersonality(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var params struct {
		Personality string `json:"ai_personality"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	personality := consts.PersonalityByName(params.Personality).Name

	if err := s.store.UpdateUserPersonality(userID, personality); err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK", "ai_personality": personality})
}
