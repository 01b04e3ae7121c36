package api

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sabi-health/sabi-api/consts"
	"github.com/sabi-health/sabi-api/geo"
	"github.com/sabi-health/sabi-api/risk"
	"github.com/sabi-health/sabi-api/schema"
	"github.com/sabi-health/sabi-api/store"
)

var forecastDiseases = []string{"Malaria", "Cholera", "Lassa Fever", "Typhoid"}

func init() {
	rand.Seed(time.Now().UnixNano())
}

// weeklyPrediction is an outlook for the coming week derived from
// current rainfall. Heavy rain pins the forecast to the water-borne
// and mosquito diseases.
type weeklyPrediction struct {
	LGA            string `json:"lga"`
	WeekStarting   string `json:"week_starting"`
	PredictedRisk  string `json:"predicted_risk"`
	RiskLevel      string `json:"risk_level"`
	Confidence     string `json:"confidence"`
	Summary        string `json:"summary"`
	Recommendation string `json:"recommendation"`
}

func generateWeeklyPrediction(lga string, rainfallMM float64, now time.Time) weeklyPrediction {
	var primaryRisk, riskLevel string
	if rainfallMM > risk.RainfallThresholdMM {
		primaryRisk = forecastDiseases[rand.Intn(2)]
		riskLevel = "HIGH"
	} else {
		primaryRisk = forecastDiseases[rand.Intn(len(forecastDiseases))]
		if rand.Float64() > 0.5 {
			riskLevel = "MODERATE"
		} else {
			riskLevel = "LOW"
		}
	}

	nextWeek := now.AddDate(0, 0, 7).Format("January 2, 2006")

	return weeklyPrediction{
		LGA:           lga,
		WeekStarting:  now.Format("January 2, 2006"),
		PredictedRisk: primaryRisk,
		RiskLevel:     riskLevel,
		Confidence:    fmt.Sprintf("%d%%", 70+rand.Intn(26)),
		Summary: fmt.Sprintf("Based on environmental data and historical trends in %s, we expect a %s potential for %s outbreaks for the week ending %s.",
			lga, strings.ToLower(riskLevel), primaryRisk, nextWeek),
		Recommendation: fmt.Sprintf("Ensure you have %s preventive measures in place. Clean gutters and stay hydrated.",
			strings.ToLower(primaryRisk)),
	}
}

// predictWeekly produces the outlook for a user's LGA and drops it into
// their feed.
func (s *Server) predictWeekly(c *gin.Context) {
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

	location, err := geo.ResolveLGA(user.LGA)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	rainfall := s.gauge.RecentRainfall(location.Latitude, location.Longitude)
	prediction := generateWeeklyPrediction(user.LGA, rainfall, time.Now().UTC())

	go func() {
		if _, err := s.store.CreateNotification(user.ID,
			fmt.Sprintf("Weekly outlook: %s risk of %s", prediction.RiskLevel, prediction.PredictedRisk),
			prediction.Summary,
			schema.NotificationPrediction); err != nil {
			log.WithField("api", "predictWeekly").Warnf("create prediction notification failed: %s", err)
			sentry.CaptureException(err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{"prediction": prediction})
}

// generateTip hands a user one cultural health tip and records it in
// their feed.
func (s *Server) generateTip(c *gin.Context) {
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

	tip := consts.RandomTip()

	go func() {
		if _, err := s.store.CreateNotification(user.ID, tip.Title, tip.Content,
			schema.NotificationTip); err != nil {
			log.WithField("api", "generateTip").Warnf("create tip notification failed: %s", err)
			sentry.CaptureException(err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{"tip": tip})
}
