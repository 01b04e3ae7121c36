package api

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateWeeklyPredictionHeavyRain(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 20; i++ {
		p := generateWeeklyPrediction("Kano", 20.0, now)

		assert.Equal(t, "HIGH", p.RiskLevel, "heavy rain must forecast high risk")
		assert.Contains(t, forecastDiseases[:2], p.PredictedRisk, "heavy rain must pick a rain-driven disease")
		assert.Equal(t, "March 10, 2026", p.WeekStarting, "wrong week start")
		assert.Contains(t, p.Summary, "March 17, 2026", "summary must name the week ending date")
		assert.Contains(t, p.Summary, "Kano", "summary must name the area")
	}
}

func TestGenerateWeeklyPredictionLightRain(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 20; i++ {
		p := generateWeeklyPrediction("Lagos", 5.0, now)

		assert.Contains(t, []string{"LOW", "MODERATE"}, p.RiskLevel, "light rain must not forecast high risk")
		assert.Contains(t, forecastDiseases, p.PredictedRisk, "unknown disease forecast")
	}
}

func TestGenerateWeeklyPredictionConfidenceRange(t *testing.T) {
	now := time.Now().UTC()

	for i := 0; i < 50; i++ {
		p := generateWeeklyPrediction("Kano", 20.0, now)

		assert.True(t, strings.HasSuffix(p.Confidence, "%"), "confidence must be a percentage")
		n, err := strconv.Atoi(strings.TrimSuffix(p.Confidence, "%"))
		assert.Nil(t, err, "confidence must be numeric")
		assert.True(t, n >= 70 && n <= 95, "confidence out of range: %d", n)
	}
}
