package score

import (
	"github.com/sabi-health/sabi-api/risk"
	"github.com/sabi-health/sabi-api/schema"
)

const (
	baseScore = 100

	// Each flagged symptom in a recent record costs symptomPenalty
	// points; fever costs double.
	symptomPenalty  = 8
	highRiskPenalty = 15

	// Only the most recent records weigh into the score.
	recentRecords = 3
)

// HealthScore turns the current risk level and the user's latest
// symptom records into a 0-100 wellness indicator. Records must be
// ordered newest first; anything beyond the three most recent entries
// is ignored.
func HealthScore(level risk.Level, records []schema.SymptomRecord) int {
	if len(records) > recentRecords {
		records = records[:recentRecords]
	}

	score := baseScore
	for _, r := range records {
		penalty := symptomPenalty * r.FlagCount()
		if r.Fever {
			penalty += symptomPenalty
		}
		score -= penalty
	}

	if level == risk.LevelHigh {
		score -= highRiskPenalty
	}

	if score < 0 {
		return 0
	}
	if score > baseScore {
		return baseScore
	}
	return score
}
