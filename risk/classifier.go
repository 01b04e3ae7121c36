package risk

import (
	"fmt"

	"github.com/sabi-health/sabi-api/consts"
)

// Rainfall thresholds in millimeters over the trailing 24 hours.
const (
	RainfallThresholdMM        = 15.0
	CholeraRainfallThresholdMM = 20.0
)

// Level orders outreach urgency.
type Level int

const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
)

func (l Level) String() string {
	switch l {
	case LevelHigh:
		return "HIGH"
	case LevelMedium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// Assessment is a transient value object. It is recomputed from
// current weather and hotspot data on every check and never persisted.
type Assessment struct {
	LGA        string   `json:"lga"`
	Level      Level    `json:"-"`
	RainfallMM float64  `json:"rainfall_mm"`
	Factors    []string `json:"factors"`
}

// Classify combines hotspot status and recent rainfall into a risk
// level plus the list of contributing factors. The level is HIGH when
// the LGA is a listed hotspot or rainfall exceeds the first threshold;
// the cholera threshold only contributes a factor label. Pure function,
// no I/O.
func Classify(lga string, rainfallMM float64) Assessment {
	factors := []string{}

	hotspot, isHotspot := consts.HotspotInfo(lga)
	if isHotspot {
		factors = append(factors, fmt.Sprintf("Active %s cases in your area", hotspot.Disease))
	}
	if rainfallMM > RainfallThresholdMM {
		factors = append(factors, fmt.Sprintf("Heavy rainfall (%.1fmm) - increased mosquito breeding", rainfallMM))
	}
	if rainfallMM > CholeraRainfallThresholdMM {
		factors = append(factors, "Possible water contamination - cholera risk")
	}

	level := LevelLow
	if isHotspot || rainfallMM > RainfallThresholdMM {
		level = LevelHigh
	}

	return Assessment{
		LGA:        lga,
		Level:      level,
		RainfallMM: rainfallMM,
		Factors:    factors,
	}
}
