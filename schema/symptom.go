package schema

import (
	"time"

	"github.com/google/uuid"
)

// SymptomRecord is one self-reported check-in. Records are append-only;
// the health score reads the most recent three.
type SymptomRecord struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	Fever     bool      `json:"fever"`
	Cough     bool      `json:"cough"`
	Headache  bool      `json:"headache"`
	Fatigue   bool      `json:"fatigue"`
	Diarrhea  bool      `json:"diarrhea"`
	Vomiting  bool      `json:"vomiting"`
	Notes     string    `json:"notes" gorm:"type:text"`
	Latitude  *float64  `json:"lat,omitempty"`
	Longitude *float64  `json:"lon,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}

func (SymptomRecord) TableName() string {
	return "symptoms"
}

// FlagCount returns how many symptom flags are set on the record.
func (r SymptomRecord) FlagCount() int {
	count := 0
	for _, flag := range []bool{r.Fever, r.Cough, r.Headache, r.Fatigue, r.Diarrhea, r.Vomiting} {
		if flag {
			count++
		}
	}
	return count
}

// Symptomatic reports whether the record warrants an escalation to a
// health facility. Fever alone is enough; otherwise three or more
// flags together.
func (r SymptomRecord) Symptomatic() bool {
	return r.Fever || r.FlagCount() >= 3
}
