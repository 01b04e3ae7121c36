package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FacilityCollection = "facilities"
)

// HealthFacility is read-only reference data used for escalation
// routing after a symptomatic response.
type HealthFacility struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name     string             `bson:"name" json:"name"`
	Address  string             `bson:"address" json:"address"`
	LGA      string             `bson:"lga" json:"lga"`
	Location GeoJSON            `bson:"location" json:"location"`
}

func (f HealthFacility) Latitude() float64 {
	if len(f.Location.Coordinates) == 2 {
		return f.Location.Coordinates[1]
	}
	return 0
}

func (f HealthFacility) Longitude() float64 {
	if len(f.Location.Coordinates) == 2 {
		return f.Location.Coordinates[0]
	}
	return 0
}
