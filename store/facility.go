package store

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sabi-health/sabi-api/schema"
)

var ErrNoNearbyFacility = errors.New("no health facility within range")

// Facility - health facility reference data queries
type Facility interface {
	NearestFacility(distance int, cords schema.Location) (*schema.HealthFacility, error)
	SeedFacilities(facilities []schema.HealthFacility) error
}

// NearestFacility returns the closest facility within distance meters
// of the given coordinates.
func (m *mongoDB) NearestFacility(distance int, cords schema.Location) (*schema.HealthFacility, error) {
	c := m.client.Database(m.database).Collection(schema.FacilityCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var facility schema.HealthFacility
	if err := c.FindOne(ctx, distanceQuery(distance, cords)).Decode(&facility); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoNearbyFacility
		}
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearest facility with error: %s", err)
		return nil, fmt.Errorf("nearest facility query with error: %s", err)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearest facility %s near long:%v lat:%v", facility.Name,
		cords.Longitude, cords.Latitude)

	return &facility, nil
}

// SeedFacilities loads the reference facility table into mongodb when
// the collection is still empty.
func (m *mongoDB) SeedFacilities(facilities []schema.HealthFacility) error {
	c := m.client.Database(m.database).Collection(schema.FacilityCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	count, err := c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(facilities))
	for _, f := range facilities {
		f.ID = primitive.NilObjectID
		docs = append(docs, f)
	}

	_, err = c.InsertMany(ctx, docs)
	return err
}

func distanceQuery(distance int, cords schema.Location) bson.D {
	return bson.D{{
		Key: "location",
		Value: bson.D{{
			Key: "$nearSphere",
			Value: bson.D{{
				Key: "$geometry",
				Value: bson.D{{
					Key:   "type",
					Value: "Point",
				}, {
					Key:   "coordinates",
					Value: bson.A{cords.Longitude, cords.Latitude},
				}, {
					Key:   "$maxDistance",
					Value: distance,
				}},
			}},
		}},
	}}
}
