package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBIndexer ensures the geospatial and lookup indices the facility
// queries depend on. It panics on failure since the service cannot run
// escalation without the 2dsphere index.
type MongoDBIndexer struct {
	ctx      context.Context
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	client, err := mongo.NewClient(options.Client().ApplyURI(connectionString))
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) IndexAll() {
	if err := m.IndexFacilityCollection(); err != nil {
		panic(err)
	}
}

// IndexFacilityCollection creates the 2dsphere index used by nearest-facility
// lookups and a plain index over lga for per-area fallback queries.
func (m *MongoDBIndexer) IndexFacilityCollection() error {
	c := m.Database.Collection(FacilityCollection)

	if _, err := c.Indexes().CreateOne(m.ctx, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	}); err != nil {
		return err
	}

	_, err := c.Indexes().CreateOne(m.ctx, mongo.IndexModel{
		Keys: bson.M{
			"lga": 1,
		},
	})
	return err
}
