package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sabi-health/sabi-api/consts"
	"github.com/sabi-health/sabi-api/schema"
)

type FacilityTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewFacilityTestSuite(connURI, dbName string) *FacilityTestSuite {
	return &FacilityTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *FacilityTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err := mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.testDatabase.Drop(context.Background()); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *FacilityTestSuite) store() MongoStore {
	return NewMongoStore(s.mongoClient, s.testDBName)
}

func (s *FacilityTestSuite) TestSeedAndNearestFacility() {
	m := s.store()

	s.NoError(m.SeedFacilities(consts.AllDefaultFacilities()))

	// a point in central Kano, the Kano facility is within a few km
	facility, err := m.NearestFacility(consts.FacilitySearchRange, schema.Location{
		Latitude:  12.0022,
		Longitude: 8.5920,
	})
	s.NoError(err)
	s.Equal("Kano General Hospital", facility.Name)
}

func (s *FacilityTestSuite) TestSeedIsIdempotent() {
	m := s.store()

	s.NoError(m.SeedFacilities(consts.AllDefaultFacilities()))
	s.NoError(m.SeedFacilities(consts.AllDefaultFacilities()))

	count, err := s.testDatabase.Collection(schema.FacilityCollection).CountDocuments(context.Background(), map[string]interface{}{})
	s.NoError(err)
	s.Equal(int64(len(consts.AllDefaultFacilities())), count)
}

func (s *FacilityTestSuite) TestNearestFacilityOutOfRange() {
	m := s.store()

	s.NoError(m.SeedFacilities(consts.AllDefaultFacilities()))

	// middle of the Atlantic, nothing within range
	_, err := m.NearestFacility(consts.FacilitySearchRange, schema.Location{
		Latitude:  0.0,
		Longitude: -30.0,
	})
	s.Error(err)
	s.Equal(ErrNoNearbyFacility, err)
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to suite.Run
func TestFacilityTestSuite(t *testing.T) {
	connURI := os.Getenv("MONGO_TEST_URI")
	if connURI == "" {
		t.Skip("Skip facility tests due to missing mongodb connection")
	}
	suite.Run(t, NewFacilityTestSuite(connURI, "test-db"))
}
