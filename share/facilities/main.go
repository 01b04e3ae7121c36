package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sabi-health/sabi-api/schema"
)

// facilityRecord is the import file row. Coordinates are plain
// lat/lon, converted to GeoJSON on insert.
type facilityRecord struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	LGA       string  `json:"lga"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("sabi")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var inputFile string
	flag.StringVar(&inputFile, "f", "facilities.json", "path of facility records file")
	flag.Parse()

	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	file, err := os.Open(inputFile)
	if err != nil {
		panic(err)
	}

	var records []facilityRecord
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		panic(err)
	}

	var facilities []interface{}
	for _, r := range records {
		facilities = append(facilities, schema.HealthFacility{
			Name:    r.Name,
			Address: r.Address,
			LGA:     r.LGA,
			Location: schema.NewGeoJSON(schema.Location{
				Latitude:  r.Latitude,
				Longitude: r.Longitude,
			}),
		})
	}

	if _, err := client.Database(viper.GetString("mongo.database")).Collection(schema.FacilityCollection).InsertMany(ctx, facilities); err != nil {
		panic(err)
	}
}
