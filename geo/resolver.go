package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"github.com/sabi-health/sabi-api/consts"
	"github.com/sabi-health/sabi-api/schema"
)

var (
	ErrNoGeoInfoFound         = fmt.Errorf("no geo information found")
	ErrResolverNotInitialized = fmt.Errorf("location resolver is not initialized")
)

// LocationResolver maps an LGA name to coordinates.
type LocationResolver interface {
	Resolve(lga string) (schema.Location, error)
}

var defaultResolver LocationResolver

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// StaticLocationResolver resolves from the in-code LGA table. Unknown
// names map to the default location, so Resolve is total over all
// string inputs.
type StaticLocationResolver struct{}

func NewStaticLocationResolver() *StaticLocationResolver {
	return &StaticLocationResolver{}
}

func (r *StaticLocationResolver) Resolve(lga string) (schema.Location, error) {
	return consts.CoordinatesForLGA(lga), nil
}

// GeocodingLocationResolver forward-geocodes an LGA name through the
// Google Maps API. It only covers names missing from the static table;
// known names short-circuit to the table without a network call.
type GeocodingLocationResolver struct {
	client *maps.Client
}

func NewGeocodingLocationResolver(client *maps.Client) *GeocodingLocationResolver {
	return &GeocodingLocationResolver{
		client: client,
	}
}

func (g *GeocodingLocationResolver) Resolve(lga string) (schema.Location, error) {
	if loc, ok := consts.LGACoordinates[lga]; ok {
		return loc, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  fmt.Sprintf("%s, Nigeria", lga),
		Language: "en",
	})
	if nil != err {
		return schema.Location{}, err
	}

	if len(geos) == 0 {
		return schema.Location{}, ErrNoGeoInfoFound
	}

	return schema.Location{
		Latitude:  geos[0].Geometry.Location.Lat,
		Longitude: geos[0].Geometry.Location.Lng,
	}, nil
}

// MultipleLocationResolver tries each resolver in order and returns the
// first successful result.
type MultipleLocationResolver struct {
	resolvers []LocationResolver
}

func NewMultipleLocationResolver(resolvers ...LocationResolver) *MultipleLocationResolver {
	return &MultipleLocationResolver{
		resolvers: resolvers,
	}
}

func (r *MultipleLocationResolver) Resolve(lga string) (schema.Location, error) {
	var errors []error
	for _, resolver := range r.resolvers {
		result, err := resolver.Resolve(lga)
		if err != nil {
			errors = append(errors, err)
		} else {
			return result, nil
		}
	}

	return schema.Location{}, NewMultipleResolverErrors(errors)
}

func SetLocationResolver(resolver LocationResolver) {
	defaultResolver = resolver
}

// ResolveLGA resolves through the configured resolver chain. The chain
// always ends with the static resolver, so as long as a resolver has
// been set this never fails.
func ResolveLGA(lga string) (schema.Location, error) {
	if defaultResolver == nil {
		return schema.Location{}, ErrResolverNotInitialized
	}

	return defaultResolver.Resolve(lga)
}
