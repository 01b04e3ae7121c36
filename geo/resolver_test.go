package geo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sabi-health/sabi-api/consts"
	"github.com/sabi-health/sabi-api/schema"
)

type stubResolver struct {
	loc   schema.Location
	err   error
	calls int
}

func (s *stubResolver) Resolve(lga string) (schema.Location, error) {
	s.calls++
	return s.loc, s.err
}

func TestStaticLocationResolver(t *testing.T) {
	r := NewStaticLocationResolver()

	loc, err := r.Resolve("Ikeja")
	assert.NoError(t, err)
	assert.Equal(t, consts.LGACoordinates["Ikeja"], loc, "wrong coordinates")

	loc, err = r.Resolve("Atlantis")
	assert.NoError(t, err, "static resolution is total")
	assert.Equal(t, consts.DefaultLocation, loc, "unknown lga must resolve to the default")
}

func TestMultipleLocationResolverFirstWins(t *testing.T) {
	first := &stubResolver{loc: schema.Location{Latitude: 1, Longitude: 2}}
	second := &stubResolver{loc: schema.Location{Latitude: 3, Longitude: 4}}

	r := NewMultipleLocationResolver(first, second)

	loc, err := r.Resolve("Ikeja")
	assert.NoError(t, err)
	assert.Equal(t, first.loc, loc, "first successful resolver must win")
	assert.Equal(t, 0, second.calls, "later resolvers must not run")
}

func TestMultipleLocationResolverFallsThrough(t *testing.T) {
	first := &stubResolver{err: errors.New("geocoding quota exceeded")}
	second := &stubResolver{loc: schema.Location{Latitude: 3, Longitude: 4}}

	r := NewMultipleLocationResolver(first, second)

	loc, err := r.Resolve("Ikeja")
	assert.NoError(t, err)
	assert.Equal(t, second.loc, loc, "fallback resolver must serve")
}

func TestMultipleLocationResolverAggregatesErrors(t *testing.T) {
	r := NewMultipleLocationResolver(
		&stubResolver{err: errors.New("no geo information found")},
		&stubResolver{err: errors.New("upstream timeout")},
	)

	_, err := r.Resolve("Ikeja")
	assert.Error(t, err)
	assert.EqualError(t, err, "#0: no geo information found\n#1: upstream timeout")

	e, ok := err.(*MultipleResolverErrors)
	assert.True(t, ok, "wrong error type")
	assert.Len(t, e.errors, 2, "wrong error count")
}

func TestResolveLGA(t *testing.T) {
	original := defaultResolver
	defer SetLocationResolver(original)

	SetLocationResolver(nil)
	_, err := ResolveLGA("Ikeja")
	assert.Equal(t, ErrResolverNotInitialized, err, "nil resolver must error")

	SetLocationResolver(NewStaticLocationResolver())
	loc, err := ResolveLGA("Kano")
	assert.NoError(t, err)
	assert.Equal(t, consts.LGACoordinates["Kano"], loc, "wrong resolution")
}
