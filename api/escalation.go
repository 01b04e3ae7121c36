package api

import (
	"github.com/sabi-health/sabi-api/consts"
	"github.com/sabi-health/sabi-api/schema"
)

// hospitalResponse is the escalation payload handed to symptomatic
// users. A resolution of last resort carries only the generic advice.
type hospitalResponse struct {
	Name           string  `json:"name,omitempty"`
	Address        string  `json:"address,omitempty"`
	Lat            float64 `json:"lat,omitempty"`
	Lon            float64 `json:"lon,omitempty"`
	Recommendation string  `json:"recommendation"`
}

// resolveFacility picks the referral point for a symptomatic response.
// Precise coordinates win; the per-LGA default is next; the generic
// primary-health-center advice is the floor.
func (s *Server) resolveFacility(lga string, loc *schema.Location) hospitalResponse {
	if loc != nil {
		facility, err := s.mongoStore.NearestFacility(consts.FacilitySearchRange, *loc)
		if err == nil {
			return facilityResponse(*facility)
		}
		log.WithField("api", "escalation").Warnf("nearest facility lookup failed for %s: %s", lga, err)
	}

	if facility, ok := consts.DefaultFacilityForLGA(lga); ok {
		return facilityResponse(facility)
	}

	return hospitalResponse{
		Recommendation: consts.GenericFacilityAdvice,
	}
}

func facilityResponse(f schema.HealthFacility) hospitalResponse {
	return hospitalResponse{
		Name:           f.Name,
		Address:        f.Address,
		Lat:            f.Latitude(),
		Lon:            f.Longitude(),
		Recommendation: f.Name + ", " + f.Address,
	}
}
