package consts

import (
	"github.com/sabi-health/sabi-api/schema"
)

// FacilitySearchRange is the radius in meters for the nearest-facility
// geo query.
const FacilitySearchRange = 50000

// GenericFacilityAdvice is the recommendation of last resort when
// nothing can be resolved for a location.
const GenericFacilityAdvice = "Please visit your nearest primary health center immediately for a check-up."

// DefaultFacilities are the per-LGA fallback referral points used when
// a symptomatic response carries no coordinates. Keys are normalized
// the same way as the hotspot table.
var DefaultFacilities map[string]schema.HealthFacility

func init() {
	DefaultFacilities = make(map[string]schema.HealthFacility)

	DefaultFacilities["kano"] = facility("Kano General Hospital", "Bompai Road, Kano", "Kano", 12.0100, 8.5421)
	DefaultFacilities["kano municipal"] = facility("Kano General Hospital", "Bompai Road, Kano", "Kano Municipal", 12.0100, 8.5421)
	DefaultFacilities["lagos"] = facility("Lagos Island General Hospital", "Broad Street, Lagos Island", "Lagos", 6.4520, 3.3958)
	DefaultFacilities["ikeja"] = facility("Lagos State University Teaching Hospital", "Oba Akinjobi Way, Ikeja", "Ikeja", 6.5966, 3.3421)
	DefaultFacilities["abuja"] = facility("National Hospital Abuja", "Plot 132 Central District, Abuja", "Abuja", 9.0433, 7.4774)
	DefaultFacilities["benue"] = facility("Benue State University Teaching Hospital", "Gboko Road, Makurdi", "Benue", 7.6893, 8.5625)
	DefaultFacilities["makurdi"] = facility("Benue State University Teaching Hospital", "Gboko Road, Makurdi", "Makurdi", 7.6893, 8.5625)
	DefaultFacilities["maiduguri"] = facility("University of Maiduguri Teaching Hospital", "Bama Road, Maiduguri", "Maiduguri", 11.8167, 13.1500)
	DefaultFacilities["port harcourt"] = facility("University of Port Harcourt Teaching Hospital", "East-West Road, Port Harcourt", "Port Harcourt", 4.8980, 6.9287)
	DefaultFacilities["enugu north"] = facility("University of Nigeria Teaching Hospital", "Ituku-Ozalla, Enugu", "Enugu North", 6.3350, 7.4580)
	DefaultFacilities["enugu"] = facility("University of Nigeria Teaching Hospital", "Ituku-Ozalla, Enugu", "Enugu", 6.3350, 7.4580)
	DefaultFacilities["jos north"] = facility("Jos University Teaching Hospital", "Lamingo Road, Jos", "Jos North", 9.9300, 8.8920)
}

func facility(name, address, lga string, lat, lon float64) schema.HealthFacility {
	return schema.HealthFacility{
		Name:     name,
		Address:  address,
		LGA:      lga,
		Location: schema.NewGeoJSON(schema.Location{Latitude: lat, Longitude: lon}),
	}
}

// DefaultFacilityForLGA returns the fallback facility for an LGA.
func DefaultFacilityForLGA(lga string) (schema.HealthFacility, bool) {
	f, ok := DefaultFacilities[hotspotKey(lga)]
	return f, ok
}

// AllDefaultFacilities returns the facility table for seeding the
// mongodb collection.
func AllDefaultFacilities() []schema.HealthFacility {
	seen := make(map[string]bool)
	facilities := make([]schema.HealthFacility, 0, len(DefaultFacilities))
	for _, f := range DefaultFacilities {
		if seen[f.Name+f.Address] {
			continue
		}
		seen[f.Name+f.Address] = true
		facilities = append(facilities, f)
	}
	return facilities
}
