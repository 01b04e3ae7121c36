package consts

import (
	"github.com/sabi-health/sabi-api/schema"
)

// DefaultLocation is used when an LGA is not in the table. Risk checks
// always need some point to query weather for, so lookups never fail.
// The fallback is Abuja.
var DefaultLocation = schema.Location{Latitude: 9.0765, Longitude: 7.3986}

var LGACoordinates map[string]schema.Location

func init() {
	LGACoordinates = make(map[string]schema.Location)

	LGACoordinates["Kano Municipal"] = schema.Location{Latitude: 12.0022, Longitude: 8.5920}
	LGACoordinates["Ikeja"] = schema.Location{Latitude: 6.5913, Longitude: 3.3367}
	LGACoordinates["Abuja"] = schema.Location{Latitude: 9.0765, Longitude: 7.3986}
	LGACoordinates["Makurdi"] = schema.Location{Latitude: 7.7323, Longitude: 8.5212}
	LGACoordinates["Maiduguri"] = schema.Location{Latitude: 11.8311, Longitude: 13.1507}
	LGACoordinates["Port Harcourt"] = schema.Location{Latitude: 4.8156, Longitude: 7.0498}
	LGACoordinates["Enugu North"] = schema.Location{Latitude: 6.4484, Longitude: 7.5143}
	LGACoordinates["Jos North"] = schema.Location{Latitude: 9.8965, Longitude: 8.8583}
	LGACoordinates["Kano"] = schema.Location{Latitude: 12.0022, Longitude: 8.5920}
	LGACoordinates["Lagos"] = schema.Location{Latitude: 6.5244, Longitude: 3.3792}
	LGACoordinates["Benue"] = schema.Location{Latitude: 7.3369, Longitude: 8.7404}
}

// CoordinatesForLGA returns the coordinates of a known LGA, or the
// default location for any unrecognized name.
func CoordinatesForLGA(lga string) schema.Location {
	if loc, ok := LGACoordinates[lga]; ok {
		return loc
	}
	return DefaultLocation
}
