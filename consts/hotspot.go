package consts

import (
	"strings"
)

// Hotspot marks an LGA with elevated baseline disease risk, taken from
// NCDC situation reports (February 2026).
type Hotspot struct {
	Disease  string `json:"disease"`
	Severity string `json:"risk"`
	Source   string `json:"source"`
}

var Hotspots map[string]Hotspot

func init() {
	Hotspots = make(map[string]Hotspot)

	Hotspots["kano"] = Hotspot{"Lassa fever", "HIGH", "NCDC Situation Report Week 7 2026"}
	Hotspots["benue"] = Hotspot{"Lassa fever", "HIGH", "NCDC Situation Report Week 7 2026"}
	Hotspots["sokoto"] = Hotspot{"Malaria", "HIGH", "NCDC Weekly Epidemiological Report Feb 2026"}
	Hotspots["lagos"] = Hotspot{"Cholera", "HIGH", "NCDC Situation Report Week 6 2026"}
	Hotspots["abuja"] = Hotspot{"Malaria", "MEDIUM", "NCDC Weekly Epidemiological Report Feb 2026"}
	Hotspots["kaduna"] = Hotspot{"Lassa fever", "MEDIUM", "NCDC Situation Report Week 7 2026"}
	Hotspots["maiduguri"] = Hotspot{"Cholera", "HIGH", "NCDC Situation Report Week 6 2026"}
	Hotspots["plateau"] = Hotspot{"Cholera", "HIGH", "NCDC Situation Report Week 8 2026"}
	Hotspots["zamfara"] = Hotspot{"Cholera", "HIGH", "NCDC Situation Report Week 8 2026"}
	Hotspots["cross river"] = Hotspot{"Cholera", "HIGH", "NCDC Situation Report Week 8 2026"}
	Hotspots["enugu"] = Hotspot{"Malaria", "MEDIUM", "NCDC Weekly Epidemiological Report Feb 2026"}
}

func hotspotKey(lga string) string {
	return strings.ToLower(strings.TrimSpace(lga))
}

// HotspotInfo returns the hotspot record for an LGA if it is listed.
func HotspotInfo(lga string) (Hotspot, bool) {
	h, ok := Hotspots[hotspotKey(lga)]
	return h, ok
}

// IsHotspot reports whether an LGA is listed as a hotspot.
func IsHotspot(lga string) bool {
	_, ok := Hotspots[hotspotKey(lga)]
	return ok
}
