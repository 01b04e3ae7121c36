package consts

// DefaultPersonality is used when a user never picked a voice or picked
// one we no longer carry.
const DefaultPersonality = "Mama Health"

// Personality is a named message style. The style text is embedded into
// the generation prompt to steer tone and phrasing.
type Personality struct {
	Name  string `json:"name"`
	Style string `json:"style"`
}

var Personalities map[string]Personality

func init() {
	Personalities = make(map[string]Personality)

	Personalities["Mama Health"] = Personality{
		Name:  "Mama Health",
		Style: "a warm, motherly neighbor who mixes Nigerian Pidgin and English, gentle but firm about safety",
	}
	Personalities["Oga Doctor"] = Personality{
		Name:  "Oga Doctor",
		Style: "a respected community doctor, clear and authoritative, plain English with a few Pidgin phrases",
	}
	Personalities["Area Sister"] = Personality{
		Name:  "Area Sister",
		Style: "a cheerful young health volunteer, playful street Pidgin, keeps things light but practical",
	}
	Personalities["Coach Sabi"] = Personality{
		Name:  "Coach Sabi",
		Style: "an energetic fitness-coach type, short punchy sentences, motivational tone",
	}
}

// PersonalityByName returns the named personality, falling back to the
// default for unknown names.
func PersonalityByName(name string) Personality {
	if p, ok := Personalities[name]; ok {
		return p
	}
	return Personalities[DefaultPersonality]
}
