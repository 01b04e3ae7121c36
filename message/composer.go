package message

import (
	"fmt"
	"strings"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"github.com/sabi-health/sabi-api/consts"
)

const logPrefix = "composer"

// Generator matches the gemini client. Kept local so the composer can
// be exercised with a stub in tests.
type Generator interface {
	Generate(prompt string) (string, error)
}

// Composer turns a risk assessment into a short spoken warning. A nil
// or failing generator degrades to a deterministic fallback message, so
// composition never fails.
type Composer struct {
	generator Generator
}

func NewComposer(generator Generator) *Composer {
	return &Composer{
		generator: generator,
	}
}

// Compose produces the warning script for one user. The output is
// always trimmed and stripped of quotation characters so it can be
// embedded into call markup.
func (c *Composer) Compose(userName, lga string, riskFactors []string, personality string) string {
	if c.generator == nil {
		return Sanitize(Fallback(userName, lga))
	}

	text, err := c.generator.Generate(buildPrompt(userName, lga, riskFactors, personality))
	if err != nil {
		log.WithField("prefix", logPrefix).Warnf("message generation failed: %s", err)
		sentry.CaptureException(err)
		return Sanitize(Fallback(userName, lga))
	}
	if strings.TrimSpace(text) == "" {
		return Sanitize(Fallback(userName, lga))
	}

	return Sanitize(text)
}

func buildPrompt(userName, lga string, riskFactors []string, personality string) string {
	p := consts.PersonalityByName(personality)

	var b strings.Builder
	fmt.Fprintf(&b, "You are %s from Sabi Health, %s.\n", p.Name, p.Style)
	fmt.Fprintf(&b, "User Name: %s\n", userName)
	fmt.Fprintf(&b, "LGA: %s\n", lga)
	fmt.Fprintf(&b, "Current Risks: %s\n\n", strings.Join(riskFactors, ", "))
	b.WriteString("Generate a short, friendly preventive health message in authentic Nigerian Pidgin/English.\n")
	b.WriteString("Include at least two concrete preventive actions tied to the risks above ")
	b.WriteString("(e.g. for Lassa fever, cover food against rats; for rain or malaria, sleep under a treated net; for cholera, boil drinking water).\n")
	b.WriteString("End by asking if anyone in their house has a fever.\n")
	b.WriteString("Keep it under 60 words. Vary your phrasing between calls; never repeat a canned script. Speak like a caring neighbor.")

	return b.String()
}

// Fallback is the deterministic script used when generation is
// unavailable. It always names the location and urges safety.
func Fallback(userName, lga string) string {
	return fmt.Sprintf(
		"Hello %s, na Sabi Health dey call you. Risk don high for %s area. Abeg cover your food well well, sleep under treated mosquito net, and if anybody get fever make dem go hospital quick quick. Anybody dey sick for your house?",
		userName, lga)
}

var quoteStripper = strings.NewReplacer(
	`"`, "",
	"“", "",
	"”", "",
	"‘", "",
	"’", "",
	"`", "",
)

// Sanitize trims whitespace and removes quotation characters that
// could prematurely terminate call markup attributes.
func Sanitize(s string) string {
	return strings.TrimSpace(quoteStripper.Replace(s))
}
