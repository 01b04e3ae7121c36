package dispatch

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/sabi-health/sabi-api/external/twilio"
	"github.com/sabi-health/sabi-api/external/yarngpt"
	"github.com/sabi-health/sabi-api/message"
	"github.com/sabi-health/sabi-api/risk"
	"github.com/sabi-health/sabi-api/schema"
	"github.com/sabi-health/sabi-api/utils"
)

const (
	logPrefix = "dispatch"

	// gatherTimeout is how many seconds the call waits for a digit
	// before the no-response closing line plays.
	gatherTimeout = 5

	// sayVoice is the telephony-side synthesis fallback used when no
	// pre-rendered audio is available.
	sayVoice    = "Polly.Joanna"
	sayLanguage = "en-US"
)

// Delivery methods reported in an outcome.
const (
	MethodTwilio     = "twilio"
	MethodSimulation = "simulation"
)

// LogStore is the slice of the datastore the dispatcher writes to.
type LogStore interface {
	CreateLog(userID uuid.UUID, riskType, script string, audioURL *string) (*schema.Log, error)
}

// Outcome describes what one dispatch did. A skipped outcome carries
// only the explanation message; delivered outcomes carry the script,
// the log id the response webhook is keyed by, and the method used.
type Outcome struct {
	Skipped    bool
	Method     string
	CallSID    string
	LogID      uuid.UUID
	Level      risk.Level
	RainfallMM float64
	Script     string
	AudioURL   *string
	Message    string
}

// Dispatcher decides whether a risk assessment warrants outreach and
// carries the warning to the user. The synthesizer and caller are both
// optional: a missing synthesizer degrades to text-only delivery and a
// missing or failing caller degrades to a simulated call.
type Dispatcher struct {
	logs        LogStore
	composer    *message.Composer
	synthesizer yarngpt.Synthesizer
	caller      twilio.Caller
	domain      string
	metrics     tally.Scope
}

func NewDispatcher(
	logs LogStore,
	composer *message.Composer,
	synthesizer yarngpt.Synthesizer,
	caller twilio.Caller,
	domain string,
	metrics tally.Scope,
) *Dispatcher {
	if metrics == nil {
		metrics = tally.NoopScope
	}

	return &Dispatcher{
		logs:        logs,
		composer:    composer,
		synthesizer: synthesizer,
		caller:      caller,
		domain:      domain,
		metrics:     metrics,
	}
}

// Dispatch runs the outreach pipeline for one user. A LOW assessment
// without the force override short-circuits before any side effect.
func (d *Dispatcher) Dispatch(user *schema.User, assessment risk.Assessment, force bool) (*Outcome, error) {
	if assessment.Level == risk.LevelLow && !force {
		d.metrics.Counter("dispatch.skipped").Inc(1)
		return &Outcome{
			Skipped:    true,
			Level:      assessment.Level,
			RainfallMM: assessment.RainfallMM,
			Message:    fmt.Sprintf("No significant risk detected for %s (rainfall: %.1fmm).", user.LGA, assessment.RainfallMM),
		}, nil
	}

	script := d.composer.Compose(user.Name, user.LGA, assessment.Factors, user.Personality)

	// best effort: a failed synthesis degrades to text-only delivery
	var audioURL *string
	if d.synthesizer != nil {
		if url, err := d.synthesizer.Synthesize(script, yarngpt.DefaultVoice); err != nil {
			log.WithField("prefix", logPrefix).Warnf("audio synthesis failed: %s", err)
			sentry.CaptureException(err)
		} else {
			audioURL = &url
		}
	}

	logEntry, err := d.logs.CreateLog(user.ID, assessment.Level.String(), script, audioURL)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		LogID:      logEntry.ID,
		Level:      assessment.Level,
		RainfallMM: assessment.RainfallMM,
		Script:     script,
		AudioURL:   audioURL,
	}

	if d.caller != nil {
		doc := d.BuildVoiceScript(script, audioURL, logEntry.ID.String())
		statusCallback := fmt.Sprintf("%s/call-status/%s", d.domain, logEntry.ID.String())
		sid, err := d.caller.CreateCall(doc.Render(), user.Phone, statusCallback)
		if err == nil {
			d.metrics.Counter("dispatch.called").Inc(1)
			outcome.Method = MethodTwilio
			outcome.CallSID = sid
			return outcome, nil
		}
		log.WithField("prefix", logPrefix).Warnf("call placement failed, falling back to simulation: %s", err)
		sentry.CaptureException(err)
	}

	d.metrics.Counter("dispatch.simulated").Inc(1)
	outcome.Method = MethodSimulation
	return outcome, nil
}

// BuildVoiceScript assembles the interactive call document: play the
// rendered audio if there is one, otherwise speak the script, then
// gather a single digit routed to the response webhook keyed by the
// delivery log id.
func (d *Dispatcher) BuildVoiceScript(script string, audioURL *string, logID string) *twilio.Response {
	resp := &twilio.Response{}

	if audioURL != nil {
		resp.Play = &twilio.Play{URL: *audioURL}
	} else {
		resp.Say = &twilio.Say{Voice: sayVoice, Language: sayLanguage, Text: script}
	}

	resp.Gather = &twilio.Gather{
		NumDigits: 1,
		Action:    fmt.Sprintf("%s/respond/%s", d.domain, logID),
		Method:    "POST",
		Timeout:   gatherTimeout,
		Say:       &twilio.Say{Text: utils.Spoken(utils.VoiceMenu, nil)},
	}
	resp.Closing = &twilio.Say{Text: utils.Spoken(utils.VoiceNoResponse, nil)}
	resp.Hangup = &twilio.Hangup{}

	return resp
}
