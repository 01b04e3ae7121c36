package background

import (
	"github.com/google/uuid"

	"github.com/sabi-health/sabi-api/geo"
	"github.com/sabi-health/sabi-api/risk"
	"github.com/sabi-health/sabi-api/store"
)

// DispatchRiskCall is the machinery task body behind the hourly sweep.
// It runs the same evaluation pipeline as the on-demand call endpoint,
// never forcing, so low-risk users stay undisturbed.
func (m *Manager) DispatchRiskCall(userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	user, err := m.store.GetUser(id)
	if err != nil {
		if err == store.ErrUserNotFound {
			// user removed between enqueue and execution
			log.Warnf("skip risk call for unknown user %s", userID)
			return nil
		}
		return err
	}

	location, err := geo.ResolveLGA(user.LGA)
	if err != nil {
		return err
	}

	rainfall := m.gauge.RecentRainfall(location.Latitude, location.Longitude)
	assessment := risk.Classify(user.LGA, rainfall)

	outcome, err := m.dispatcher.Dispatch(user, assessment, false)
	if err != nil {
		return err
	}

	if outcome.Skipped {
		log.Debugf("no call for user %s, risk %s", user.ID, assessment.Level)
	} else {
		log.Infof("dispatched %s call for user %s, risk %s", outcome.Method, user.ID, assessment.Level)
	}
	return nil
}
