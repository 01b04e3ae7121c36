package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/sabi-health/sabi-api/dispatch"
	"github.com/sabi-health/sabi-api/store"
	"github.com/sabi-health/sabi-api/weather"
)

// TaskDispatchRiskCall evaluates one user's risk and places the
// warning call when it is warranted.
const TaskDispatchRiskCall = "dispatch_risk_call"

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}

// Manager owns the periodic risk sweep. The cron trigger only
// enqueues, the machinery worker does the slow work, so a stalled call
// never delays the next sweep.
type Manager struct {
	store      store.SabiCore
	dispatcher *dispatch.Dispatcher
	gauge      *weather.Gauge

	taskServer *machinery.Server
	worker     *machinery.Worker
	cron       *cron.Cron
}

func New(sabiStore store.SabiCore, dispatcher *dispatch.Dispatcher, gauge *weather.Gauge, taskServer *machinery.Server) *Manager {
	return &Manager{
		store:      sabiStore,
		dispatcher: dispatcher,
		gauge:      gauge,
		taskServer: taskServer,
	}
}

// RegisterTasks binds task names to their handlers. Both the API
// process and the worker process call this so a task enqueued by
// either side is always resolvable.
func (m *Manager) RegisterTasks() error {
	return m.taskServer.RegisterTasks(map[string]interface{}{
		TaskDispatchRiskCall: m.DispatchRiskCall,
	})
}

// EnqueueAllUsers queues one risk evaluation per registered user.
func (m *Manager) EnqueueAllUsers() error {
	users, err := m.store.ListUsers()
	if err != nil {
		return err
	}

	for _, u := range users {
		if _, err := m.taskServer.SendTask(&tasks.Signature{
			Name: TaskDispatchRiskCall,
			Args: []tasks.Arg{
				{Type: "string", Value: u.ID.String()},
			},
		}); err != nil {
			log.WithError(err).Errorf("enqueue risk call for user %s", u.ID)
			return err
		}
	}

	log.Infof("enqueued risk evaluation for %d users", len(users))
	return nil
}

// StartScheduler begins the hourly sweep. Returns the cron handle so
// the caller can Stop it on shutdown.
func (m *Manager) StartScheduler() (*cron.Cron, error) {
	if m.cron != nil {
		return nil, errors.New("scheduler has started")
	}

	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		if err := m.EnqueueAllUsers(); err != nil {
			log.WithError(err).Error("hourly sweep failed")
		}
	}); err != nil {
		return nil, err
	}

	c.Start()
	m.cron = c
	log.Info("hourly risk sweep scheduled")
	return c, nil
}

// RunWorker spawns the machinery worker and blocks until it exits.
func (m *Manager) RunWorker() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("sabi-worker", 5)
	return m.worker.Launch()
}
