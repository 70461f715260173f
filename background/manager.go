package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"

	"github.com/fluwatch/fluwatch-api/external/mailer"
	"github.com/fluwatch/fluwatch-api/store"
)

// BackgroundManager is a struct for fluwatch background manager
type BackgroundManager struct {
	store store.FluWatchCore

	mailer mailer.Mailer

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(fluwatchStore store.FluWatchCore, m mailer.Mailer, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:      fluwatchStore,
		mailer:     m,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks registers every job the worker runs
func (m *BackgroundManager) RegisterTasks() error {
	for name, taskFunc := range m.Tasks() {
		if err := m.RegisterTask(name, taskFunc); err != nil {
			return err
		}
	}
	return nil
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("fluwatch-worker", 5)
	return m.worker.Launch()
}
