package cron

import (
	log "log/slog"

	"github.com/robfig/cron/v3"

	"github.com/pramanandasarkar02/toolsai/internal/job"
)

type Manager struct {
	engine              *cron.Cron
	counterReconcileJob *job.CounterReconcileJob
	modelHealthJob      *job.ModelHealthJob
}

func NewCronManager(counterReconcileJob *job.CounterReconcileJob, modelHealthJob *job.ModelHealthJob) *Manager {
	return &Manager{
		engine:              cron.New(cron.WithSeconds()),
		counterReconcileJob: counterReconcileJob,
		modelHealthJob:      modelHealthJob,
	}
}

// RegisterJobs wires the scheduled jobs.
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.counterReconcileJob); err != nil {
		return err
	}
	if s.modelHealthJob != nil {
		if _, err := s.engine.AddJob("@every 30m", s.modelHealthJob); err != nil {
			return err
		}
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
