package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Job is a unit of background work. An empty Schedule registers the job for
// on-demand runs only.
type Job interface {
	Name() string
	Schedule() string
	Execute(ctx context.Context) error
}

type Scheduler struct {
	cron *cron.Cron
	jobs []Job
}

func New() *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		jobs: make([]Job, 0),
	}
}

// Register adds job and schedules it when it has a cron spec. An invalid
// spec is returned and the job is not registered.
func (s *Scheduler) Register(job Job) error {
	if spec := job.Schedule(); spec != "" {
		if _, err := s.cron.AddFunc(spec, func() { s.run(context.Background(), job) }); err != nil {
			return err
		}
		log.Info().Str("job", job.Name()).Str("schedule", spec).Msg("job scheduled")
	} else {
		log.Info().Str("job", job.Name()).Msg("job registered for on-demand runs")
	}

	s.jobs = append(s.jobs, job)
	return nil
}

func (s *Scheduler) run(ctx context.Context, job Job) error {
	logger := log.With().Str("job", job.Name()).Logger()
	start := time.Now()

	logger.Info().Msg("job started")
	if err := job.Execute(ctx); err != nil {
		logger.Error().Err(err).Dur("duration", time.Since(start)).Msg("job failed")
		return err
	}
	logger.Info().Dur("duration", time.Since(start)).Msg("job finished")
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Int("jobs", len(s.jobs)).Msg("scheduler started")
}

// Stop waits for running jobs to return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info().Msg("scheduler stopped")
}

// RunByName executes a registered job immediately. Unknown names are a no-op.
func (s *Scheduler) RunByName(ctx context.Context, name string) error {
	for _, job := range s.jobs {
		if job.Name() == name {
			return s.run(ctx, job)
		}
	}
	log.Warn().Str("job", name).Msg("job not found")
	return nil
}

func (s *Scheduler) Jobs() []string {
	names := make([]string, len(s.jobs))
	for i, job := range s.jobs {
		names[i] = job.Name()
	}
	return names
}
