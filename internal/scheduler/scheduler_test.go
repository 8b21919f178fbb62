package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	name     string
	schedule string
	runs     int
	err      error
}

func (j *countingJob) Name() string     { return j.name }
func (j *countingJob) Schedule() string { return j.schedule }

func (j *countingJob) Execute(context.Context) error {
	j.runs++
	return j.err
}

func TestRegisterAndRunByName(t *testing.T) {
	s := New()
	job := &countingJob{name: "reindex", schedule: "@every 1h"}
	require.NoError(t, s.Register(job))
	require.NoError(t, s.Register(&countingJob{name: "manual"}))

	assert.Equal(t, []string{"reindex", "manual"}, s.Jobs())

	require.NoError(t, s.RunByName(context.Background(), "reindex"))
	assert.Equal(t, 1, job.runs)

	assert.NoError(t, s.RunByName(context.Background(), "missing"))
}

func TestRegisterRejectsInvalidSchedule(t *testing.T) {
	s := New()
	err := s.Register(&countingJob{name: "broken", schedule: "every now and then"})
	assert.Error(t, err)
	assert.Empty(t, s.Jobs())
}

func TestRunByNameReturnsJobError(t *testing.T) {
	s := New()
	boom := errors.New("boom")
	require.NoError(t, s.Register(&countingJob{name: "failing", err: boom}))

	assert.ErrorIs(t, s.RunByName(context.Background(), "failing"), boom)
}
