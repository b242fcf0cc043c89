package domain

import (
	"regexp"
	"time"

	"go.trai.ch/zerr"
)

// JobID is the pipeline-assigned token correlating one invocation with its result report.
type JobID string

// DistributionID identifies the CDN distribution in front of the site bucket.
type DistributionID string

var distributionIDPattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// Validate reports whether the distribution id is well-formed.
func (d DistributionID) Validate() error {
	if d == "" {
		return ErrMissingDistributionID
	}
	if !distributionIDPattern.MatchString(string(d)) {
		return zerr.With(ErrInvalidDistributionID, "distribution_id", string(d))
	}
	return nil
}

// JobState is the lifecycle state of a single notifier invocation.
type JobState string

const (
	// JobPending is the state of a job that has not been reported yet.
	JobPending JobState = "pending"
	// JobSucceeded is the terminal state after a success report.
	JobSucceeded JobState = "succeeded"
	// JobFailed is the terminal state after a failure report.
	JobFailed JobState = "failed"
)

// Terminal reports whether no further transition is allowed from s.
func (s JobState) Terminal() bool {
	return s == JobSucceeded || s == JobFailed
}

// Job tracks one invocation from pending to its terminal state.
type Job struct {
	ID        JobID
	State     JobState
	Receipt   *InvalidationReceipt
	Failure   *FailureDetails
	StartedAt time.Time
}

// NewJob creates a pending job.
func NewJob(id JobID) *Job {
	return &Job{
		ID:        id,
		State:     JobPending,
		StartedAt: time.Now(),
	}
}

// Succeed moves the job to JobSucceeded.
func (j *Job) Succeed(receipt InvalidationReceipt) error {
	if j.State.Terminal() {
		return zerr.With(ErrJobAlreadyTerminal, "state", string(j.State))
	}
	j.State = JobSucceeded
	j.Receipt = &receipt
	return nil
}

// Fail moves the job to JobFailed.
func (j *Job) Fail(details FailureDetails) error {
	if j.State.Terminal() {
		return zerr.With(ErrJobAlreadyTerminal, "state", string(j.State))
	}
	j.State = JobFailed
	j.Failure = &details
	return nil
}

// Result returns the outcome of a terminal job.
// A pending job yields a zero Result with OutcomeUnknown.
func (j *Job) Result() Result {
	res := Result{JobID: j.ID, Receipt: j.Receipt, Failure: j.Failure}
	switch j.State {
	case JobSucceeded:
		res.Outcome = OutcomeSucceeded
	case JobFailed:
		res.Outcome = OutcomeFailed
	default:
		res.Outcome = OutcomeUnknown
	}
	return res
}
