package domain

import (
	"strings"
	"time"
)

// FailureType categorises a failed job for the pipeline.
type FailureType string

// FailureJobFailed is the only category the notifier reports.
const FailureJobFailed FailureType = "JobFailed"

// unknownFailureMessage stands in for errors whose text is empty.
const unknownFailureMessage = "unknown error"

// FailureDetails is the payload of a failure report.
type FailureDetails struct {
	Type    FailureType `json:"type"`
	Message string      `json:"message"`
}

// NewJobFailure converts any error into JobFailed details carrying its text.
func NewJobFailure(err error) FailureDetails {
	msg := unknownFailureMessage
	if err != nil {
		if s := strings.TrimSpace(err.Error()); s != "" {
			msg = s
		}
	}
	return FailureDetails{Type: FailureJobFailed, Message: msg}
}

// Outcome is the terminal result of an invocation.
type Outcome string

const (
	// OutcomeUnknown marks a job that never reached a terminal state.
	OutcomeUnknown Outcome = ""
	// OutcomeSucceeded marks a job reported as successful.
	OutcomeSucceeded Outcome = "succeeded"
	// OutcomeFailed marks a job reported as failed.
	OutcomeFailed Outcome = "failed"
)

// Result is what one notifier invocation produced: either a receipt or JobFailed details.
type Result struct {
	JobID   JobID
	Outcome Outcome
	Receipt *InvalidationReceipt
	Failure *FailureDetails
}

// Succeeded reports whether the invalidation was accepted.
func (r Result) Succeeded() bool {
	return r.Outcome == OutcomeSucceeded
}

// Report is a job result as filed with the pipeline.
type Report struct {
	JobID               JobID             `json:"job_id"`
	Outcome             Outcome           `json:"outcome"`
	Failure             *FailureDetails   `json:"failure,omitempty"`
	Summary             string            `json:"summary,omitzero"`
	ExternalExecutionID string            `json:"external_execution_id,omitzero"`
	OutputVariables     map[string]string `json:"output_variables,omitempty"`
	ReportedAt          time.Time         `json:"reported_at,omitzero"`
}

// NewSuccessReport builds the report for an accepted invalidation.
func NewSuccessReport(job JobID, dist DistributionID, receipt InvalidationReceipt) Report {
	summary := "invalidation of " + InvalidateAllPath + " requested on " + string(dist)
	if receipt.ID != "" {
		summary = "invalidation " + receipt.ID + " of " + InvalidateAllPath + " requested on " + string(dist)
	}
	vars := map[string]string{"distributionId": string(dist)}
	if receipt.ID != "" {
		vars["invalidationId"] = receipt.ID
	}
	return Report{
		JobID:               job,
		Outcome:             OutcomeSucceeded,
		Summary:             summary,
		ExternalExecutionID: receipt.ID,
		OutputVariables:     vars,
	}
}

// NewFailureReport builds the report for a failed invocation.
func NewFailureReport(job JobID, details FailureDetails) Report {
	return Report{
		JobID:   job,
		Outcome: OutcomeFailed,
		Failure: &details,
	}
}
