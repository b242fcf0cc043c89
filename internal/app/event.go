package app

import (
	"context"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/tidwall/gjson"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports"
)

// JobEvent is the payload the orchestrator sends to the notifier function.
type JobEvent = events.CodePipelineJobEvent

// distributionParam is the UserParameters field that overrides the bound distribution.
const distributionParam = "distributionId"

// Invocation is a job event reduced to what the notifier acts on.
type Invocation struct {
	JobID        domain.JobID
	Distribution domain.DistributionID
}

// ParseJobEvent extracts the job id and the optional distribution override.
// Only a JSON object with a string distributionId overrides the bound
// distribution; any other UserParameters value is ignored.
func ParseJobEvent(event JobEvent) (Invocation, error) {
	job := event.CodePipelineJob
	id := strings.TrimSpace(job.ID)
	if id == "" {
		return Invocation{}, domain.ErrMissingJobID
	}

	return Invocation{
		JobID:        domain.JobID(id),
		Distribution: distributionOverride(job.Data.ActionConfiguration.Configuration.UserParameters),
	}, nil
}

func distributionOverride(params string) domain.DistributionID {
	params = strings.TrimSpace(params)
	if params == "" || !gjson.Valid(params) {
		return ""
	}

	parsed := gjson.Parse(params)
	if !parsed.IsObject() {
		return ""
	}

	field := parsed.Get(distributionParam)
	if field.Type != gjson.String {
		return ""
	}
	return domain.DistributionID(strings.TrimSpace(field.String()))
}

func logInvocation(ctx context.Context, log ports.Logger, inv Invocation) {
	args := []any{"job_id", string(inv.JobID)}
	if inv.Distribution != "" {
		args = append(args, "distribution_override", string(inv.Distribution))
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		args = append(args, "request_id", lc.AwsRequestID)
	}
	log.Info("job event received", args...)
}

func startLambda(ctx context.Context, handler any) error {
	lambda.StartWithOptions(handler, lambda.WithContext(ctx))
	return nil
}
