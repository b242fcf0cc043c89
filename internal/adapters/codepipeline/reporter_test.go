package codepipeline_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cpadapter "go.trai.ch/purge/internal/adapters/codepipeline"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/zerr"
)

type fakeAPI struct {
	successes []*codepipeline.PutJobSuccessResultInput
	failures  []*codepipeline.PutJobFailureResultInput
	err       error
}

func (f *fakeAPI) PutJobSuccessResult(
	_ context.Context,
	params *codepipeline.PutJobSuccessResultInput,
	_ ...func(*codepipeline.Options),
) (*codepipeline.PutJobSuccessResultOutput, error) {
	f.successes = append(f.successes, params)
	if f.err != nil {
		return nil, f.err
	}
	return &codepipeline.PutJobSuccessResultOutput{}, nil
}

func (f *fakeAPI) PutJobFailureResult(
	_ context.Context,
	params *codepipeline.PutJobFailureResultInput,
	_ ...func(*codepipeline.Options),
) (*codepipeline.PutJobFailureResultOutput, error) {
	f.failures = append(f.failures, params)
	if f.err != nil {
		return nil, f.err
	}
	return &codepipeline.PutJobFailureResultOutput{}, nil
}

func TestReporter_PutJobSuccess(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	r := cpadapter.NewWithAPI(api)

	report := domain.NewSuccessReport("build-42", "E1234ABCD", domain.InvalidationReceipt{ID: "I2J3"})
	require.NoError(t, r.PutJobSuccess(t.Context(), report))

	require.Len(t, api.successes, 1)
	in := api.successes[0]
	assert.Equal(t, "build-42", aws.ToString(in.JobId))
	require.NotNil(t, in.ExecutionDetails)
	assert.Equal(t, "invalidation I2J3 of /* requested on E1234ABCD", aws.ToString(in.ExecutionDetails.Summary))
	assert.Equal(t, "I2J3", aws.ToString(in.ExecutionDetails.ExternalExecutionId))
	assert.Equal(t, map[string]string{"distributionId": "E1234ABCD", "invalidationId": "I2J3"}, in.OutputVariables)
	assert.Empty(t, api.failures)
}

func TestReporter_PutJobSuccess_Bare(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	r := cpadapter.NewWithAPI(api)

	require.NoError(t, r.PutJobSuccess(t.Context(), domain.Report{JobID: "build-42", Outcome: domain.OutcomeSucceeded}))

	in := api.successes[0]
	assert.Nil(t, in.ExecutionDetails)
	assert.Nil(t, in.OutputVariables)
}

func TestReporter_PutJobFailure(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	r := cpadapter.NewWithAPI(api)

	report := domain.NewFailureReport("build-43", domain.FailureDetails{
		Type:    domain.FailureJobFailed,
		Message: "Distribution E-INVALID not found",
	})
	require.NoError(t, r.PutJobFailure(t.Context(), report))

	require.Len(t, api.failures, 1)
	in := api.failures[0]
	assert.Equal(t, "build-43", aws.ToString(in.JobId))
	require.NotNil(t, in.FailureDetails)
	assert.Equal(t, types.FailureTypeJobFailed, in.FailureDetails.Type)
	assert.Equal(t, "Distribution E-INVALID not found", aws.ToString(in.FailureDetails.Message))
	assert.Empty(t, api.successes)
}

func TestReporter_PutJobFailure_Defaults(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	r := cpadapter.NewWithAPI(api)

	require.NoError(t, r.PutJobFailure(t.Context(), domain.Report{JobID: "build-43", Outcome: domain.OutcomeFailed}))

	in := api.failures[0]
	assert.Equal(t, types.FailureTypeJobFailed, in.FailureDetails.Type)
	assert.Equal(t, "unknown error", aws.ToString(in.FailureDetails.Message))
}

func TestReporter_PutJobFailure_TruncatesMessage(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	r := cpadapter.NewWithAPI(api)

	long := strings.Repeat("é", cpadapter.MaxFailureMessageLen+10)
	report := domain.NewFailureReport("build-43", domain.FailureDetails{Type: domain.FailureJobFailed, Message: long})
	require.NoError(t, r.PutJobFailure(t.Context(), report))

	msg := aws.ToString(api.failures[0].FailureDetails.Message)
	assert.Equal(t, cpadapter.MaxFailureMessageLen, len([]rune(msg)))
}

func TestReporter_APIError(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{err: &types.JobNotFoundException{Message: aws.String("job build-42 not found")}}
	r := cpadapter.NewWithAPI(api)

	err := r.PutJobSuccess(t.Context(), domain.Report{JobID: "build-42"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "job build-42 not found")

	var z *zerr.Error
	require.ErrorAs(t, err, &z)
	assert.Equal(t, "build-42", z.Metadata()["job_id"])
}
