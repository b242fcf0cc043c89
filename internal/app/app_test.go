package app_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/purge/internal/adapters/ledger"    //nolint:depguard // Real ledger for round trips
	"go.trai.ch/purge/internal/adapters/metrics"   //nolint:depguard // Real sink for exposition
	"go.trai.ch/purge/internal/adapters/telemetry" //nolint:depguard // No-op tracer
	"go.trai.ch/purge/internal/app"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports"
	"go.trai.ch/purge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	loader      *mocks.MockConfigLoader
	invalidator *mocks.MockInvalidator
	pipeline    *mocks.MockJobReporter
	sink        *metrics.PrometheusSink
	app         *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		loader:      mocks.NewMockConfigLoader(ctrl),
		invalidator: mocks.NewMockInvalidator(ctrl),
		pipeline:    mocks.NewMockJobReporter(ctrl),
		sink:        metrics.NewPrometheusSink(),
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	reports := func(root string) ports.ReportStore {
		return ledger.NewStore(root)
	}

	h.app = app.New(h.loader, h.invalidator, h.pipeline, reports,
		telemetry.NewNoOpTracer(), h.sink, h.sink, log)
	return h
}

func jobEvent(id, params string) app.JobEvent {
	var e events.CodePipelineJobEvent
	e.CodePipelineJob.ID = id
	e.CodePipelineJob.Data.ActionConfiguration.Configuration.UserParameters = params
	return e
}

func boundSettings() domain.Settings {
	s := domain.DefaultSettings()
	s.DistributionID = "E1234ABCD"
	return s
}

func TestApp_HandleJobEvent_Success(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	h.invalidator.EXPECT().
		CreateInvalidation(gomock.Any(), domain.NewInvalidateAll("E1234ABCD", "build-42")).
		Return(&domain.InvalidationReceipt{ID: "I2J3"}, nil)
	h.pipeline.EXPECT().
		PutJobSuccess(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r domain.Report) error {
			assert.Equal(t, domain.JobID("build-42"), r.JobID)
			return nil
		})

	err := h.app.HandleJobEvent(t.Context(), boundSettings(), jobEvent("build-42", ""))
	require.NoError(t, err)
}

func TestApp_HandleJobEvent_FailureIsNotAnError(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	h.invalidator.EXPECT().
		CreateInvalidation(gomock.Any(), domain.NewInvalidateAll("E-INVALID", "build-43")).
		Return(nil, errors.New("Distribution E-INVALID not found"))
	h.pipeline.EXPECT().
		PutJobFailure(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r domain.Report) error {
			require.NotNil(t, r.Failure)
			assert.Equal(t, domain.FailureJobFailed, r.Failure.Type)
			assert.Equal(t, "Distribution E-INVALID not found", r.Failure.Message)
			return nil
		})

	s := boundSettings()
	s.DistributionID = "E-INVALID"
	err := h.app.HandleJobEvent(t.Context(), s, jobEvent("build-43", ""))
	require.NoError(t, err)
}

func TestApp_HandleJobEvent_MissingJobID(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	err := h.app.HandleJobEvent(t.Context(), boundSettings(), jobEvent("  ", ""))
	require.ErrorIs(t, err, domain.ErrMissingJobID)
}

func TestApp_HandleJobEvent_DistributionOverride(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	h.invalidator.EXPECT().
		CreateInvalidation(gomock.Any(), domain.NewInvalidateAll("EOVERRIDE", "build-47")).
		Return(&domain.InvalidationReceipt{ID: "I9"}, nil)
	h.pipeline.EXPECT().PutJobSuccess(gomock.Any(), gomock.Any()).Return(nil)

	err := h.app.HandleJobEvent(t.Context(), boundSettings(),
		jobEvent("build-47", `{"distributionId": "EOVERRIDE"}`))
	require.NoError(t, err)
}

func TestApp_HandleJobEvent_UnrelatedParametersKeepBoundDistribution(t *testing.T) {
	t.Parallel()

	for _, params := range []string{"prod", "123", `["E1"]`, `{"distributionId":42}`} {
		t.Run(params, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t)

			h.invalidator.EXPECT().
				CreateInvalidation(gomock.Any(), domain.NewInvalidateAll("E1234ABCD", "build-47")).
				Return(&domain.InvalidationReceipt{}, nil)
			h.pipeline.EXPECT().PutJobSuccess(gomock.Any(), gomock.Any()).Return(nil)

			err := h.app.HandleJobEvent(t.Context(), boundSettings(), jobEvent("build-47", params))
			require.NoError(t, err)
		})
	}
}

func TestApp_HandleJobEvent_ReportFailed(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	h.invalidator.EXPECT().CreateInvalidation(gomock.Any(), gomock.Any()).Return(&domain.InvalidationReceipt{}, nil)
	h.pipeline.EXPECT().PutJobSuccess(gomock.Any(), gomock.Any()).Return(errors.New("throttled"))

	err := h.app.HandleJobEvent(t.Context(), boundSettings(), jobEvent("build-48", ""))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrReportFailed.Error())
}

func TestApp_DistributionFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("configured", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		h.loader.EXPECT().Load(domain.SiteFileName).Return(&domain.SiteConfig{Distribution: "ECONFIG"}, nil)
		h.invalidator.EXPECT().
			CreateInvalidation(gomock.Any(), domain.NewInvalidateAll("ECONFIG", "build-49")).
			Return(&domain.InvalidationReceipt{}, nil)
		h.pipeline.EXPECT().PutJobSuccess(gomock.Any(), gomock.Any()).Return(nil)

		err := h.app.HandleJobEvent(t.Context(), domain.DefaultSettings(), jobEvent("build-49", ""))
		require.NoError(t, err)
	})

	t.Run("not configured", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		h.loader.EXPECT().Load(domain.SiteFileName).Return(&domain.SiteConfig{}, nil)

		err := h.app.HandleJobEvent(t.Context(), domain.DefaultSettings(), jobEvent("build-50", ""))
		assert.ErrorContains(t, err, domain.ErrMissingDistributionID.Error())
	})

	t.Run("config unreadable", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		h.loader.EXPECT().Load(domain.SiteFileName).Return(nil, domain.ErrConfigNotFound)

		_, err := h.app.Invoke(t.Context(), domain.DefaultSettings(), "build-51")
		assert.ErrorContains(t, err, domain.ErrMissingDistributionID.Error())
		assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
	})
}

func TestApp_Invoke_Ledger(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.app.WithJobIDGenerator(func() domain.JobID { return "local-fixed" })

	h.invalidator.EXPECT().
		CreateInvalidation(gomock.Any(), domain.NewInvalidateAll("E1234ABCD", "local-fixed")).
		Return(&domain.InvalidationReceipt{ID: "I2J3"}, nil)

	s := boundSettings()
	s.ReportTo = domain.ReportToLedger
	s.LedgerDir = t.TempDir()

	res, err := h.app.Invoke(t.Context(), s, "")
	require.NoError(t, err)
	assert.True(t, res.Succeeded())
	assert.Equal(t, domain.JobID("local-fixed"), res.JobID)

	stored, err := h.app.Report(t.Context(), s, "local-fixed")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, domain.OutcomeSucceeded, stored.Outcome)
	assert.Equal(t, "I2J3", stored.ExternalExecutionID)
}

func TestApp_Report_Errors(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	s := domain.DefaultSettings()
	s.LedgerDir = t.TempDir()

	_, err := h.app.Report(t.Context(), s, "")
	require.ErrorIs(t, err, domain.ErrMissingJobID)

	_, err = h.app.Report(t.Context(), s, "build-99")
	assert.ErrorContains(t, err, domain.ErrReportNotFound.Error())
}

func TestApp_Invoke_GeneratesLocalJobID(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	h.invalidator.EXPECT().
		CreateInvalidation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.InvalidationRequest) (*domain.InvalidationReceipt, error) {
			assert.True(t, strings.HasPrefix(req.CallerReference, "local-"))
			return &domain.InvalidationReceipt{}, nil
		})
	h.pipeline.EXPECT().PutJobSuccess(gomock.Any(), gomock.Any()).Return(nil)

	res, err := h.app.Invoke(t.Context(), boundSettings(), "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(res.JobID), "local-"))
}

func TestApp_ExportMetrics(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	h.invalidator.EXPECT().CreateInvalidation(gomock.Any(), gomock.Any()).Return(nil, errors.New("denied"))
	h.pipeline.EXPECT().PutJobFailure(gomock.Any(), gomock.Any()).Return(nil)

	_, err := h.app.Invoke(t.Context(), boundSettings(), "build-52")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, h.app.ExportMetrics(&buf))
	assert.Contains(t, buf.String(), `purge_invocations_total{outcome="failed"} 1`)
	assert.Contains(t, buf.String(), `purge_invalidations_requested_total{distribution="E1234ABCD"} 1`)
}

func TestApp_Serve(t *testing.T) {
	t.Parallel()

	t.Run("hands the handler to the runtime", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		h.invalidator.EXPECT().
			CreateInvalidation(gomock.Any(), domain.NewInvalidateAll("E1234ABCD", "build-53")).
			Return(&domain.InvalidationReceipt{ID: "I1"}, nil)
		h.pipeline.EXPECT().PutJobSuccess(gomock.Any(), gomock.Any()).Return(nil)

		started := false
		h.app.WithStarter(func(ctx context.Context, handler any) error {
			started = true
			fn, ok := handler.(func(context.Context, app.JobEvent) error)
			require.True(t, ok)
			return fn(ctx, jobEvent("build-53", ""))
		})

		require.NoError(t, h.app.Serve(t.Context(), boundSettings()))
		assert.True(t, started)

		var buf bytes.Buffer
		require.NoError(t, h.app.ExportMetrics(&buf))
		assert.NotContains(t, buf.String(), "purge_invocations_total{")
	})

	t.Run("fails before starting without a distribution", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		h.loader.EXPECT().Load(domain.SiteFileName).Return(&domain.SiteConfig{}, nil)
		h.app.WithStarter(func(context.Context, any) error {
			t.Fatal("runtime must not start")
			return nil
		})

		err := h.app.Serve(t.Context(), domain.DefaultSettings())
		assert.ErrorContains(t, err, domain.ErrMissingDistributionID.Error())
	})

	t.Run("runtime error", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		h.app.WithStarter(func(context.Context, any) error {
			return errors.New("runtime api unreachable")
		})

		err := h.app.Serve(t.Context(), boundSettings())
		assert.ErrorContains(t, err, "runtime api unreachable")
	})
}

func TestApp_Validate(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	h.loader.EXPECT().Load("site/purge.yaml").Return(nil, domain.ErrUnsupportedConfigVersion)

	_, err := h.app.Validate(t.Context(), "site/purge.yaml")
	assert.ErrorContains(t, err, domain.ErrUnsupportedConfigVersion.Error())
}
