package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingJobID is returned when a job event carries no job identifier.
	ErrMissingJobID = zerr.New("job event has no job id")

	// ErrMissingDistributionID is returned when no distribution id is bound or configured.
	ErrMissingDistributionID = zerr.New("no distribution id configured")

	// ErrInvalidDistributionID is returned when a distribution id is malformed.
	ErrInvalidDistributionID = zerr.New("invalid distribution id")

	// ErrInvalidationFailed labels a rejected invalidation request in logs.
	// The failure report carries the CDN's own error text instead.
	ErrInvalidationFailed = zerr.New("failed to create invalidation")

	// ErrReportFailed is returned when a job result cannot be filed with the pipeline.
	ErrReportFailed = zerr.New("failed to report job result")

	// ErrJobAlreadyTerminal is returned when a job that already succeeded or failed is transitioned again.
	ErrJobAlreadyTerminal = zerr.New("job already reached a terminal state")

	// ErrConfigReadFailed is returned when the site config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the site config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when the site config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrUnsupportedConfigVersion is returned when the site config declares an unknown schema version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrInvalidBucketName is returned when the storage bucket name breaks the naming rules.
	ErrInvalidBucketName = zerr.New("invalid bucket name")

	// ErrInvalidIndexDocument is returned when the index document is empty or a path.
	ErrInvalidIndexDocument = zerr.New("invalid index document")

	// ErrMissingBuildImage is returned when no build environment image is configured.
	ErrMissingBuildImage = zerr.New("missing build image")

	// ErrInvalidSource is returned when the source repository owner, name or branch is missing.
	ErrInvalidSource = zerr.New("invalid source repository")

	// ErrMissingSecretRef is returned when the source authentication secret reference is incomplete.
	ErrMissingSecretRef = zerr.New("missing source authentication secret reference")

	// ErrInvalidFunctionName is returned when the notifier function name is not usable.
	ErrInvalidFunctionName = zerr.New("invalid notifier function name")

	// ErrInvalidMemorySize is returned when the notifier memory size is out of range.
	ErrInvalidMemorySize = zerr.New("notifier memory size out of range")

	// ErrInvalidEmail is returned when a notification address is not an e-mail address.
	ErrInvalidEmail = zerr.New("invalid notification e-mail address")

	// ErrInvalidSettings is returned when runtime settings hold an unknown option.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrLedgerCreateFailed is returned when the report ledger directory cannot be created.
	ErrLedgerCreateFailed = zerr.New("failed to create report ledger directory")

	// ErrLedgerReadFailed is returned when a stored report cannot be read.
	ErrLedgerReadFailed = zerr.New("failed to read stored report")

	// ErrLedgerUnmarshalFailed is returned when a stored report cannot be decoded.
	ErrLedgerUnmarshalFailed = zerr.New("failed to unmarshal stored report")

	// ErrLedgerMarshalFailed is returned when a report cannot be encoded.
	ErrLedgerMarshalFailed = zerr.New("failed to marshal report")

	// ErrLedgerWriteFailed is returned when a report cannot be written.
	ErrLedgerWriteFailed = zerr.New("failed to write report")

	// ErrReportNotFound is returned when the report ledger holds no report for a job.
	ErrReportNotFound = zerr.New("no report filed for job")

	// ErrJobFailed is returned by the CLI when an invocation ended with a JobFailed report.
	ErrJobFailed = zerr.New("job failed")
)
