package domain

import "go.trai.ch/zerr"

// ReportSink selects where job results are filed.
type ReportSink string

const (
	// ReportToPipeline files results with the pipeline service.
	ReportToPipeline ReportSink = "pipeline"
	// ReportToLedger files results in the local report ledger.
	ReportToLedger ReportSink = "ledger"
)

// LogFormat selects the log output encoding.
type LogFormat string

const (
	// LogFormatAuto picks JSON inside the function runtime and pretty output elsewhere.
	LogFormatAuto LogFormat = "auto"
	// LogFormatPretty forces human-readable output.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON forces JSON output.
	LogFormatJSON LogFormat = "json"
)

// Settings are the runtime options of the notifier process.
type Settings struct {
	DistributionID DistributionID
	ConfigPath     string
	ReportTo       ReportSink
	LedgerDir      string
	LogFormat      LogFormat
	Debug          bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		ConfigPath: SiteFileName,
		ReportTo:   ReportToPipeline,
		LedgerDir:  ".",
		LogFormat:  LogFormatAuto,
	}
}

// Validate checks the enum-valued settings.
func (s Settings) Validate() error {
	switch s.ReportTo {
	case ReportToPipeline, ReportToLedger:
	default:
		return zerr.With(ErrInvalidSettings, "report_to", string(s.ReportTo))
	}

	switch s.LogFormat {
	case LogFormatAuto, LogFormatPretty, LogFormatJSON:
	default:
		return zerr.With(ErrInvalidSettings, "log_format", string(s.LogFormat))
	}

	return nil
}
