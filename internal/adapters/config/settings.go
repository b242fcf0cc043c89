package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix prefixes every environment variable read into the runtime settings.
const EnvPrefix = "PURGE"

// Setting keys, shared by flags and environment variables (PURGE_DISTRIBUTION_ID, ...).
const (
	KeyDistributionID = "distribution-id"
	KeyConfig         = "config"
	KeyReportTo       = "report-to"
	KeyLedgerDir      = "ledger-dir"
	KeyLogFormat      = "log-format"
	KeyDebug          = "debug"
)

// NewViper returns a viper instance reading PURGE_* environment variables,
// pre-seeded with the default settings.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := domain.DefaultSettings()
	v.SetDefault(KeyDistributionID, string(d.DistributionID))
	v.SetDefault(KeyConfig, d.ConfigPath)
	v.SetDefault(KeyReportTo, string(d.ReportTo))
	v.SetDefault(KeyLedgerDir, d.LedgerDir)
	v.SetDefault(KeyLogFormat, string(d.LogFormat))
	v.SetDefault(KeyDebug, d.Debug)
	return v
}

// BindFlags binds flags to their setting keys so a set flag wins over the environment.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return zerr.Wrap(err, "failed to bind flags")
	}
	return nil
}

// LoadSettings reads and validates the runtime settings.
func LoadSettings(v *viper.Viper) (domain.Settings, error) {
	s := domain.Settings{
		DistributionID: domain.DistributionID(strings.TrimSpace(v.GetString(KeyDistributionID))),
		ConfigPath:     v.GetString(KeyConfig),
		ReportTo:       domain.ReportSink(strings.ToLower(v.GetString(KeyReportTo))),
		LedgerDir:      v.GetString(KeyLedgerDir),
		LogFormat:      domain.LogFormat(strings.ToLower(v.GetString(KeyLogFormat))),
		Debug:          v.GetBool(KeyDebug),
	}

	if err := s.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}
