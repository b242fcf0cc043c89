package domain

import "path/filepath"

const (
	// DirPerm is the default permission for directories created by purge.
	DirPerm = 0o750

	// FilePerm is the default permission for files written by purge.
	FilePerm = 0o600

	// PurgeDirName is the name of the local state directory.
	PurgeDirName = ".purge"

	// ReportsDirName is the name of the report ledger directory.
	ReportsDirName = "reports"
)

// DefaultLedgerPath returns the report ledger directory relative to the ledger root.
func DefaultLedgerPath() string {
	return filepath.Join(PurgeDirName, ReportsDirName)
}
