// Package ledger implements a local, file-backed report store.
// It stands in for the pipeline service when purge runs outside of it.
package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.ReportStore using a file-per-job strategy.
// Filing a report for a job that already has one replaces it.
type Store struct {
	root string
}

var _ ports.ReportStore = (*Store)(nil)

// NewStore creates a Store whose ledger lives under root.
func NewStore(root string) *Store {
	if root == "" {
		root = "."
	}
	return &Store{root: root}
}

// Dir returns the directory holding the report files.
func (s *Store) Dir() string {
	return filepath.Join(s.root, domain.DefaultLedgerPath())
}

// PutJobSuccess stores a success report.
func (s *Store) PutJobSuccess(_ context.Context, report domain.Report) error {
	report.Outcome = domain.OutcomeSucceeded
	return s.put(report)
}

// PutJobFailure stores a failure report.
func (s *Store) PutJobFailure(_ context.Context, report domain.Report) error {
	report.Outcome = domain.OutcomeFailed
	return s.put(report)
}

// Get retrieves the last report filed for jobID.
func (s *Store) Get(jobID domain.JobID) (*domain.Report, error) {
	filename := s.filename(jobID)
	//nolint:gosec // Path is constructed from the ledger directory and a hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrLedgerReadFailed.Error())
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLedgerUnmarshalFailed.Error())
	}

	return &report, nil
}

func (s *Store) put(report domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrLedgerMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.Dir(), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrLedgerCreateFailed.Error())
	}

	filename := s.filename(report.JobID)
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLedgerWriteFailed.Error()), "job_id", string(report.JobID))
	}

	return nil
}

// filename hashes the job id so any id maps to a safe, fixed-length name.
func (s *Store) filename(jobID domain.JobID) string {
	hash := sha256.Sum256([]byte(jobID))
	return filepath.Join(s.Dir(), hex.EncodeToString(hash[:])+".json")
}
