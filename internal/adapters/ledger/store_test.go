package ledger_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/purge/internal/adapters/ledger"
	"go.trai.ch/purge/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	store := ledger.NewStore(t.TempDir())

	t.Run("success report round trip", func(t *testing.T) {
		t.Parallel()
		report := domain.NewSuccessReport("build-42", "E1234ABCD", domain.InvalidationReceipt{ID: "I2J3"})
		report.ReportedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, store.PutJobSuccess(t.Context(), report))

		got, err := store.Get("build-42")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, report, *got)
	})

	t.Run("failure report", func(t *testing.T) {
		t.Parallel()
		report := domain.NewFailureReport("build-43", domain.NewJobFailure(os.ErrPermission))
		require.NoError(t, store.PutJobFailure(t.Context(), report))

		got, err := store.Get("build-43")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.OutcomeFailed, got.Outcome)
		require.NotNil(t, got.Failure)
		assert.Equal(t, domain.FailureJobFailed, got.Failure.Type)
		assert.Equal(t, "permission denied", got.Failure.Message)
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		got, err := store.Get("missing-job")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestStore_RefilingReplaces(t *testing.T) {
	t.Parallel()

	store := ledger.NewStore(t.TempDir())

	require.NoError(t, store.PutJobFailure(t.Context(), domain.NewFailureReport("build-42", domain.NewJobFailure(nil))))
	require.NoError(t, store.PutJobSuccess(t.Context(), domain.Report{JobID: "build-42"}))

	got, err := store.Get("build-42")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSucceeded, got.Outcome)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_JobIDsAreHashed(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := ledger.NewStore(root)

	require.NoError(t, store.PutJobSuccess(t.Context(), domain.Report{JobID: "../../escape"}))

	entries, err := os.ReadDir(filepath.Join(root, ".purge", "reports"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Len(t, entries[0].Name(), 64+len(".json"))
}

func TestStore_GetCorrupt(t *testing.T) {
	t.Parallel()

	store := ledger.NewStore(t.TempDir())
	require.NoError(t, store.PutJobSuccess(t.Context(), domain.Report{JobID: "build-42"}))

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	//nolint:gosec // test fixture
	err = os.WriteFile(filepath.Join(store.Dir(), entries[0].Name()), []byte("{ invalid json"), 0o600)
	require.NoError(t, err)

	_, err = store.Get("build-42")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLedgerUnmarshalFailed.Error())
}

func TestStore_CreateFailed(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	blocker := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	store := ledger.NewStore(blocker)
	err := store.PutJobSuccess(t.Context(), domain.Report{JobID: "build-42"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLedgerCreateFailed.Error())
}

func TestNewStore_DefaultRoot(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join(".purge", "reports"), ledger.NewStore("").Dir())
}
