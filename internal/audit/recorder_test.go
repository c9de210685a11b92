package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/msp-tools/tenant-console/internal/externalcall"
	"github.com/msp-tools/tenant-console/internal/repositories/sql/calllog"
)

type fakeRepo struct {
	created    []*calllog.Table
	pruneCalls int
	pruneKeep  int
}

func (f *fakeRepo) Create(table *calllog.Table) (uint, error) {
	f.created = append(f.created, table)
	return uint(len(f.created)), nil
}

func (f *fakeRepo) GetRecent(limit int) ([]calllog.Table, error) {
	return nil, nil
}

func (f *fakeRepo) GetByOperation(operation string, limit int) ([]calllog.Table, error) {
	return nil, nil
}

func (f *fakeRepo) Prune(keep int) error {
	f.pruneCalls++
	f.pruneKeep = keep
	return nil
}

func TestRecord_WritesEntryWithoutSensitiveData(t *testing.T) {
	repo := &fakeRepo{}
	r := &recorderImpl{repo: repo}

	r.Record(externalcall.QueryVenues, 200, "ok", 120*time.Millisecond, "op@example.com")

	assert.Len(t, repo.created, 1)
	entry := repo.created[0]
	assert.Equal(t, "query_venues", entry.Operation)
	assert.Equal(t, "POST", entry.Method)
	assert.Equal(t, "/venues/query", entry.Path)
	assert.Equal(t, 200, entry.StatusCode)
	assert.Equal(t, "ok", entry.Outcome)
	assert.Equal(t, int64(120), entry.DurationMs)
	assert.Equal(t, "op@example.com", entry.Operator)
}

func TestRecord_NoRepoIsNoOp(t *testing.T) {
	r := &recorderImpl{}
	// must not panic when the database was never wired
	r.Record(externalcall.GetTenant, 200, "ok", time.Millisecond, "op@example.com")

	entries, err := r.Recent(10)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecord_PruneHonorsRetention(t *testing.T) {
	tests := []struct {
		name           string
		retention      int
		expectedPrunes int
		description    string
	}{
		{
			name:           "Test 1: retention set prunes after write",
			retention:      500,
			expectedPrunes: 1,
			description:    "A positive retention cap triggers pruning",
		},
		{
			name:           "Test 2: zero retention keeps everything",
			retention:      0,
			expectedPrunes: 0,
			description:    "Zero means unbounded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			r := &recorderImpl{repo: repo, retention: tt.retention}

			r.Record(externalcall.GetTenant, 200, "ok", time.Millisecond, "op@example.com")

			assert.Equal(t, tt.expectedPrunes, repo.pruneCalls, tt.description)
			if tt.expectedPrunes > 0 {
				assert.Equal(t, tt.retention, repo.pruneKeep, tt.description)
			}
		})
	}
}
