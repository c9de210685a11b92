// Package audit keeps a MySQL trail of upstream exchanges. Entries
// carry operation metadata only; bearer tokens and payload bodies are
// never written.
package audit

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/msp-tools/tenant-console/internal/externalcall"
	"github.com/msp-tools/tenant-console/internal/repositories/sql/calllog"
	"github.com/msp-tools/tenant-console/pkg/infra"
	"github.com/msp-tools/tenant-console/pkg/metric"
)

// Recorder persists one entry per upstream exchange.
type Recorder interface {
	Record(spec externalcall.RequestSpec, statusCode int, outcome string, duration time.Duration, operator string)
	Recent(limit int) ([]calllog.Table, error)
	RecentByOperation(operation string, limit int) ([]calllog.Table, error)
}

type recorderImpl struct {
	repo      calllog.Repository
	retention int
}

var (
	recorder     Recorder
	recorderOnce sync.Once
)

// InitRecorder wires the recorder against the shared SQL connection.
// retentionEntries caps the table size (0 = unbounded). A missing
// database degrades to a no-op recorder; gateway calls must never fail
// because the audit trail is unavailable.
func InitRecorder(retentionEntries int) Recorder {
	recorderOnce.Do(func() {
		impl := &recorderImpl{retention: retentionEntries}
		connection, err := infra.SQL.GetConnection()
		if err != nil {
			log.Error().Err(err).Msg("Call log disabled: no SQL connection")
			recorder = impl
			return
		}
		sqlConn := connection.(*infra.SQLConnection)
		repo, err := calllog.NewRepository(sqlConn)
		if err != nil {
			log.Error().Err(err).Msg("Call log disabled: repository init failed")
			recorder = impl
			return
		}
		impl.repo = repo
		recorder = impl
	})
	return recorder
}

// GetRecorder returns the initialized recorder.
func GetRecorder() Recorder {
	if recorder == nil {
		log.Fatal().Msg("Audit recorder not initialized")
	}
	return recorder
}

// Record writes one entry, best effort.
func (r *recorderImpl) Record(spec externalcall.RequestSpec, statusCode int, outcome string, duration time.Duration, operator string) {
	if r.repo == nil {
		return
	}
	entry := &calllog.Table{
		Operation:  spec.Name,
		Method:     spec.Method,
		Path:       spec.PathTemplate,
		StatusCode: statusCode,
		Outcome:    outcome,
		DurationMs: duration.Milliseconds(),
		Operator:   operator,
	}
	if _, err := r.repo.Create(entry); err != nil {
		log.Error().Err(err).Str("operation", spec.Name).Msg("Failed to write call log entry")
		return
	}
	metric.Incr(metric.DBCallCount, metric.BuildTag(
		metric.NewTag(metric.TagOperation, spec.Name),
	))
	if r.retention > 0 {
		if err := r.repo.Prune(r.retention); err != nil {
			log.Error().Err(err).Msg("Failed to prune call log")
		}
	}
}

// Recent lists the latest entries, newest first.
func (r *recorderImpl) Recent(limit int) ([]calllog.Table, error) {
	if r.repo == nil {
		return []calllog.Table{}, nil
	}
	return r.repo.GetRecent(limit)
}

// RecentByOperation lists the latest entries for one operation.
func (r *recorderImpl) RecentByOperation(operation string, limit int) ([]calllog.Table, error) {
	if r.repo == nil {
		return []calllog.Table{}, nil
	}
	return r.repo.GetByOperation(operation, limit)
}
