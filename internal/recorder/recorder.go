package recorder

import (
	"time"

	"github.com/google/uuid"

	"FinSight/internal/model"
)

// RunRecord captures one completed analysis run for history queries.
type RunRecord struct {
	RunID       string
	Symbol      string
	Currency    string
	GeneratedAt time.Time
	Years       []model.YearRecord
}

// NewRunRecord builds a RunRecord from a finished report, assigning a
// fresh run ID.
func NewRunRecord(report *model.Report) *RunRecord {
	return &RunRecord{
		RunID:       uuid.NewString(),
		Symbol:      report.Symbol,
		Currency:    report.Currency,
		GeneratedAt: report.GeneratedAt,
		Years:       report.Years,
	}
}

// Recorder persists analysis history.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
