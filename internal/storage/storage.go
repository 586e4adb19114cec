package storage

import (
	"context"

	"positionScope/internal/model"
)

// ReportSink is a destination for position reports.
type ReportSink interface {
	PutReports(ctx context.Context, reports []model.PositionReport) error
}
