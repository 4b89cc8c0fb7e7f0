package service

import (
	"go.uber.org/zap"

	"github.com/herbarium/herbarium-backend/internal/models"
)

// auditLogger appends one LogEvent per successful mutation. The append is
// deliberately not transactional with the mutation: a failed audit write
// is reported to the error log and the mutation stands.
type auditLogger struct {
	logs   LogEventStore
	logger *zap.Logger
}

func newAuditLogger(logs LogEventStore, logger *zap.Logger) *auditLogger {
	return &auditLogger{
		logs:   logs,
		logger: logger,
	}
}

func (a *auditLogger) record(event *models.LogEvent) {
	if err := a.logs.Create(event); err != nil {
		a.logger.Error("audit log write failed",
			zap.Uint("user_id", event.UserID),
			zap.String("description", event.Description),
			zap.Error(err),
		)
	}
}
