package common

import (
	"context"

	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/internal/repository"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
	"github.com/bwmarrin/snowflake"
)

// AuditLogger appends lifecycle records to the event log. Writes are best
// effort: a failed write is reported to the logger and swallowed so that it
// can never abort the operation which triggered it.
type AuditLogger struct {
	eventLogRepo repository.EventLogRepository
	node         *snowflake.Node
}

func NewAuditLogger(eventLogRepo repository.EventLogRepository) *AuditLogger {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}

	return &AuditLogger{eventLogRepo: eventLogRepo, node: node}
}

func (l *AuditLogger) Record(ctx context.Context, log *entity.EventLog) {
	log.ID = l.node.Generate().Int64()
	if err := l.eventLogRepo.Create(ctx, log); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot write event log %s: %v", log.LogType, err)
	}
}
