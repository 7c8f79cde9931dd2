package notify

import (
	"context"
	"log/slog"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

// LogDispatcher only logs events. Used when no broker is configured.
type LogDispatcher struct {
	log *slog.Logger
}

// NewLogDispatcher creates a LogDispatcher.
func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{log: logger.With("adapter", "notify.log")}
}

func (d *LogDispatcher) Dispatch(ctx context.Context, event domain.NotificationEvent) error {
	d.log.InfoContext(ctx, "notification",
		slog.String("kind", event.Kind.String()),
		slog.String("submission_id", event.SubmissionID.String()),
		slog.String("application_id", event.ApplicationID.String()),
		slog.String("template_id", event.TemplateID),
		slog.String("recipient_ref", event.RecipientRef),
	)
	return nil
}
