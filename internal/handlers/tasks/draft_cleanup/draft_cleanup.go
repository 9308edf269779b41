package draft_cleanup

import (
	"context"
	"time"

	"booking/pkg/logger"
)

type DraftCleanup struct {
	log      handlerLogger
	service  Service
	interval time.Duration
}

func NewDraftCleanup(log handlerLogger, service Service, interval time.Duration) *DraftCleanup {
	return &DraftCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DraftCleanup) TTL() time.Duration {
	return d.interval
}

func (d *DraftCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	deleted, err := d.service.CleanupExpiredDrafts(ctxWithTimeout)
	if deleted > 0 {
		d.log.With(
			logger.NewField("expired_drafts", deleted),
		).Info("draft cleanup")
	}

	return err
}

func (d *DraftCleanup) Info() string {
	return "draft cleanup"
}
