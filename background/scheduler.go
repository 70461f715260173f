package background

import (
	"github.com/getsentry/sentry-go"
	"github.com/robfig/cron/v3"
)

const jadwalHapusToken = "@hourly"

// NewScheduler returns a cron scheduler which enqueues the periodic jobs
func NewScheduler(sender TaskSender) (*cron.Cron, error) {
	c := cron.New()

	if _, err := c.AddFunc(jadwalHapusToken, func() {
		log.Info("enqueue expired reset token cleanup")
		if _, err := sender.SendTask(HapusTokenKedaluwarsaSignature()); err != nil {
			log.WithError(err).Error("fail to enqueue expired reset token cleanup")
			sentry.CaptureException(err)
		}
	}); err != nil {
		return nil, err
	}

	return c, nil
}
