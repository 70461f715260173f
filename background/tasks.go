package background

import (
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/getsentry/sentry-go"

	"github.com/fluwatch/fluwatch-api/consts"
)

// Tasks maps the task names to their handlers
func (m *BackgroundManager) Tasks() map[string]interface{} {
	return map[string]interface{}{
		consts.TaskKirimEmailReset:       m.KirimEmailReset,
		consts.TaskHapusTokenKedaluwarsa: m.HapusTokenKedaluwarsa,
	}
}

// KirimEmailReset is a background job to deliver the reset password link
func (m *BackgroundManager) KirimEmailReset(email, username, link string) error {
	if err := m.mailer.KirimEmailReset(email, username, link); err != nil {
		log.WithError(err).WithField("email", email).Error("fail to send reset password email")
		sentry.CaptureException(err)
		return err
	}

	log.WithField("email", email).Info("reset password email sent")
	return nil
}

// HapusTokenKedaluwarsa is a background job to clear the reset tokens
// which are no longer usable
func (m *BackgroundManager) HapusTokenKedaluwarsa() error {
	n, err := m.store.ExpireResetTokens(time.Now().UTC())
	if err != nil {
		log.WithError(err).Error("fail to expire reset tokens")
		sentry.CaptureException(err)
		return err
	}

	log.WithField("jumlah", n).Info("expired reset tokens cleared")
	return nil
}

// KirimEmailResetSignature builds the task to send a reset password email
func KirimEmailResetSignature(email, username, link string) *tasks.Signature {
	return &tasks.Signature{
		Name:       consts.TaskKirimEmailReset,
		RoutingKey: consts.BackgroundQueue,
		RetryCount: 3,
		Args: []tasks.Arg{
			{Type: "string", Value: email},
			{Type: "string", Value: username},
			{Type: "string", Value: link},
		},
	}
}

func HapusTokenKedaluwarsaSignature() *tasks.Signature {
	return &tasks.Signature{
		Name:       consts.TaskHapusTokenKedaluwarsa,
		RoutingKey: consts.BackgroundQueue,
	}
}
