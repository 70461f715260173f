package wilayah

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"
)

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// ResolveWilayahWorkflow resolves the area name of a report and stores it
func (w *WilayahWorker) ResolveWilayahWorkflow(ctx workflow.Context, laporanID string) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	logger := workflow.GetLogger(ctx)

	var nama string
	if err := workflow.ExecuteActivity(ctx, w.ResolveWilayahActivity, laporanID).Get(ctx, &nama); err != nil {
		logger.Error("Fail to resolve wilayah.", zap.String("laporanID", laporanID), zap.Error(err))
		sentry.CaptureException(err)
		return err
	}

	if nama == "" {
		logger.Info("Nothing to update.", zap.String("laporanID", laporanID))
		return nil
	}

	if err := workflow.ExecuteActivity(ctx, w.SimpanWilayahActivity, laporanID, nama).Get(ctx, nil); err != nil {
		logger.Error("Fail to save wilayah.", zap.String("laporanID", laporanID), zap.Error(err))
		sentry.CaptureException(err)
		return err
	}

	return nil
}
