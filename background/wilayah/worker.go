package wilayah

import (
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/fluwatch/fluwatch-api/consts"
	"github.com/fluwatch/fluwatch-api/external/cadence"
	"github.com/fluwatch/fluwatch-api/geo"
	"github.com/fluwatch/fluwatch-api/store"
)

// WilayahWorker names the area of new reports by reverse geocoding
type WilayahWorker struct {
	domain   string
	store    store.FluWatchCore
	resolver geo.WilayahResolver
}

func NewWilayahWorker(domain string, fluwatchStore store.FluWatchCore, resolver geo.WilayahResolver) *WilayahWorker {
	return &WilayahWorker{
		domain:   domain,
		store:    fluwatchStore,
		resolver: resolver,
	}
}

func (w *WilayahWorker) Register() {
	workflow.RegisterWithOptions(w.ResolveWilayahWorkflow, workflow.RegisterOptions{Name: consts.WilayahWorkflowName})

	activity.RegisterWithOptions(w.ResolveWilayahActivity, activity.RegisterOptions{Name: consts.ResolveWilayahActivity})
	activity.RegisterWithOptions(w.SimpanWilayahActivity, activity.RegisterOptions{Name: consts.SimpanWilayahActivity})
}

func (w *WilayahWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	workerOptions := worker.Options{
		Logger:        logger,
		MetricsScope:  tally.NewTestScope(consts.WilayahTaskList, map[string]string{}),
		DataConverter: cadence.NewMsgPackDataConverter(),
	}

	worker := worker.New(
		service,
		w.domain,
		consts.WilayahTaskList,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", consts.WilayahTaskList))

	select {}
}
