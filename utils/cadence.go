package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	cadenceClient "go.uber.org/cadence/client"

	"github.com/fluwatch/fluwatch-api/consts"
	"github.com/fluwatch/fluwatch-api/external/cadence"
)

// TriggerWilayahResolution is a helper function to start the workflow
// which names the area of a report.
func TriggerWilayahResolution(client cadence.WorkflowStarter, c context.Context, laporanID uuid.UUID) error {
	id := laporanID.String()
	_, err := client.StartWorkflow(c,
		cadenceClient.StartWorkflowOptions{
			ID:                           fmt.Sprintf(consts.WilayahWorkflowIDFmt, id),
			TaskList:                     consts.WilayahTaskList,
			ExecutionStartToCloseTimeout: time.Hour,
			WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicateFailedOnly,
		}, consts.WilayahWorkflowName, id)
	return err
}
