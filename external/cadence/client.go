package cadence

import (
	"context"
	"fmt"

	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/client"
	"go.uber.org/cadence/workflow"
	"go.uber.org/yarpc"
	"go.uber.org/yarpc/transport/tchannel"
)

const (
	ClientName     = "fluwatch-worker"
	CadenceService = "cadence-frontend"
)

// WorkflowStarter starts workflow executions
type WorkflowStarter interface {
	StartWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (*workflow.Execution, error)
}

// Client starts workflows on the cadence frontend
type Client struct {
	client client.Client
}

// ServiceClient dials the cadence frontend over tchannel
func ServiceClient(hostPort string) (workflowserviceclient.Interface, error) {
	ch, err := tchannel.NewChannelTransport(tchannel.ServiceName(ClientName))
	if err != nil {
		return nil, fmt.Errorf("tchannel transport: %w", err)
	}

	dispatcher := yarpc.NewDispatcher(yarpc.Config{
		Name: ClientName,
		Outbounds: yarpc.Outbounds{
			CadenceService: {Unary: ch.NewSingleOutbound(hostPort)},
		},
	})
	if err := dispatcher.Start(); err != nil {
		return nil, fmt.Errorf("start dispatcher: %w", err)
	}

	return workflowserviceclient.New(dispatcher.ClientConfig(CadenceService)), nil
}

func NewClient(hostPort, domain string) (*Client, error) {
	service, err := ServiceClient(hostPort)
	if err != nil {
		return nil, err
	}

	return &Client{
		client: client.NewClient(service, domain, &client.Options{
			MetricsScope:  tally.NoopScope,
			DataConverter: NewMsgPackDataConverter(),
		}),
	}, nil
}

func (c *Client) StartWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (*workflow.Execution, error) {
	return c.client.StartWorkflow(ctx, options, workflow, args...)
}
