package background

import (
	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/sirupsen/logrus"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}

// TaskSender enqueues background jobs. It is satisfied by *machinery.Server.
type TaskSender interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}
