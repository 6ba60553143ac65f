package ioc

import (
	"context"

	"gitee.com/flycash/osh-notification/internal/event/appointment"
	"go.opentelemetry.io/otel/sdk/trace"
)

// Task 随应用启动的后台任务，Start 不能阻塞
type Task interface {
	Start(ctx context.Context)
}

var _ Task = (*appointment.EventConsumer)(nil)

type App struct {
	Tasks  []Task
	Tracer *trace.TracerProvider
}

func (a *App) StartTasks(ctx context.Context) {
	for _, t := range a.Tasks {
		t.Start(ctx)
	}
}

func InitTasks(c *appointment.EventConsumer) []Task {
	return []Task{c}
}
