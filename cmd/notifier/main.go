package main

import (
	"context"

	"gitee.com/flycash/osh-notification/cmd/notifier/ioc"
	prodioc "gitee.com/flycash/osh-notification/internal/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var app *prodioc.App
	// ego.New 解析 --config，之后才能初始化依赖
	e := ego.New(ego.WithBeforeStopClean(func() error {
		cancel()
		if app == nil {
			return nil
		}
		return app.Tracer.Shutdown(context.Background())
	}))
	prodioc.InitTopic()
	app = ioc.InitApp()
	app.StartTasks(ctx)

	if err := e.Serve(
		egovernor.Load("server.governor").Build(),
	).Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
