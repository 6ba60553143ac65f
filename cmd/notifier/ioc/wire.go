//go:build wireinject

package ioc

import (
	"gitee.com/flycash/osh-notification/internal/ioc"
	"gitee.com/flycash/osh-notification/internal/repository"
	"gitee.com/flycash/osh-notification/internal/repository/dao"
	"gitee.com/flycash/osh-notification/internal/service/channel"
	"gitee.com/flycash/osh-notification/internal/service/notification"
	"gitee.com/flycash/osh-notification/internal/service/strategy"
	"github.com/google/wire"
	"github.com/sony/sonyflake"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitIDGenerator,
		ioc.InitRedisClient,
		ioc.InitRedisCmd,
		ioc.InitProducer,
		ioc.InitConsumer,
		ioc.InitZipkinTracer,
	)
	inAppSet = wire.NewSet(
		channel.NewInAppChannel,
		repository.NewInAppNotificationRepository,
		dao.NewInAppNotificationDAO,
		wire.Bind(new(repository.IDGenerator), new(*sonyflake.Sonyflake)),
	)
	strategySet = wire.NewSet(
		ioc.InitStrategyConfig,
		ioc.InitTemplateCatalog,
		ioc.InitEmailChannel,
		ioc.InitRegistry,
		wire.Bind(new(notification.Dispatcher), new(*strategy.Registry)),
	)
	notificationSet = wire.NewSet(
		ioc.InitNotificationConfig,
		notification.NewNotificationService,
	)
	eventSet = wire.NewSet(
		ioc.InitIdempotentService,
		ioc.InitCommitRetryConfig,
		ioc.InitEventConsumer,
		ioc.InitTasks,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		// 基础设施
		BaseSet,

		// 站内信
		inAppSet,

		// 场景策略与邮件
		strategySet,

		// 通知编排
		notificationSet,

		// 事件消费
		eventSet,

		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
