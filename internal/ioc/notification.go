package ioc

import (
	"time"

	"gitee.com/flycash/osh-notification/internal/event/appointment"
	"gitee.com/flycash/osh-notification/internal/pkg/idempotent"
	"gitee.com/flycash/osh-notification/internal/pkg/retry"
	"gitee.com/flycash/osh-notification/internal/service/channel"
	"gitee.com/flycash/osh-notification/internal/service/notification"
	"gitee.com/flycash/osh-notification/internal/service/provider"
	"gitee.com/flycash/osh-notification/internal/service/provider/console"
	"gitee.com/flycash/osh-notification/internal/service/provider/metrics"
	"gitee.com/flycash/osh-notification/internal/service/provider/outbox"
	"gitee.com/flycash/osh-notification/internal/service/provider/sequential"
	"gitee.com/flycash/osh-notification/internal/service/provider/tracing"
	"gitee.com/flycash/osh-notification/internal/service/strategy"
	"gitee.com/flycash/osh-notification/internal/service/template"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

const (
	providerOutbox  = "outbox"
	providerConsole = "console"
)

func InitStrategyConfig() strategy.Config {
	cfg := strategy.Config{FrontendBaseURL: strategy.DefaultFrontendBaseURL}
	err := econf.UnmarshalKey("notification.strategy", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitNotificationConfig() notification.Config {
	var cfg notification.Config
	err := econf.UnmarshalKey("notification.dispatch", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

// InitCommitRetryConfig 消费位点提交的重试策略，启动时校验
func InitCommitRetryConfig() retry.Config {
	cfg := retry.Config{
		Type: "exponential",
		ExponentialBackoff: &retry.ExponentialBackoffConfig{
			InitialInterval: 100,
			MaxInterval:     2000,
			MaxRetries:      5,
		},
	}
	err := econf.UnmarshalKey("notification.commitRetry", &cfg)
	if err != nil {
		panic(err)
	}
	_, err = retry.NewRetry(cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

// InitTemplateCatalog 开启 redis 时从邮件服务维护的集合里查模板，否则使用内置模板列表
func InitTemplateCatalog(rdb redis.Cmdable) template.Catalog {
	type Config struct {
		Source string `yaml:"source"`
	}
	var cfg Config
	err := econf.UnmarshalKey("notification.template", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Source == "redis" {
		return template.NewRedisCatalog(rdb)
	}
	return template.NewStaticCatalog(template.DefaultTemplates()...)
}

// InitEmailChannel 按配置顺序组装邮件供应商，每个供应商都带指标和链路追踪
func InitEmailChannel(producer *kafka.Producer) channel.Email {
	type Config struct {
		Providers []string `yaml:"providers"`
	}
	cfg := Config{Providers: []string{providerOutbox, providerConsole}}
	err := econf.UnmarshalKey("notification.email", &cfg)
	if err != nil {
		panic(err)
	}

	providers := make([]provider.Provider, 0, len(cfg.Providers))
	for _, name := range cfg.Providers {
		var p provider.Provider
		switch name {
		case providerOutbox:
			p = outbox.NewProvider(producer)
		case providerConsole:
			p = console.NewProvider()
		default:
			panic("未知的邮件供应商: " + name)
		}
		providers = append(providers, tracing.NewProvider(name, metrics.NewProvider(name, p)))
	}
	return channel.NewEmailChannel(sequential.NewSelectorBuilder(providers))
}

func InitRegistry(inApp channel.InApp, email channel.Email, cfg strategy.Config, catalog template.Catalog) *strategy.Registry {
	registry, err := strategy.NewRegistry(inApp, email, strategy.DefaultStrategies(cfg, catalog)...)
	if err != nil {
		panic(err)
	}
	return registry
}

func InitIdempotentService(rdb redis.Cmdable) idempotent.Service {
	type Config struct {
		Prefix string `yaml:"prefix"`
		// 单位秒
		TTL int `yaml:"ttl"`
	}
	cfg := Config{Prefix: "osh-notification:event:", TTL: 86400}
	err := econf.UnmarshalKey("notification.idempotent", &cfg)
	if err != nil {
		panic(err)
	}
	return idempotent.NewRedisService(rdb, cfg.Prefix, time.Duration(cfg.TTL)*time.Second)
}

func InitEventConsumer(
	svc notification.Service,
	consumer *kafka.Consumer,
	idem idempotent.Service,
	commitRetry retry.Config,
) *appointment.EventConsumer {
	c, err := appointment.NewEventConsumer(svc, consumer, idem, commitRetry)
	if err != nil {
		panic(err)
	}
	return c
}
