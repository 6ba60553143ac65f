package ioc

import (
	"gitee.com/flycash/osh-notification/internal/pkg/redis/metrics"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

func InitRedisClient() *redis.Client {
	type Config struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	}
	var cfg Config
	err := econf.UnmarshalKey("redis", &cfg)
	if err != nil {
		panic(err)
	}
	cmd := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return metrics.WithMetrics(cmd, prometheus.DefaultRegisterer)
}

// InitRedisCmd wire 需要接口类型
func InitRedisCmd(client *redis.Client) redis.Cmdable {
	return client
}
