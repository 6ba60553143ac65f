// Package metrics 为 Redis 客户端提供 Prometheus 指标
package metrics

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Hook 实现了 redis.Hook 接口，为所有 Redis 操作添加指标收集
type Hook struct {
	commandCounter    *prometheus.CounterVec
	commandDuration   *prometheus.SummaryVec
	pipelineCounter   *prometheus.CounterVec
	pipelineDuration  prometheus.Summary
	connectionCounter *prometheus.CounterVec
}

// NewMetricsHook 指标注册到 reg，重复注册时复用已有的指标
func NewMetricsHook(reg prometheus.Registerer) *Hook {
	objectives := map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001}
	return &Hook{
		commandCounter: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "redis_commands_total",
			Help: "Total number of Redis commands executed",
		}, []string{"command", "status"})),
		commandDuration: register(reg, prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Name:       "redis_command_duration_seconds",
			Help:       "Redis command execution time in seconds",
			Objectives: objectives,
		}, []string{"command"})),
		pipelineCounter: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "redis_pipeline_commands_total",
			Help: "Total number of Redis pipeline executions",
		}, []string{"status"})),
		pipelineDuration: register(reg, prometheus.NewSummary(prometheus.SummaryOpts{
			Name:       "redis_pipeline_duration_seconds",
			Help:       "Redis pipeline execution time in seconds",
			Objectives: objectives,
		})),
		connectionCounter: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "redis_connections_total",
			Help: "Total number of Redis connections created",
		}, []string{"status"})),
	}
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// status redis.Nil 表示 key 不存在，不算失败
func status(err error) string {
	if err != nil && !errors.Is(err, redis.Nil) {
		return statusError
	}
	return statusSuccess
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.commandDuration.WithLabelValues(cmd.Name()).Observe(time.Since(start).Seconds())
		h.commandCounter.WithLabelValues(cmd.Name(), status(err)).Inc()
		return err
	}
}

func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		if len(cmds) == 0 {
			return next(ctx, cmds)
		}
		start := time.Now()
		err := next(ctx, cmds)
		h.pipelineDuration.Observe(time.Since(start).Seconds())

		st := status(err)
		for _, cmd := range cmds {
			if status(cmd.Err()) == statusError {
				st = statusError
				break
			}
		}
		h.pipelineCounter.WithLabelValues(st).Inc()
		return err
	}
}

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			h.connectionCounter.WithLabelValues(statusError).Inc()
		} else {
			h.connectionCounter.WithLabelValues(statusSuccess).Inc()
		}
		return conn, err
	}
}

// WithMetrics 为Redis客户端添加指标收集功能
func WithMetrics(client *redis.Client, reg prometheus.Registerer) *redis.Client {
	client.AddHook(NewMetricsHook(reg))
	return client
}
