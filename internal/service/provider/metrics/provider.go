// Package metrics 为供应商实现添加指标收集的装饰器
package metrics

import (
	"context"
	"errors"
	"time"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/service/provider"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusSucceeded = "SUCCEEDED"
	statusFailed    = "FAILED"
)

// Provider 为供应商实现添加指标收集的装饰器
type Provider struct {
	provider            provider.Provider
	sendDurationSummary *prometheus.SummaryVec
	sendCounter         *prometheus.CounterVec
	sendStatusCounter   *prometheus.CounterVec
	name                string
}

// NewProvider 使用默认注册器
func NewProvider(name string, p provider.Provider) *Provider {
	return NewProviderWithRegisterer(name, p, prometheus.DefaultRegisterer)
}

// NewProviderWithRegisterer 多个供应商共用同一组指标，按 provider 标签区分
func NewProviderWithRegisterer(name string, p provider.Provider, reg prometheus.Registerer) *Provider {
	sendDurationSummary := register(reg, prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "email_provider_send_duration_seconds",
			Help:       "邮件供应商发送耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"provider", "template", "status"},
	))

	sendCounter := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_provider_send_total",
			Help: "邮件供应商发送总数",
		},
		[]string{"provider", "template"},
	))

	sendStatusCounter := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_provider_send_status_total",
			Help: "邮件供应商发送状态统计",
		},
		[]string{"provider", "template", "status"},
	))

	return &Provider{
		provider:            p,
		sendDurationSummary: sendDurationSummary,
		sendCounter:         sendCounter,
		sendStatusCounter:   sendStatusCounter,
		name:                name,
	}
}

// register 已注册过同名指标时复用已有的 collector
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

// Send 发送邮件并记录指标
func (p *Provider) Send(ctx context.Context, msg domain.EmailMessage) error {
	startTime := time.Now()

	p.sendCounter.WithLabelValues(p.name, msg.TemplateID).Inc()

	err := p.provider.Send(ctx, msg)

	duration := time.Since(startTime).Seconds()
	status := statusSucceeded
	if err != nil {
		status = statusFailed
	}

	p.sendStatusCounter.WithLabelValues(p.name, msg.TemplateID, status).Inc()
	p.sendDurationSummary.WithLabelValues(p.name, msg.TemplateID, status).Observe(duration)

	return err
}
