package metrics

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/osh-notification/internal/domain"
	providermocks "gitee.com/flycash/osh-notification/internal/service/provider/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProviderSend(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reg := prometheus.NewRegistry()
	msg := domain.EmailMessage{To: "a@example.com", TemplateID: "appointment-generic"}

	inner := providermocks.NewMockProvider(ctrl)
	inner.EXPECT().Send(gomock.Any(), msg).Return(nil)
	inner.EXPECT().Send(gomock.Any(), msg).Return(errors.New("smtp down"))

	p := NewProviderWithRegisterer("smtp", inner, reg)
	assert.NoError(t, p.Send(context.Background(), msg))
	assert.Error(t, p.Send(context.Background(), msg))

	// 第二个实例复用已注册的指标
	p2 := NewProviderWithRegisterer("outbox", inner, reg)
	assert.Same(t, p.sendCounter, p2.sendCounter)

	assert.InDelta(t, 2, counterValue(t, reg, "email_provider_send_total", nil), 0)
	assert.InDelta(t, 1, counterValue(t, reg, "email_provider_send_status_total", map[string]string{"status": statusSucceeded}), 0)
	assert.InDelta(t, 1, counterValue(t, reg, "email_provider_send_status_total", map[string]string{"status": statusFailed}), 0)
}

// counterValue 累加满足标签条件的计数
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	var sum float64
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	metricLoop:
		for _, m := range f.GetMetric() {
			for k, v := range labels {
				matched := false
				for _, lp := range m.GetLabel() {
					if lp.GetName() == k && lp.GetValue() == v {
						matched = true
					}
				}
				if !matched {
					continue metricLoop
				}
			}
			sum += m.GetCounter().GetValue()
		}
	}
	return sum
}
