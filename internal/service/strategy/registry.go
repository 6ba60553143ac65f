package strategy

import (
	"context"
	"fmt"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/errs"
	"gitee.com/flycash/osh-notification/internal/service/channel"
	"gitee.com/flycash/osh-notification/internal/service/template"
	"github.com/gotomicro/ego/core/elog"
)

// DefaultStrategies 七个标准场景各自的策略
func DefaultStrategies(cfg Config, catalog template.Catalog) []Strategy {
	return []Strategy{
		NewRequestedStrategy(cfg, catalog),
		NewSlotProposedStrategy(cfg, catalog),
		NewConfirmedStrategy(cfg, catalog),
		NewCancelledStrategy(cfg, catalog),
		NewPlannedStrategy(cfg, catalog),
		NewConfirmedByEmployeeStrategy(cfg, catalog),
		NewVisitCancelledStrategy(cfg, catalog),
	}
}

type registered struct {
	strategy   Strategy
	descriptor Descriptor
}

// Registry 场景到策略的映射，每个标准场景恰好一个策略
type Registry struct {
	strategies map[domain.Scenario]registered
	inApp      channel.InApp
	email      channel.Email
	logger     *elog.Component
}

// NewRegistry 场景缺失、重复或不合法时返回 ErrStrategyMisconfigured
func NewRegistry(inApp channel.InApp, email channel.Email, strategies ...Strategy) (*Registry, error) {
	m := make(map[domain.Scenario]registered, len(strategies))
	for _, s := range strategies {
		d := s.Descriptor()
		if !d.Scenario.IsValid() {
			return nil, fmt.Errorf("%w: 未知场景 %q", errs.ErrStrategyMisconfigured, d.Scenario)
		}
		if _, ok := m[d.Scenario]; ok {
			return nil, fmt.Errorf("%w: 场景 %s 重复注册", errs.ErrStrategyMisconfigured, d.Scenario)
		}
		if d.ActorAware && !d.DefaultActor.IsKnown() {
			return nil, fmt.Errorf("%w: 场景 %s 缺少默认触发方", errs.ErrStrategyMisconfigured, d.Scenario)
		}
		m[d.Scenario] = registered{strategy: s, descriptor: d}
	}
	for _, sc := range domain.Scenarios() {
		if _, ok := m[sc]; !ok {
			return nil, fmt.Errorf("%w: 场景 %s 没有策略", errs.ErrStrategyMisconfigured, sc)
		}
	}
	return &Registry{
		strategies: m,
		inApp:      inApp,
		email:      email,
		logger:     elog.DefaultLogger,
	}, nil
}

// Compose 只组装内容，不投递
func (r *Registry) Compose(ctx context.Context, scenario domain.Scenario, req Request) (domain.NotificationContent, error) {
	reg, ok := r.strategies[scenario]
	if !ok {
		return domain.NotificationContent{}, fmt.Errorf("%w: 未知场景 %q", errs.ErrInvalidParameter, scenario)
	}
	if req.Recipient == nil || req.Appointment == nil {
		return domain.NotificationContent{}, fmt.Errorf("%w: 接收者和预约不能为空", errs.ErrInvalidParameter)
	}
	req.Actor = reg.descriptor.actorFor(req.Actor)
	return reg.strategy.Compose(ctx, req), nil
}

// Dispatch 组装内容后投递给站内信和邮件，两个渠道互不影响
func (r *Registry) Dispatch(ctx context.Context, scenario domain.Scenario, req Request) (domain.DeliveryResult, error) {
	content, err := r.Compose(ctx, scenario, req)
	if err != nil {
		return domain.DeliveryResult{}, err
	}
	return r.deliver(ctx, scenario, req.Recipient, content), nil
}

func (r *Registry) deliver(ctx context.Context, scenario domain.Scenario, recipient *domain.User, content domain.NotificationContent) domain.DeliveryResult {
	res := domain.DeliveryResult{RecipientID: recipient.ID, Scenario: scenario}

	if err := r.inApp.Send(ctx, recipient.ID, content); err != nil {
		r.logger.Error("站内信投递失败",
			elog.Int64("recipientID", recipient.ID),
			elog.String("scenario", scenario.String()),
			elog.FieldErr(err),
		)
		res.InAppErr = err
	}

	if content.SkipEmail {
		res.EmailSkipped = true
		return res
	}
	if recipient.Email == "" {
		// 没有邮箱的接收者只收站内信
		r.logger.Warn("接收者没有邮箱，跳过邮件",
			elog.Int64("recipientID", recipient.ID),
			elog.String("scenario", scenario.String()),
		)
		res.EmailSkipped = true
		return res
	}
	err := r.email.Send(ctx, domain.EmailMessage{
		To:         recipient.Email,
		TemplateID: content.EmailTemplate,
		Subject:    content.EmailSubject,
		Context:    content.EmailContext(),
	})
	if err != nil {
		r.logger.Error("邮件投递失败",
			elog.Int64("recipientID", recipient.ID),
			elog.String("scenario", scenario.String()),
			elog.String("template", content.EmailTemplate),
			elog.FieldErr(err),
		)
		res.EmailErr = err
	}
	return res
}
