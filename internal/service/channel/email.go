package channel

import (
	"context"
	"errors"
	"fmt"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/errs"
	"gitee.com/flycash/osh-notification/internal/service/provider"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
)

var _ Email = (*emailChannel)(nil)

// emailChannel 按选择器给出的顺序逐个尝试供应商，第一个成功即返回
type emailChannel struct {
	builder provider.SelectorBuilder
	logger  *elog.Component
}

func NewEmailChannel(builder provider.SelectorBuilder) Email {
	return &emailChannel{
		builder: builder,
		logger:  elog.DefaultLogger,
	}
}

func (e *emailChannel) Send(ctx context.Context, msg domain.EmailMessage) error {
	if msg.To == "" {
		return fmt.Errorf("%w", errs.ErrEmailAddressEmpty)
	}

	selector, err := e.builder.Build()
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSendEmailFailed, err)
	}

	var attempts *multierror.Error
	for {
		p, err1 := selector.Next(ctx, msg)
		if err1 != nil {
			if errors.Is(err1, errs.ErrNoAvailableProvider) && attempts != nil {
				return fmt.Errorf("%w: %w", errs.ErrSendEmailFailed, attempts)
			}
			return fmt.Errorf("%w: %w", errs.ErrSendEmailFailed, err1)
		}

		err2 := p.Send(ctx, msg)
		if err2 == nil {
			return nil
		}
		e.logger.Warn("邮件供应商发送失败，尝试下一个",
			elog.String("template", msg.TemplateID),
			elog.FieldErr(err2))
		attempts = multierror.Append(attempts, err2)

		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", errs.ErrSendEmailFailed, ctx.Err())
		}
	}
}
