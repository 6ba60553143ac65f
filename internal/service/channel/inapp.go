package channel

import (
	"context"
	"fmt"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/errs"
	"gitee.com/flycash/osh-notification/internal/repository"
)

var _ InApp = (*inAppChannel)(nil)

type inAppChannel struct {
	repo repository.InAppNotificationRepository
}

func NewInAppChannel(repo repository.InAppNotificationRepository) InApp {
	return &inAppChannel{repo: repo}
}

func (c *inAppChannel) Send(ctx context.Context, recipientID int64, content domain.NotificationContent) error {
	if recipientID == 0 {
		return fmt.Errorf("%w: 接收者ID为空", errs.ErrInvalidParameter)
	}
	_, err := c.repo.Create(ctx, domain.NewInAppNotification(recipientID, content))
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSendInAppFailed, err)
	}
	return nil
}
