package channel

import (
	"context"

	"gitee.com/flycash/osh-notification/internal/domain"
)

// InApp 站内信渠道
//
//go:generate mockgen -source=./channel.go -destination=./mocks/channel.mock.go -package=channelmocks -typed InApp,Email
type InApp interface {
	// Send 把内容写入接收者的站内信箱
	Send(ctx context.Context, recipientID int64, content domain.NotificationContent) error
}

// Email 邮件渠道
type Email interface {
	// Send 发送邮件，失败时不重试
	Send(ctx context.Context, msg domain.EmailMessage) error
}
