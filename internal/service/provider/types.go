package provider

import (
	"context"

	"gitee.com/flycash/osh-notification/internal/domain"
)

// Provider 邮件供应商接口
//
//go:generate mockgen -source=./types.go -destination=./mocks/provider.mock.go -package=providermocks -typed Provider
type Provider interface {
	// Send 发送邮件
	Send(ctx context.Context, msg domain.EmailMessage) error
}

// Selector 供应商选择器接口
type Selector interface {
	// Next 获取下一个供应商，无可用供应商时返回错误
	Next(ctx context.Context, msg domain.EmailMessage) (Provider, error)
}

// SelectorBuilder 每次发送构造一个新的选择器
type SelectorBuilder interface {
	// Build 构造选择器
	Build() (Selector, error)
}
