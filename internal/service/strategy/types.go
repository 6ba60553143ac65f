// Package strategy 为每个标准场景组装面向单个接收者的通知内容，
// 并把内容交给站内信和邮件渠道。策略本身只负责组装，不产生副作用。
package strategy

import (
	"context"

	"gitee.com/flycash/osh-notification/internal/domain"
)

// Strategy 单个场景的内容组装策略
type Strategy interface {
	Descriptor() Descriptor
	// Compose 为 req.Recipient 组装通知内容，相同输入得到相同输出
	Compose(ctx context.Context, req Request) domain.NotificationContent
}

// Descriptor 策略的静态描述
type Descriptor struct {
	Scenario domain.Scenario
	// ActorAware 内容是否依赖触发方
	ActorAware bool
	// DefaultActor 触发方未知时使用，ActorAware 为 false 时忽略
	DefaultActor domain.Actor
}

// actorFor 计算策略最终使用的触发方
func (d Descriptor) actorFor(actor domain.Actor) domain.Actor {
	if !d.ActorAware {
		return domain.ActorUnknown
	}
	if actor.IsKnown() {
		return actor
	}
	return d.DefaultActor
}

// Request 单个接收者的组装请求
type Request struct {
	Recipient   *domain.User
	Appointment *domain.Appointment
	// ExtraMessage 调用方附加的说明，空白视为没有
	ExtraMessage string
	Actor        domain.Actor
}
