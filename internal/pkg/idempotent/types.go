// Package idempotent 记录已经处理过的 key，用于消息重复投递时去重
package idempotent

import "context"

// Service 幂等判断，处理成功后再 Mark，处理中途崩溃的消息重新投递时仍会处理
type Service interface {
	// Exists key 是否已经标记过
	Exists(ctx context.Context, key string) (bool, error)
	// Mark 标记 key 已处理
	Mark(ctx context.Context, key string) error
}
