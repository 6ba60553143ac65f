package repository

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/errs"
	"gitee.com/flycash/osh-notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

// IDGenerator 站内信ID生成器，*sonyflake.Sonyflake 满足该接口
type IDGenerator interface {
	NextID() (uint64, error)
}

// InAppNotificationRepository 站内信仓储接口
type InAppNotificationRepository interface {
	// Create 分配ID并保存站内信
	Create(ctx context.Context, n domain.InAppNotification) (domain.InAppNotification, error)
	// ListByRecipient 分页查询接收者的站内信，最新的在前
	ListByRecipient(ctx context.Context, recipientID int64, offset, limit int) ([]domain.InAppNotification, error)
	// MarkRead 标记已读
	MarkRead(ctx context.Context, id uint64, recipientID int64) error
}

type inAppNotificationRepository struct {
	dao         dao.InAppNotificationDAO
	idGenerator IDGenerator
}

// NewInAppNotificationRepository 创建站内信仓储实例
func NewInAppNotificationRepository(d dao.InAppNotificationDAO, idGenerator IDGenerator) InAppNotificationRepository {
	return &inAppNotificationRepository{
		dao:         d,
		idGenerator: idGenerator,
	}
}

func (r *inAppNotificationRepository) Create(ctx context.Context, n domain.InAppNotification) (domain.InAppNotification, error) {
	id, err := r.idGenerator.NextID()
	if err != nil {
		return domain.InAppNotification{}, fmt.Errorf("%w: %w", errs.ErrNotificationIDGenerateFailed, err)
	}
	n.ID = id
	entity, err := r.dao.Create(ctx, r.toEntity(n))
	if err != nil {
		return domain.InAppNotification{}, fmt.Errorf("%w: %w", errs.ErrCreateNotificationFailed, err)
	}
	return r.toDomain(entity), nil
}

func (r *inAppNotificationRepository) ListByRecipient(ctx context.Context, recipientID int64, offset, limit int) ([]domain.InAppNotification, error) {
	entities, err := r.dao.ListByRecipient(ctx, recipientID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.InAppNotification) domain.InAppNotification {
		return r.toDomain(src)
	}), nil
}

func (r *inAppNotificationRepository) MarkRead(ctx context.Context, id uint64, recipientID int64) error {
	return r.dao.MarkRead(ctx, id, recipientID)
}

// toEntity 将领域对象转换为DAO实体
func (r *inAppNotificationRepository) toEntity(n domain.InAppNotification) dao.InAppNotification {
	return dao.InAppNotification{
		ID:            n.ID,
		RecipientID:   n.RecipientID,
		Title:         n.Title,
		Message:       n.Message,
		Type:          string(n.Type),
		ActionURL:     n.ActionURL,
		AppointmentID: n.AppointmentID,
		Read:          n.Read,
	}
}

// toDomain 将DAO实体转换为领域对象
func (r *inAppNotificationRepository) toDomain(n dao.InAppNotification) domain.InAppNotification {
	return domain.InAppNotification{
		ID:            n.ID,
		RecipientID:   n.RecipientID,
		Title:         n.Title,
		Message:       n.Message,
		Type:          domain.NotificationType(n.Type),
		ActionURL:     n.ActionURL,
		AppointmentID: n.AppointmentID,
		Read:          n.Read,
		Ctime:         time.UnixMilli(n.Ctime),
		Utime:         time.UnixMilli(n.Utime),
	}
}
