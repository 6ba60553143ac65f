package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/osh-notification/internal/errs"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

// InAppNotificationDAO 站内信表
type InAppNotificationDAO interface {
	// Create 创建单条站内信，ID 由调用方生成
	Create(ctx context.Context, data InAppNotification) (InAppNotification, error)
	// ListByRecipient 按 ID 倒序分页查询接收者的站内信
	ListByRecipient(ctx context.Context, recipientID int64, offset, limit int) ([]InAppNotification, error)
	// MarkRead 标记已读，只能标记自己的站内信
	MarkRead(ctx context.Context, id uint64, recipientID int64) error
}

// InAppNotification 站内信记录表
type InAppNotification struct {
	ID            uint64 `gorm:"primaryKey;comment:'雪花算法ID'"`
	RecipientID   int64  `gorm:"type:BIGINT;NOT NULL;index:idx_recipient_read,priority:1;comment:'接收者用户ID'"`
	Title         string `gorm:"type:VARCHAR(256);NOT NULL;comment:'标题'"`
	Message       string `gorm:"type:TEXT;NOT NULL;comment:'正文'"`
	Type          string `gorm:"type:ENUM('APPOINTMENT','VALIDATION','INFO');NOT NULL;comment:'站内信类型'"`
	ActionURL     string `gorm:"column:action_url;type:VARCHAR(1024);comment:'跳转链接'"`
	AppointmentID int64  `gorm:"type:BIGINT;index;comment:'关联预约ID'"`
	Read          bool   `gorm:"column:is_read;NOT NULL;DEFAULT:false;index:idx_recipient_read,priority:2;comment:'是否已读'"`
	Ctime         int64
	Utime         int64
}

// TableName 表名
func (InAppNotification) TableName() string {
	return "in_app_notifications"
}

type inAppNotificationDAO struct {
	db *egorm.Component
}

// NewInAppNotificationDAO 创建站内信DAO实例
func NewInAppNotificationDAO(db *egorm.Component) InAppNotificationDAO {
	return &inAppNotificationDAO{
		db: db,
	}
}

// InitTables 建表
func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&InAppNotification{})
}

func (d *inAppNotificationDAO) Create(ctx context.Context, data InAppNotification) (InAppNotification, error) {
	now := time.Now().UnixMilli()
	data.Ctime, data.Utime = now, now
	if err := d.db.WithContext(ctx).Create(&data).Error; err != nil {
		if d.isUniqueConstraintError(err) {
			return InAppNotification{}, fmt.Errorf("%w", errs.ErrNotificationDuplicate)
		}
		return InAppNotification{}, err
	}
	return data, nil
}

// isUniqueConstraintError 检查是否是唯一索引冲突错误
func (d *inAppNotificationDAO) isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	me := new(mysql.MySQLError)
	if ok := errors.As(err, &me); ok {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

func (d *inAppNotificationDAO) ListByRecipient(ctx context.Context, recipientID int64, offset, limit int) ([]InAppNotification, error) {
	var res []InAppNotification
	err := d.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *inAppNotificationDAO) MarkRead(ctx context.Context, id uint64, recipientID int64) error {
	res := d.db.WithContext(ctx).Model(&InAppNotification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Updates(map[string]any{
			"is_read": true,
			"utime":   time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id=%d", errs.ErrNotificationNotFound, id)
	}
	return nil
}
