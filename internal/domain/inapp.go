package domain

import "time"

// InAppNotification 站内信记录
type InAppNotification struct {
	ID            uint64
	RecipientID   int64
	Title         string
	Message       string
	Type          NotificationType
	ActionURL     string
	AppointmentID int64
	Read          bool
	Ctime         time.Time
	Utime         time.Time
}

// NewInAppNotification 由通知内容生成站内信，ID 由仓储分配
func NewInAppNotification(recipientID int64, content NotificationContent) InAppNotification {
	return InAppNotification{
		RecipientID:   recipientID,
		Title:         content.Title,
		Message:       content.Message,
		Type:          content.Type,
		ActionURL:     content.ActionURL,
		AppointmentID: content.AppointmentID,
	}
}
