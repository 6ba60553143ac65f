package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter  = errors.New("参数错误")
	ErrScenarioRequired  = errors.New("通知场景不能为空")
	ErrSendInAppFailed   = errors.New("站内信发送失败")
	ErrSendEmailFailed   = errors.New("邮件发送失败")
	ErrEmailAddressEmpty = errors.New("收件人邮箱为空")

	ErrNotificationIDGenerateFailed = errors.New("通知ID生成失败")
	ErrNotificationDuplicate        = errors.New("通知记录主键冲突")
	ErrCreateNotificationFailed     = errors.New("创建通知失败")
	ErrNotificationNotFound         = errors.New("通知记录不存在")

	ErrStrategyMisconfigured = errors.New("通知策略配置错误")
	ErrNoAvailableProvider   = errors.New("无可用供应商")
	ErrTemplateCatalog       = errors.New("模板目录查询失败")
)
