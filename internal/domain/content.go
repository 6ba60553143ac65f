package domain

// NotificationType 站内信类型标签
type NotificationType string

const (
	NotificationTypeAppointment NotificationType = "APPOINTMENT"
	NotificationTypeValidation  NotificationType = "VALIDATION"
	NotificationTypeInfo        NotificationType = "INFO"
)

// NotificationContent 针对单个接收者组装好的通知内容
// 由策略构造一次后交给站内信和邮件渠道，之后不再修改
type NotificationContent struct {
	Title         string
	Message       string
	Type          NotificationType
	ActionURL     string // 站内信跳转链接
	AppointmentID int64

	// 邮件中的行动按钮，为空表示不展示
	CTA1URL   string
	CTA1Label string
	CTA2URL   string
	CTA2Label string

	EmailTemplate string
	EmailSubject  string
	// SkipEmail 策略判定该接收者不发邮件
	SkipEmail bool

	// Extra 模板渲染使用的附加参数
	Extra map[string]string
}

// EmailContext 组装邮件模板上下文，返回新的 map，不会修改 Extra
func (c NotificationContent) EmailContext() map[string]string {
	ctx := make(map[string]string, len(c.Extra)+7)
	for k, v := range c.Extra {
		ctx[k] = v
	}
	ctx["title"] = c.Title
	ctx["message"] = c.Message
	ctx["subject"] = c.EmailSubject
	if c.CTA1URL != "" {
		ctx["actionUrl"] = c.CTA1URL
		ctx["actionLabel"] = c.CTA1Label
	}
	if c.CTA2URL != "" {
		ctx["secondaryActionUrl"] = c.CTA2URL
		ctx["secondaryActionLabel"] = c.CTA2Label
	}
	return ctx
}

// EmailMessage 交给邮件渠道的消息
type EmailMessage struct {
	To         string
	TemplateID string
	Subject    string
	Context    map[string]string
}
