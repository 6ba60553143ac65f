package strategy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/service/template"
	"github.com/gotomicro/ego/core/elog"
)

// DefaultFrontendBaseURL 未配置前端地址时使用
const DefaultFrontendBaseURL = "http://localhost:3000"

const dateTimeLayout = "02/01/2006 15:04"

// 站内信和邮件按钮的动作
const (
	actionView        = "view"
	actionConfirm     = "confirm"
	actionCancel      = "cancel"
	actionCertificate = "certificate"
)

// Config 策略配置
type Config struct {
	FrontendBaseURL string `yaml:"frontendBaseURL"`
}

// base 所有策略共用的辅助方法
type base struct {
	baseURL string
	catalog template.Catalog
	logger  *elog.Component
}

func newBase(cfg Config, catalog template.Catalog) base {
	u := strings.TrimSpace(cfg.FrontendBaseURL)
	if u == "" {
		u = DefaultFrontendBaseURL
	}
	return base{baseURL: u, catalog: catalog, logger: elog.DefaultLogger}
}

// actionLink 预约详情链接，预约没有 ID 时原样返回前端地址
func (b base) actionLink(appt *domain.Appointment, action string) string {
	if appt == nil || appt.ID == 0 {
		return b.baseURL
	}
	link := fmt.Sprintf("%s/appointment_action?id=%d", strings.TrimSuffix(b.baseURL, "/"), appt.ID)
	if action = strings.TrimSpace(action); action != "" {
		link += "&action=" + action
	}
	return link
}

// resolveTemplate 模板不存在或目录不可用时回退到通用模板
func (b base) resolveTemplate(ctx context.Context, name string) string {
	ok, err := b.catalog.Exists(ctx, name)
	if err != nil {
		b.logger.Warn("查询邮件模板失败，使用通用模板",
			elog.String("template", name),
			elog.FieldErr(err),
		)
		return template.GenericTemplate
	}
	if !ok {
		return template.GenericTemplate
	}
	return name
}

// newContent 填充所有场景共有的字段
func (b base) newContent(req Request, title, message, action string) domain.NotificationContent {
	appt := req.Appointment
	when, _ := appt.DisplayTime()
	return domain.NotificationContent{
		Title:         title,
		Message:       message,
		Type:          domain.NotificationTypeAppointment,
		ActionURL:     b.actionLink(appt, action),
		AppointmentID: appt.ID,
		Extra: map[string]string{
			"recipientName":       recipientName(req.Recipient),
			"employeeName":        employeeName(appt),
			"appointmentType":     appointmentTypeLabel(appt),
			"appointmentDateTime": formatTime(when),
		},
	}
}

// withCertificate 复工体检附带查看证明的次要按钮
func (b base) withCertificate(c *domain.NotificationContent, appt *domain.Appointment) {
	if appt.Type != domain.AppointmentTypeReturnToWork {
		return
	}
	c.CTA2URL = b.actionLink(appt, actionCertificate)
	c.CTA2Label = "Voir le certificat"
}

// enrichSubject 在主题后附上展示时间，没有时间则原样返回
func enrichSubject(subject string, appt *domain.Appointment) string {
	if appt == nil {
		return subject
	}
	when, ok := appt.DisplayTime()
	if !ok {
		return subject
	}
	return subject + " — " + formatTime(when)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateTimeLayout)
}

func recipientName(u *domain.User) string {
	if u == nil {
		return ""
	}
	if strings.TrimSpace(u.Username) != "" {
		return u.Username
	}
	return u.Email
}

// employeeName 优先使用姓名，其次邮箱，都没有时使用通用称呼
func employeeName(appt *domain.Appointment) string {
	if appt != nil && appt.Employee != nil {
		e := appt.Employee
		if strings.TrimSpace(e.FirstName) != "" && strings.TrimSpace(e.LastName) != "" {
			return strings.TrimSpace(e.FirstName) + " " + strings.TrimSpace(e.LastName)
		}
	}
	if email := employeeEmail(appt); email != "" {
		return email
	}
	return "Collaborateur"
}

func employeeEmail(appt *domain.Appointment) string {
	if appt == nil {
		return ""
	}
	if u := appt.EmployeeUser(); u != nil {
		return strings.TrimSpace(u.Email)
	}
	return ""
}

// employeeDisplay 形如 "Jean Dupont (jean@corp.fr)"
func employeeDisplay(appt *domain.Appointment) string {
	name := employeeName(appt)
	email := employeeEmail(appt)
	if email == "" || email == name {
		return name
	}
	return name + " (" + email + ")"
}

var typeLabels = map[domain.AppointmentType]string{
	domain.AppointmentTypePreRecruitment:           "Embauche",
	domain.AppointmentTypeReturnToWork:             "Reprise",
	domain.AppointmentTypePeriodic:                 "Périodique",
	domain.AppointmentTypeSpontaneous:              "Spontané",
	domain.AppointmentTypeSurveillanceParticuliere: "Surveillance particulière",
	domain.AppointmentTypeMedicalCall:              "À l'appel du médecin",
	domain.AppointmentTypeOther:                    "Autre",
}

// appointmentTypeLabel 预约类型的短标签
func appointmentTypeLabel(appt *domain.Appointment) string {
	if appt == nil || appt.Type == "" {
		return "Non spécifié"
	}
	if l, ok := typeLabels[appt.Type]; ok {
		return l
	}
	return "Autre"
}

var visitTypeLabels = map[domain.AppointmentType]string{
	domain.AppointmentTypePreRecruitment:           "Pré-recrutement",
	domain.AppointmentTypeReturnToWork:             "Reprise de travail",
	domain.AppointmentTypePeriodic:                 "Périodique",
	domain.AppointmentTypeSurveillanceParticuliere: "Surveillance particulière",
	domain.AppointmentTypeMedicalCall:              "À l'appel du médecin",
	domain.AppointmentTypeSpontaneous:              "Spontané",
	domain.AppointmentTypeOther:                    "Autre",
}

// visitTypeLabel 体检类型的完整描述
func visitTypeLabel(appt *domain.Appointment) string {
	if appt == nil || appt.Type == "" {
		return "Non spécifié"
	}
	if l, ok := visitTypeLabels[appt.Type]; ok {
		return l
	}
	return "Autre"
}

// modeLabel 就诊方式，未指定时使用 fallback
func modeLabel(appt *domain.Appointment, fallback string) string {
	switch appt.VisitMode {
	case domain.VisitModeRemote:
		return "À distance"
	case domain.VisitModeInPerson:
		return "Présentiel"
	default:
		return fallback
	}
}

// isEmployeeInitiated 预约是否由员工本人发起
func isEmployeeInitiated(appt *domain.Appointment) bool {
	switch appt.Type {
	case domain.AppointmentTypeSpontaneous:
		return true
	case domain.AppointmentTypePeriodic,
		domain.AppointmentTypeSurveillanceParticuliere,
		domain.AppointmentTypeMedicalCall:
		return false
	case domain.AppointmentTypePreRecruitment,
		domain.AppointmentTypeReturnToWork,
		domain.AppointmentTypeOther:
		u := appt.EmployeeUser()
		return u != nil && appt.CreatedByID != 0 && appt.CreatedByID == u.ID
	default:
		return false
	}
}

// actedBy 接收者就是执行该操作的人
func actedBy(recipient *domain.User, userID int64) bool {
	return recipient != nil && recipient.ID != 0 && recipient.ID == userID
}

// lastEditorID 最后修改人，没有时取创建人
func lastEditorID(appt *domain.Appointment) int64 {
	if appt.UpdatedByID != 0 {
		return appt.UpdatedByID
	}
	return appt.CreatedByID
}

// appendExtra 把附加说明接在默认内容之后
func appendExtra(message, extra string) string {
	if extra = strings.TrimSpace(extra); extra == "" {
		return message
	}
	return message + " – " + extra
}

// replaceWithExtra 有附加说明时替换默认内容
func replaceWithExtra(message, extra string) string {
	if extra = strings.TrimSpace(extra); extra == "" {
		return message
	}
	return extra
}

// instructionsSuffix 体检须知，空白时返回空串
func instructionsSuffix(appt *domain.Appointment) string {
	if strings.TrimSpace(appt.MedicalInstructions) == "" {
		return ""
	}
	return " – Consignes : " + strings.TrimSpace(appt.MedicalInstructions)
}

// fallbackText 空白或 N/A 视为没有
func fallbackText(values ...string) string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" && !strings.EqualFold(v, "N/A") {
			return v
		}
	}
	return "Néant"
}
