package strategy

import (
	"context"
	"testing"
	"time"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/service/template"
	"github.com/stretchr/testify/assert"
)

func TestActionLink(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		baseURL string
		appt    *domain.Appointment
		action  string
		want    string
	}{
		{name: "预约为空", baseURL: "http://app/", appt: nil, action: actionView, want: "http://app/"},
		{name: "没有 ID 原样返回", baseURL: "http://app/", appt: &domain.Appointment{}, action: actionView, want: "http://app/"},
		{name: "去掉末尾斜杠", baseURL: "http://app/", appt: &domain.Appointment{ID: 7}, action: actionConfirm, want: "http://app/appointment_action?id=7&action=confirm"},
		{name: "没有动作", baseURL: "http://app", appt: &domain.Appointment{ID: 7}, action: " ", want: "http://app/appointment_action?id=7"},
		{name: "默认地址", appt: &domain.Appointment{ID: 1}, action: actionView, want: "http://localhost:3000/appointment_action?id=1&action=view"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b := newBase(Config{FrontendBaseURL: tc.baseURL}, template.NewStaticCatalog())
			assert.Equal(t, tc.want, b.actionLink(tc.appt, tc.action))
		})
	}
}

func TestEnrichSubject(t *testing.T) {
	t.Parallel()

	requested := time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC)
	scheduled := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, "Sujet", enrichSubject("Sujet", nil))
	assert.Equal(t, "Sujet", enrichSubject("Sujet", &domain.Appointment{}))
	assert.Equal(t, "Sujet — 04/03/2025 09:30", enrichSubject("Sujet", &domain.Appointment{RequestedDate: requested}))
	assert.Equal(t, "Sujet — 10/03/2025 14:00",
		enrichSubject("Sujet", &domain.Appointment{RequestedDate: requested, ScheduledTime: scheduled}))
}

func TestEmployeeName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		appt *domain.Appointment
		want string
	}{
		{name: "预约为空", want: "Collaborateur"},
		{name: "员工为空", appt: &domain.Appointment{}, want: "Collaborateur"},
		{
			name: "姓名齐全",
			appt: &domain.Appointment{Employee: &domain.Employee{FirstName: "Jean", LastName: "Dupont", User: &domain.User{Email: "j@corp.fr"}}},
			want: "Jean Dupont",
		},
		{
			name: "缺少姓使用邮箱",
			appt: &domain.Appointment{Employee: &domain.Employee{FirstName: "Jean", User: &domain.User{Email: "j@corp.fr"}}},
			want: "j@corp.fr",
		},
		{
			name: "都没有",
			appt: &domain.Appointment{Employee: &domain.Employee{FirstName: "Jean", User: &domain.User{}}},
			want: "Collaborateur",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, employeeName(tc.appt))
		})
	}
}

func TestIsEmployeeInitiated(t *testing.T) {
	t.Parallel()

	employee := &domain.Employee{User: &domain.User{ID: 10}}
	testCases := []struct {
		name string
		appt domain.Appointment
		want bool
	}{
		{name: "自发", appt: domain.Appointment{Type: domain.AppointmentTypeSpontaneous}, want: true},
		{name: "定期", appt: domain.Appointment{Type: domain.AppointmentTypePeriodic, Employee: employee, CreatedByID: 10}},
		{name: "医生召集", appt: domain.Appointment{Type: domain.AppointmentTypeMedicalCall, Employee: employee, CreatedByID: 10}},
		{name: "复工由员工创建", appt: domain.Appointment{Type: domain.AppointmentTypeReturnToWork, Employee: employee, CreatedByID: 10}, want: true},
		{name: "复工由他人创建", appt: domain.Appointment{Type: domain.AppointmentTypeReturnToWork, Employee: employee, CreatedByID: 50}},
		{name: "创建人缺失", appt: domain.Appointment{Type: domain.AppointmentTypeOther, Employee: &domain.Employee{User: &domain.User{}}}},
		{name: "类型为空", appt: domain.Appointment{Employee: employee, CreatedByID: 10}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, isEmployeeInitiated(&tc.appt))
		})
	}
}

type errCatalog struct{}

func (errCatalog) Exists(context.Context, string) (bool, error) {
	return false, assert.AnError
}

func TestResolveTemplate(t *testing.T) {
	t.Parallel()

	b := newBase(Config{}, template.NewStaticCatalog("appointment-proposal-template"))
	assert.Equal(t, "appointment-proposal-template", b.resolveTemplate(context.Background(), "appointment-proposal-template"))
	assert.Equal(t, template.GenericTemplate, b.resolveTemplate(context.Background(), "missing-template"))

	b = newBase(Config{}, errCatalog{})
	assert.Equal(t, template.GenericTemplate, b.resolveTemplate(context.Background(), "appointment-proposal-template"))
}

func TestTextHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Néant", fallbackText("", " n/a ", "  "))
	assert.Equal(t, "lombalgie", fallbackText("N/A", "lombalgie"))
	assert.Equal(t, "msg", appendExtra("msg", "   "))
	assert.Equal(t, "msg – plus", appendExtra("msg", " plus "))
	assert.Equal(t, "msg", replaceWithExtra("msg", "\t"))
	assert.Equal(t, "autre", replaceWithExtra("msg", "autre"))
	assert.Equal(t, "Non spécifié", appointmentTypeLabel(&domain.Appointment{}))
	assert.Equal(t, "Autre", appointmentTypeLabel(&domain.Appointment{Type: "LEGACY"}))
	assert.Equal(t, "Reprise de travail", visitTypeLabel(&domain.Appointment{Type: domain.AppointmentTypeReturnToWork}))
	assert.Equal(t, "Jean Dupont (j@corp.fr)", employeeDisplay(&domain.Appointment{Employee: &domain.Employee{
		FirstName: "Jean", LastName: "Dupont", User: &domain.User{Email: "j@corp.fr"},
	}}))
}
