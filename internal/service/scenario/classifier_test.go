package scenario

import (
	"testing"

	"gitee.com/flycash/osh-notification/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  string
		want domain.Scenario
	}{
		{name: "历史写法 CREATION", raw: "CREATION", want: domain.ScenarioAppointmentRequested},
		{name: "大小写和空白", raw: "  creation ", want: domain.ScenarioAppointmentRequested},
		{name: "标准名 requested", raw: "APPOINTMENT_REQUESTED", want: domain.ScenarioAppointmentRequested},
		{name: "标准名 slot proposed", raw: "appointment_slot_proposed", want: domain.ScenarioAppointmentSlotProposed},
		{name: "标准名 cancelled", raw: "APPOINTMENT_CANCELLED", want: domain.ScenarioAppointmentCancelled},
		{name: "标准名 planned", raw: "MEDICAL_VISIT_PLANNED", want: domain.ScenarioMedicalVisitPlanned},
		{name: "标准名 confirmed by employee", raw: "MEDICAL_VISIT_CONFIRMED_BY_EMPLOYEE", want: domain.ScenarioMedicalVisitConfirmedByEmployee},
		{name: "标准名 visit cancelled", raw: "MEDICAL_VISIT_CANCELLED", want: domain.ScenarioMedicalVisitCancelled},
		{name: "无法识别", raw: "FOOBAR", want: domain.ScenarioAppointmentConfirmed},
		{name: "旧状态更新", raw: "STATUS_UPDATE", want: domain.ScenarioAppointmentConfirmed},
		{name: "旧强制体检", raw: "OBLIGATORY", want: domain.ScenarioAppointmentConfirmed},
		{name: "空串", raw: "", want: domain.ScenarioAppointmentConfirmed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Classify(tc.raw))
		})
	}
}

func TestClassifyEveryCanonicalNameRoundTrips(t *testing.T) {
	t.Parallel()
	for _, s := range domain.Scenarios() {
		assert.Equal(t, s, Classify(s.String()))
	}
}

func TestExtractActor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  string
		want domain.Actor
	}{
		{name: "空串", raw: "", want: domain.ActorUnknown},
		{name: "只有空白", raw: "   ", want: domain.ActorUnknown},
		{name: "体检排期", raw: "MEDICAL_VISIT_PLANNED", want: domain.ActorMedicalStaff},
		{name: "员工确认", raw: "X_BY_EMPLOYEE", want: domain.ActorEmployee},
		{name: "接受提议", raw: "proposal_accepted", want: domain.ActorEmployee},
		{name: "创建", raw: "CREATION", want: domain.ActorSystem},
		{name: "RH 后缀", raw: "CONFIRMED_RH", want: domain.ActorRH},
		{name: "RH 前缀", raw: "RH_OBLIGATORY", want: domain.ActorRH},
		{name: "医疗团队", raw: "CONFIRMED_BY_MEDICAL_STAFF", want: domain.ActorMedicalStaff},
		{name: "强制", raw: "OBLIGATORY", want: domain.ActorMedicalStaff},
		{name: "提议时段", raw: "APPOINTMENT_SLOT_PROPOSED", want: domain.ActorMedicalStaff},
		// 员工规则优先级最高
		{name: "员工优先于医疗团队", raw: "MEDICAL_VISIT_CONFIRMED_BY_EMPLOYEE", want: domain.ActorEmployee},
		{name: "无法推断", raw: "APPOINTMENT_CONFIRMED", want: domain.ActorUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExtractActor(tc.raw))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	s, a := Resolve("CREATION", domain.ActorUnknown)
	assert.Equal(t, domain.ScenarioAppointmentRequested, s)
	assert.Equal(t, domain.ActorSystem, a)

	s, a = Resolve("APPOINTMENT_CONFIRMED", domain.ActorEmployee)
	assert.Equal(t, domain.ScenarioAppointmentConfirmed, s)
	assert.Equal(t, domain.ActorEmployee, a)

	s, a = Resolve("MEDICAL_VISIT_PLANNED", domain.ActorRH)
	assert.Equal(t, domain.ScenarioMedicalVisitPlanned, s)
	assert.Equal(t, domain.ActorRH, a)
}

func TestParseActor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.ActorEmployee, ParseActor(" employee "))
	assert.Equal(t, domain.ActorMedicalStaff, ParseActor("MEDICAL_STAFF"))
	assert.Equal(t, domain.ActorRH, ParseActor("rh"))
	assert.Equal(t, domain.ActorSystem, ParseActor("SYSTEM"))
	assert.Equal(t, domain.ActorUnknown, ParseActor(""))
	assert.Equal(t, domain.ActorUnknown, ParseActor("UNKNOWN"))
	assert.Equal(t, domain.ActorUnknown, ParseActor("NURSE"))
}
