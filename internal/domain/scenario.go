package domain

// Scenario 预约流程中的标准通知场景
type Scenario string

const (
	ScenarioAppointmentRequested            Scenario = "APPOINTMENT_REQUESTED"               // 员工发起预约
	ScenarioAppointmentSlotProposed         Scenario = "APPOINTMENT_SLOT_PROPOSED"           // 医疗团队提议新时段
	ScenarioAppointmentConfirmed            Scenario = "APPOINTMENT_CONFIRMED"               // 预约确认（医疗团队或员工）
	ScenarioAppointmentCancelled            Scenario = "APPOINTMENT_CANCELLED"               // 员工取消预约
	ScenarioMedicalVisitPlanned             Scenario = "MEDICAL_VISIT_PLANNED"               // 医疗团队排期体检
	ScenarioMedicalVisitConfirmedByEmployee Scenario = "MEDICAL_VISIT_CONFIRMED_BY_EMPLOYEE" // 员工确认体检
	ScenarioMedicalVisitCancelled           Scenario = "MEDICAL_VISIT_CANCELLED"             // 员工取消体检
)

// Scenarios 返回全部标准场景，顺序固定
func Scenarios() []Scenario {
	return []Scenario{
		ScenarioAppointmentRequested,
		ScenarioAppointmentSlotProposed,
		ScenarioAppointmentConfirmed,
		ScenarioAppointmentCancelled,
		ScenarioMedicalVisitPlanned,
		ScenarioMedicalVisitConfirmedByEmployee,
		ScenarioMedicalVisitCancelled,
	}
}

func (s Scenario) String() string {
	return string(s)
}

// IsValid 是否为标准场景
func (s Scenario) IsValid() bool {
	for _, v := range Scenarios() {
		if v == s {
			return true
		}
	}
	return false
}

// Actor 触发场景的一方，零值表示未知，由调用上下文决定
type Actor string

const (
	ActorUnknown      Actor = ""
	ActorEmployee     Actor = "EMPLOYEE"
	ActorMedicalStaff Actor = "MEDICAL_STAFF"
	ActorRH           Actor = "RH"
	ActorSystem       Actor = "SYSTEM"
)

func (a Actor) String() string {
	if a == ActorUnknown {
		return "UNKNOWN"
	}
	return string(a)
}

// IsKnown 是否已确定触发方
func (a Actor) IsKnown() bool {
	return a != ActorUnknown
}
