package domain

import "time"

// AppointmentStatus 预约状态
type AppointmentStatus string

const (
	AppointmentStatusRequestedEmployee     AppointmentStatus = "REQUESTED_EMPLOYEE"       // 员工发起申请
	AppointmentStatusProposedMedecin       AppointmentStatus = "PROPOSED_MEDECIN"         // 医生提议时间
	AppointmentStatusPlannedByMedicalStaff AppointmentStatus = "PLANNED_BY_MEDICAL_STAFF" // 医疗团队排期
	AppointmentStatusConfirmed             AppointmentStatus = "CONFIRMED"                // 已确认
	AppointmentStatusCompleted             AppointmentStatus = "COMPLETED"                // 已完成
	AppointmentStatusCancelled             AppointmentStatus = "CANCELLED"                // 已取消
	AppointmentStatusObligatory            AppointmentStatus = "OBLIGATORY"               // 强制体检
)

// AppointmentType 预约类型
type AppointmentType string

const (
	AppointmentTypeSpontaneous              AppointmentType = "SPONTANEOUS"
	AppointmentTypePeriodic                 AppointmentType = "PERIODIC"
	AppointmentTypePreRecruitment           AppointmentType = "PRE_RECRUITMENT"
	AppointmentTypeReturnToWork             AppointmentType = "RETURN_TO_WORK"
	AppointmentTypeSurveillanceParticuliere AppointmentType = "SURVEILLANCE_PARTICULIERE"
	AppointmentTypeMedicalCall              AppointmentType = "MEDICAL_CALL"
	AppointmentTypeOther                    AppointmentType = "OTHER"
)

// VisitMode 就诊方式，空值表示未指定
type VisitMode string

const (
	VisitModeRemote   VisitMode = "REMOTE"
	VisitModeInPerson VisitMode = "IN_PERSON"
)

// Appointment 预约快照，由调用方加载完成后传入，核心逻辑只读不写
type Appointment struct {
	ID       int64 // 0 表示尚未持久化
	Employee *Employee
	Status   AppointmentStatus
	Type     AppointmentType

	VisitMode VisitMode

	// 候选时间，零值表示不存在
	RequestedDate time.Time
	ProposedDate  time.Time
	ScheduledTime time.Time

	Motif               string
	Reason              string
	Notes               string
	MedicalInstructions string
	MedicalServicePhone string
	CancellationReason  string

	Obligatory bool

	CreatedByID int64
	UpdatedByID int64
}

// DisplayTime 按 scheduled > proposed > requested 的优先级返回展示时间
func (a Appointment) DisplayTime() (time.Time, bool) {
	switch {
	case !a.ScheduledTime.IsZero():
		return a.ScheduledTime, true
	case !a.ProposedDate.IsZero():
		return a.ProposedDate, true
	case !a.RequestedDate.IsZero():
		return a.RequestedDate, true
	default:
		return time.Time{}, false
	}
}

// EmployeeUser 返回预约员工对应的用户，缺失时返回 nil
func (a Appointment) EmployeeUser() *User {
	if a.Employee == nil {
		return nil
	}
	return a.Employee.User
}

// Employee 员工档案，manager1 为 N+1，manager2 为 N+2
type Employee struct {
	User      *User
	FirstName string
	LastName  string
	Manager1  *Employee
	Manager2  *Employee
}

// ManagerUser 返回经理对应的用户，任何一环缺失都返回 nil
func (e *Employee) ManagerUser(level int) *User {
	if e == nil {
		return nil
	}
	var m *Employee
	switch level {
	case 1:
		m = e.Manager1
	case 2:
		m = e.Manager2
	}
	if m == nil {
		return nil
	}
	return m.User
}
