// Package visibility 决定某个查看者能看到预约的哪些信息。
// 所有判断都是纯函数，数据缺失时一律返回 false，不会把"不知道"当成"有权限"。
package visibility

import "gitee.com/flycash/osh-notification/internal/domain"

// IsRh 查看者拥有 RH 角色
func IsRh(viewer *domain.User) bool {
	return viewer.HasRole(domain.RoleRH)
}

// IsMedicalStaff 查看者是护士或医生
func IsMedicalStaff(viewer *domain.User) bool {
	return viewer.HasRole(domain.RoleNurse, domain.RoleDoctor)
}

// IsManagerForAppointment 查看者是预约员工的 N+1 或 N+2
func IsManagerForAppointment(viewer *domain.User, appt *domain.Appointment) bool {
	if viewer == nil || appt == nil || appt.Employee == nil {
		return false
	}
	return viewer.SameIdentity(appt.Employee.ManagerUser(1)) ||
		viewer.SameIdentity(appt.Employee.ManagerUser(2))
}

// IsEmployeeRecipient 查看者就是预约员工本人
func IsEmployeeRecipient(viewer *domain.User, appt *domain.Appointment) bool {
	if viewer == nil || appt == nil {
		return false
	}
	return viewer.SameIdentity(appt.EmployeeUser())
}

// ShouldHideEmailCta RH 和经理无法处理预约，邮件里不放操作按钮
func ShouldHideEmailCta(viewer *domain.User, appt *domain.Appointment) bool {
	if viewer == nil {
		return true
	}
	return IsRh(viewer) || IsManagerForAppointment(viewer, appt)
}

// CanSeeMotif 就诊原因对 RH 和经理保密，查看者或预约缺失时不可见
func CanSeeMotif(viewer *domain.User, appt *domain.Appointment) bool {
	if viewer == nil || appt == nil {
		return false
	}
	return !IsRh(viewer) && !IsManagerForAppointment(viewer, appt)
}

// CanSeeNotes 目前与 CanSeeMotif 规则相同
func CanSeeNotes(viewer *domain.User, appt *domain.Appointment) bool {
	if viewer == nil || appt == nil {
		return false
	}
	return !IsRh(viewer) && !IsManagerForAppointment(viewer, appt)
}

// CanSeeCancellationReason 只有员工本人和医疗团队能看到取消原因
func CanSeeCancellationReason(viewer *domain.User, appt *domain.Appointment) bool {
	return IsEmployeeRecipient(viewer, appt) || IsMedicalStaff(viewer)
}
