package domain

// AppointmentEvent 预约流程中的一次状态变化，由调用方加载好快照后触发
type AppointmentEvent struct {
	Appointment *Appointment
	Recipients  []*User
	// Scenario 原始场景字符串，可能是历史写法，空白视为缺失
	Scenario     string
	ExtraMessage string
	// Actor 显式指定的触发方，优先于从场景推断的结果
	Actor Actor
}
