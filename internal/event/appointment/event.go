package appointment

import (
	"time"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/service/scenario"
	"github.com/ecodeclub/ekit/slice"
)

const EventName = "appointment_workflow_events"

// Event 预约服务发布的流程事件，预约和接收者都是发布时的快照
type Event struct {
	// EventID 用于重复投递时去重，为空时不去重
	EventID      string      `json:"eventId"`
	Scenario     string      `json:"scenario"`
	Actor        string      `json:"actor"`
	ExtraMessage string      `json:"extraMessage"`
	Appointment  Appointment `json:"appointment"`
	Recipients   []User      `json:"recipients"`
}

type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

type Employee struct {
	User      *User     `json:"user"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Manager1  *Employee `json:"manager1"`
	Manager2  *Employee `json:"manager2"`
}

type Appointment struct {
	ID        int64     `json:"id"`
	Employee  *Employee `json:"employee"`
	Status    string    `json:"status"`
	Type      string    `json:"type"`
	VisitMode string    `json:"visitMode"`

	RequestedDate time.Time `json:"requestedDate"`
	ProposedDate  time.Time `json:"proposedDate"`
	ScheduledTime time.Time `json:"scheduledTime"`

	Motif               string `json:"motif"`
	Reason              string `json:"reason"`
	Notes               string `json:"notes"`
	MedicalInstructions string `json:"medicalInstructions"`
	MedicalServicePhone string `json:"medicalServicePhone"`
	CancellationReason  string `json:"cancellationReason"`

	Obligatory bool `json:"obligatory"`

	CreatedByID int64 `json:"createdById"`
	UpdatedByID int64 `json:"updatedById"`
}

func (e Event) toDomain() domain.AppointmentEvent {
	appt := e.Appointment.toDomain()
	return domain.AppointmentEvent{
		Appointment: &appt,
		Recipients: slice.Map(e.Recipients, func(_ int, src User) *domain.User {
			return src.toDomain()
		}),
		Scenario:     e.Scenario,
		ExtraMessage: e.ExtraMessage,
		Actor:        scenario.ParseActor(e.Actor),
	}
}

func (u *User) toDomain() *domain.User {
	if u == nil {
		return nil
	}
	return &domain.User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Roles: slice.Map(u.Roles, func(_ int, src string) domain.RoleName {
			return domain.RoleName(src)
		}),
	}
}

func (e *Employee) toDomain() *domain.Employee {
	if e == nil {
		return nil
	}
	return &domain.Employee{
		User:      e.User.toDomain(),
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Manager1:  e.Manager1.toDomain(),
		Manager2:  e.Manager2.toDomain(),
	}
}

func (a Appointment) toDomain() domain.Appointment {
	return domain.Appointment{
		ID:                  a.ID,
		Employee:            a.Employee.toDomain(),
		Status:              domain.AppointmentStatus(a.Status),
		Type:                domain.AppointmentType(a.Type),
		VisitMode:           domain.VisitMode(a.VisitMode),
		RequestedDate:       a.RequestedDate,
		ProposedDate:        a.ProposedDate,
		ScheduledTime:       a.ScheduledTime,
		Motif:               a.Motif,
		Reason:              a.Reason,
		Notes:               a.Notes,
		MedicalInstructions: a.MedicalInstructions,
		MedicalServicePhone: a.MedicalServicePhone,
		CancellationReason:  a.CancellationReason,
		Obligatory:          a.Obligatory,
		CreatedByID:         a.CreatedByID,
		UpdatedByID:         a.UpdatedByID,
	}
}
