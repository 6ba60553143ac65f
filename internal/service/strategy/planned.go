package strategy

import (
	"context"
	"fmt"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/service/template"
	"gitee.com/flycash/osh-notification/internal/service/visibility"
)

// PlannedStrategy 医疗团队为员工排期体检
type PlannedStrategy struct {
	base
}

func NewPlannedStrategy(cfg Config, catalog template.Catalog) *PlannedStrategy {
	return &PlannedStrategy{base: newBase(cfg, catalog)}
}

func (s *PlannedStrategy) Descriptor() Descriptor {
	return Descriptor{
		Scenario:     domain.ScenarioMedicalVisitPlanned,
		ActorAware:   true,
		DefaultActor: domain.ActorMedicalStaff,
	}
}

func (s *PlannedStrategy) Compose(ctx context.Context, req Request) domain.NotificationContent {
	appt, viewer := req.Appointment, req.Recipient
	visitType := visitTypeLabel(appt)
	when := formatTime(appt.ScheduledTime)
	mode := modeLabel(appt, "Non spécifié")
	name, email := employeeName(appt), employeeEmail(appt)

	isEmployee := visibility.IsEmployeeRecipient(viewer, appt)
	hidden := visibility.ShouldHideEmailCta(viewer, appt)
	isMedical := !hidden && visibility.IsMedicalStaff(viewer)

	var msg string
	switch {
	case isEmployee:
		msg = fmt.Sprintf("Le service médical vous propose une visite médicale (%s) le %s – Modalité : %s", visitType, when, mode) +
			instructionsSuffix(appt) + " – Statut : En attente."
	case isMedical && actedBy(viewer, appt.CreatedByID):
		msg = fmt.Sprintf("Vous avez planifié une visite médicale (%s) pour [%s – %s] le %s – Modalité : %s", visitType, name, email, when, mode) +
			instructionsSuffix(appt) + " – Statut : En attente."
	case isMedical:
		msg = fmt.Sprintf("Le service médical a planifié une visite médicale (%s) pour [%s – %s] le %s – Modalité : %s", visitType, name, email, when, mode) +
			instructionsSuffix(appt) + " – Statut : En attente."
	default:
		msg = fmt.Sprintf("Le service médical a proposé une visite médicale (%s) pour [%s – %s] le %s – Modalité : %s – Statut : En attente.", visitType, name, email, when, mode)
	}
	c := s.newContent(req, "Proposition de visite médicale", appendExtra(msg, req.ExtraMessage), actionView)
	c.Extra["visitTypeText"] = visitType
	c.Extra["visitModeText"] = mode
	c.Extra["employeeEmail"] = email
	c.Extra["appointmentDateTime"] = when
	// 体检须知和医疗服务电话只给员工和医疗团队
	if isEmployee || isMedical {
		c.Extra["medicalInstructions"] = appt.MedicalInstructions
		c.Extra["medicalServicePhone"] = appt.MedicalServicePhone
	}

	c.EmailSubject = "Proposition de visite médicale – " + employeeDisplay(appt)
	switch {
	case hidden:
		c.EmailTemplate = s.resolveTemplate(ctx, "medical-visit-planned-rh-template")
		return c
	case isEmployee:
		c.EmailTemplate = s.resolveTemplate(ctx, "medical-visit-planned-employee-template")
		c.CTA1URL = s.actionLink(appt, actionConfirm)
		c.CTA1Label = "Répondre"
	default:
		c.EmailTemplate = s.resolveTemplate(ctx, "medical-visit-planned-medical-template")
		c.CTA1URL = s.actionLink(appt, actionView)
		c.CTA1Label = "Voir les détails"
	}
	s.withCertificate(&c, appt)
	return c
}
