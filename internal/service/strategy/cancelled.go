package strategy

import (
	"context"
	"fmt"
	"strings"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/service/template"
	"gitee.com/flycash/osh-notification/internal/service/visibility"
)

// CancelledStrategy 员工取消预约
type CancelledStrategy struct {
	base
}

func NewCancelledStrategy(cfg Config, catalog template.Catalog) *CancelledStrategy {
	return &CancelledStrategy{base: newBase(cfg, catalog)}
}

func (s *CancelledStrategy) Descriptor() Descriptor {
	return Descriptor{Scenario: domain.ScenarioAppointmentCancelled}
}

// Compose 附加说明在该场景下不展示
func (s *CancelledStrategy) Compose(ctx context.Context, req Request) domain.NotificationContent {
	appt, viewer := req.Appointment, req.Recipient
	name, email := employeeName(appt), employeeEmail(appt)
	typeText := appointmentTypeLabel(appt)
	initiated := isEmployeeInitiated(appt)
	mode := modeLabel(appt, "Non spécifié")
	when, _ := appt.DisplayTime()
	whenText := formatTime(when)
	hidden := visibility.ShouldHideEmailCta(viewer, appt)

	var msg string
	switch {
	case visibility.IsEmployeeRecipient(viewer, appt) && initiated:
		msg = fmt.Sprintf("Vous avez annulé votre demande de rendez-vous – Date demandée : %s – Mode : %s – Statut : Annulé.", whenText, mode)
	case visibility.IsEmployeeRecipient(viewer, appt):
		msg = fmt.Sprintf("Vous avez annulé le rendez-vous proposé par le service médical – Date proposée : %s – Mode : %s – Statut : Annulé.", whenText, mode)
	case hidden && initiated:
		msg = fmt.Sprintf("L'employé %s – %s a annulé sa demande de rendez-vous – Date demandée : %s – Mode : %s – Statut : Annulé.", name, email, whenText, mode)
	case hidden:
		msg = fmt.Sprintf("L'employé %s – %s a annulé le rendez-vous proposé par le service médical – Date proposée : %s – Mode : %s – Statut : Annulé.", name, email, whenText, mode)
	case initiated:
		msg = fmt.Sprintf("L'employé %s – %s a annulé sa demande de rendez-vous – Statut : Annulé.", name, email)
	default:
		msg = fmt.Sprintf("L'employé %s – %s a annulé le rendez-vous que vous aviez proposé – Statut : Annulé.", name, email)
	}
	if reason := strings.TrimSpace(appt.CancellationReason); reason != "" && visibility.CanSeeCancellationReason(viewer, appt) {
		msg += " – Motif d'annulation : " + reason
	}
	c := s.newContent(req, "Rendez-vous annulé", msg, actionView)
	c.EmailSubject = fmt.Sprintf("Annulation (%s) – %s (%s)", typeText, name, email)
	if hidden {
		c.EmailTemplate = s.resolveTemplate(ctx, "appointment-cancellation-rh-template")
		return c
	}
	c.EmailTemplate = s.resolveTemplate(ctx, "appointment-cancellation-medical-template")
	c.CTA1URL = s.actionLink(appt, actionView)
	c.CTA1Label = "Voir les détails"
	return c
}
