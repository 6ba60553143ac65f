package strategy

import (
	"context"
	"fmt"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/service/template"
	"gitee.com/flycash/osh-notification/internal/service/visibility"
)

// RequestedStrategy 员工提交预约申请
type RequestedStrategy struct {
	base
}

func NewRequestedStrategy(cfg Config, catalog template.Catalog) *RequestedStrategy {
	return &RequestedStrategy{base: newBase(cfg, catalog)}
}

func (s *RequestedStrategy) Descriptor() Descriptor {
	return Descriptor{Scenario: domain.ScenarioAppointmentRequested}
}

func (s *RequestedStrategy) Compose(ctx context.Context, req Request) domain.NotificationContent {
	appt, viewer := req.Appointment, req.Recipient
	requested := formatTime(appt.RequestedDate)
	typeText := appointmentTypeLabel(appt)
	name, email := employeeName(appt), employeeEmail(appt)

	// 员工本人只收到站内信回执
	if visibility.IsEmployeeRecipient(viewer, appt) {
		msg := fmt.Sprintf("Votre demande de rendez-vous a été envoyée au service médical – Date souhaitée : %s – Statut : En attente.", requested)
		if appt.Obligatory {
			msg = fmt.Sprintf("Une visite médicale obligatoire (%s) a été programmée pour vous – Statut : En attente.", typeText)
		}
		c := s.newContent(req, "Demande envoyée", appendExtra(msg, req.ExtraMessage), actionView)
		c.SkipEmail = true
		return c
	}

	hidden := visibility.ShouldHideEmailCta(viewer, appt)
	var msg string
	switch {
	case hidden && appt.Obligatory:
		msg = fmt.Sprintf("Une visite médicale obligatoire (%s) a été créée pour l'employé %s – %s – Statut : En attente.", typeText, name, email)
	case hidden:
		msg = fmt.Sprintf("Le service médical a reçu une demande de rendez-vous pour l'employé %s – %s – Date souhaitée : %s – Statut : En attente.", name, email, requested)
	case appt.Obligatory:
		msg = fmt.Sprintf("RH a initié une visite médicale obligatoire (%s) pour %s – %s – Statut : En attente.", typeText, name, email)
	default:
		msg = fmt.Sprintf("Nouvelle demande de rendez-vous médical – %s – %s – Date souhaitée : %s", name, email, requested)
		if visibility.CanSeeMotif(viewer, appt) {
			msg += " – Motif : " + fallbackText(appt.Motif, appt.Reason)
		}
		if visibility.CanSeeNotes(viewer, appt) {
			msg += " – Notes : " + fallbackText(appt.Notes)
		}
		msg += " – Statut : En attente."
	}
	c := s.newContent(req, "Nouvelle demande de rendez-vous", appendExtra(msg, req.ExtraMessage), actionView)

	// 邮件只发给医疗团队、RH 和经理
	if !hidden && !visibility.IsMedicalStaff(viewer) {
		c.SkipEmail = true
		return c
	}
	if appt.Obligatory {
		c.EmailSubject = fmt.Sprintf("Visite médicale obligatoire (%s) – %s (%s)", typeText, name, email)
	} else {
		c.EmailSubject = fmt.Sprintf("Nouvelle demande de rendez-vous (%s) – %s (%s)", typeText, name, email)
	}
	if hidden {
		c.EmailTemplate = s.resolveTemplate(ctx, "appointment-requested-rh-template")
		return c
	}
	c.EmailTemplate = s.resolveTemplate(ctx, "appointment-requested-template")
	c.CTA1URL = s.actionLink(appt, actionView)
	c.CTA1Label = "Confirmer ou proposer un créneau"
	if appt.Obligatory || appt.Type == domain.AppointmentTypePreRecruitment {
		c.CTA1Label = "Proposer un créneau"
	}
	s.withCertificate(&c, appt)
	return c
}
