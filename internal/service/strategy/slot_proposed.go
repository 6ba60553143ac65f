package strategy

import (
	"context"
	"fmt"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/service/template"
	"gitee.com/flycash/osh-notification/internal/service/visibility"
)

// SlotProposedStrategy 医疗团队提议新的时段
type SlotProposedStrategy struct {
	base
}

func NewSlotProposedStrategy(cfg Config, catalog template.Catalog) *SlotProposedStrategy {
	return &SlotProposedStrategy{base: newBase(cfg, catalog)}
}

func (s *SlotProposedStrategy) Descriptor() Descriptor {
	return Descriptor{
		Scenario:     domain.ScenarioAppointmentSlotProposed,
		ActorAware:   true,
		DefaultActor: domain.ActorMedicalStaff,
	}
}

func (s *SlotProposedStrategy) Compose(ctx context.Context, req Request) domain.NotificationContent {
	appt, viewer := req.Appointment, req.Recipient
	proposed := formatTime(appt.ProposedDate)
	typeText := appointmentTypeLabel(appt)
	name, email := employeeName(appt), employeeEmail(appt)
	mode := ""
	if m := modeLabel(appt, ""); m != "" {
		mode = " – Mode : " + m
	}

	isEmployee := visibility.IsEmployeeRecipient(viewer, appt)
	hidden := visibility.ShouldHideEmailCta(viewer, appt)
	isMedical := visibility.IsMedicalStaff(viewer)

	var msg string
	switch {
	case isEmployee && appt.Obligatory:
		msg = fmt.Sprintf("Le service médical vous propose un nouveau créneau (Obligatoire – %s) – %s%s – Statut : Créneau proposé.", typeText, proposed, mode)
	case isEmployee:
		msg = fmt.Sprintf("Le service médical vous propose un nouveau créneau – %s%s – Statut : Créneau proposé.", proposed, mode)
	case hidden && appt.Obligatory:
		msg = fmt.Sprintf("Le service médical a proposé un nouveau créneau (Obligatoire – %s) pour l'employé %s – %s – Nouvelle proposition : %s – Statut : Créneau proposé.", typeText, name, email, proposed)
	case hidden:
		msg = fmt.Sprintf("Le service médical a proposé un nouveau créneau pour l'employé %s – %s – Nouvelle proposition : %s – Statut : Créneau proposé.", name, email, proposed)
	case isMedical && actedBy(viewer, lastEditorID(appt)) && appt.Obligatory:
		msg = fmt.Sprintf("Vous avez proposé un nouveau créneau (Obligatoire – %s – Initiée par RH) pour %s – %s – Nouvelle proposition : %s – Statut : En attente de réponse.", typeText, name, email, proposed)
	case isMedical && actedBy(viewer, lastEditorID(appt)):
		msg = fmt.Sprintf("Vous avez proposé un nouveau créneau pour %s – %s – Nouvelle proposition : %s – Statut : En attente de réponse.", name, email, proposed)
	case isMedical && appt.Obligatory:
		msg = fmt.Sprintf("Le service médical a proposé un nouveau créneau (Obligatoire – %s – Initiée par RH) pour l'employé %s – %s – Nouvelle proposition : %s – Statut : Créneau proposé.", typeText, name, email, proposed)
	case appt.Obligatory:
		msg = fmt.Sprintf("Le service médical a proposé un nouveau créneau (Obligatoire – %s) pour l'employé %s – %s – Nouvelle proposition : %s – Statut : Créneau proposé.", typeText, name, email, proposed)
	default:
		msg = fmt.Sprintf("Le service médical a proposé un nouveau créneau pour l'employé %s – %s – Nouvelle proposition : %s – Statut : Créneau proposé.", name, email, proposed)
	}
	c := s.newContent(req, "Créneau proposé", replaceWithExtra(msg, req.ExtraMessage), actionConfirm)
	c.Extra["proposedDate"] = proposed

	// 医疗团队自己提议的时段不需要邮件
	if isMedical && !isEmployee {
		c.SkipEmail = true
		return c
	}
	if appt.Obligatory {
		c.EmailSubject = fmt.Sprintf("Nouveau créneau proposé – Visite médicale obligatoire (%s) – %s (%s)", typeText, name, email)
	} else {
		c.EmailSubject = fmt.Sprintf("Nouveau créneau proposé (%s) – %s (%s)", typeText, name, email)
	}
	if hidden {
		c.EmailTemplate = s.resolveTemplate(ctx, "appointment-proposal-rh-template")
		return c
	}
	c.EmailTemplate = s.resolveTemplate(ctx, "appointment-proposal-template")
	c.CTA1URL = s.actionLink(appt, actionConfirm)
	c.CTA1Label = "Confirmer le créneau"
	c.CTA2URL = s.actionLink(appt, actionCancel)
	c.CTA2Label = "Refuser la proposition"
	return c
}
