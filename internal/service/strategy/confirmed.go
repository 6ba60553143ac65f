package strategy

import (
	"context"
	"fmt"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/service/template"
	"gitee.com/flycash/osh-notification/internal/service/visibility"
)

// ConfirmedStrategy 预约被确认，文案取决于是谁确认的
type ConfirmedStrategy struct {
	base
}

func NewConfirmedStrategy(cfg Config, catalog template.Catalog) *ConfirmedStrategy {
	return &ConfirmedStrategy{base: newBase(cfg, catalog)}
}

func (s *ConfirmedStrategy) Descriptor() Descriptor {
	return Descriptor{
		Scenario:     domain.ScenarioAppointmentConfirmed,
		ActorAware:   true,
		DefaultActor: domain.ActorMedicalStaff,
	}
}

func (s *ConfirmedStrategy) Compose(ctx context.Context, req Request) domain.NotificationContent {
	appt, viewer := req.Appointment, req.Recipient
	hidden := visibility.ShouldHideEmailCta(viewer, appt)

	msg := s.message(req)
	c := s.newContent(req, "Rendez-vous confirmé", replaceWithExtra(msg, req.ExtraMessage), actionView)

	if req.Actor == domain.ActorEmployee {
		c.EmailSubject = "Confirmation du créneau proposé — " + employeeName(appt)
	} else {
		c.EmailSubject = enrichSubject("Confirmation de votre rendez-vous médical", appt)
	}
	switch {
	case hidden:
		c.EmailTemplate = s.resolveTemplate(ctx, "appointment-confirmation-rh-template")
		return c
	case visibility.IsMedicalStaff(viewer):
		c.EmailTemplate = s.resolveTemplate(ctx, "appointment-confirmation-medical-template")
	default:
		c.EmailTemplate = s.resolveTemplate(ctx, "appointment-confirmation-template")
	}
	c.CTA1URL = s.actionLink(appt, actionView)
	c.CTA1Label = "Voir le rendez-vous"
	s.withCertificate(&c, appt)
	return c
}

func (s *ConfirmedStrategy) message(req Request) string {
	appt, viewer := req.Appointment, req.Recipient
	name, email := employeeName(appt), employeeEmail(appt)
	initiated := isEmployeeInitiated(appt)
	mode := modeLabel(appt, "Présentiel ou à distance")
	when := appt.ScheduledTime
	if when.IsZero() {
		when = appt.ProposedDate
	}
	whenText := formatTime(when)

	isEmployee := visibility.IsEmployeeRecipient(viewer, appt)
	hidden := visibility.ShouldHideEmailCta(viewer, appt)

	switch req.Actor {
	case domain.ActorEmployee:
		switch {
		case isEmployee && initiated:
			return fmt.Sprintf("Vous avez confirmé le créneau proposé pour votre demande de rendez-vous – Date confirmée : %s – Mode : %s – Statut : Confirmé.", whenText, mode)
		case isEmployee:
			return fmt.Sprintf("Vous avez confirmé le créneau proposé par le service médical – Date confirmée : %s – Mode : %s – Statut : Confirmé.", whenText, mode)
		case hidden && initiated:
			return fmt.Sprintf("L'employé %s – %s a confirmé le créneau proposé pour sa demande de rendez-vous – Date confirmée : %s – Mode : %s – Statut : Confirmé.", name, email, whenText, mode)
		case hidden:
			return fmt.Sprintf("L'employé %s – %s a confirmé le rendez-vous proposé par le service médical – Date confirmée : %s – Mode : %s – Statut : Confirmé.", name, email, whenText, mode)
		case initiated:
			return fmt.Sprintf("L'employé %s – %s a confirmé le créneau proposé pour sa demande – Date confirmée : %s – Mode : %s – Statut : Confirmé.", name, email, whenText, mode)
		default:
			return fmt.Sprintf("L'employé %s – %s a confirmé le rendez-vous que vous aviez proposé – Date confirmée : %s – Mode : %s – Statut : Confirmé.", name, email, whenText, mode)
		}
	case domain.ActorMedicalStaff:
		switch {
		case isEmployee:
			date, clock := "", ""
			if !when.IsZero() {
				date, clock = when.Format("02/01/2006"), when.Format("15:04")
			}
			if initiated {
				return fmt.Sprintf("Votre demande de rendez-vous a été confirmée par le service médical – Date : %s à %s – Mode : %s – Statut : Confirmé.", date, clock, mode)
			}
			return fmt.Sprintf("La visite médicale planifiée a été confirmée par le service médical – Date : %s à %s – Mode : %s – Statut : Confirmé.", date, clock, mode)
		case !hidden && visibility.IsMedicalStaff(viewer) && actedBy(viewer, appt.UpdatedByID):
			if initiated {
				return fmt.Sprintf("Vous avez confirmé la demande de rendez-vous de %s – %s – Date validée : %s – Mode : %s – Statut : Confirmé.", name, email, whenText, mode)
			}
			return fmt.Sprintf("Vous avez confirmé la visite planifiée pour %s – %s – Date validée : %s – Mode : %s – Statut : Confirmé.", name, email, whenText, mode)
		case initiated:
			return fmt.Sprintf("Le service médical a confirmé la demande de rendez-vous de l'employé %s – %s – Date validée : %s – Mode : %s – Statut : Confirmé.", name, email, whenText, mode)
		default:
			return fmt.Sprintf("Le service médical a confirmé la visite planifiée pour l'employé %s – %s – Date validée : %s – Mode : %s – Statut : Confirmé.", name, email, whenText, mode)
		}
	case domain.ActorRH:
		if initiated {
			return fmt.Sprintf("Le service médical a confirmé la demande de rendez-vous pour l'employé %s – %s – Date validée : %s – Mode : %s – Statut : Confirmé.", name, email, whenText, mode)
		}
		return fmt.Sprintf("Le service médical a confirmé la visite planifiée pour %s – %s – Date validée : %s – Mode : %s – Statut : Confirmé.", name, email, whenText, mode)
	default:
		if initiated {
			return fmt.Sprintf("Demande de rendez-vous confirmée pour %s le %s – Statut : Confirmé.", name, whenText)
		}
		return fmt.Sprintf("Visite planifiée confirmée pour %s le %s – Statut : Confirmé.", name, whenText)
	}
}
