package strategy

import (
	"context"
	"fmt"
	"strings"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/service/template"
	"gitee.com/flycash/osh-notification/internal/service/visibility"
)

// visitOutcome 员工对排期体检的答复，确认和取消只在措辞上不同
type visitOutcome struct {
	base
	scenario domain.Scenario
	title    string
	verb     string // confirmé / annulé
	status   string // Confirmé / Annulé
	// templatePrefix 加上 -rh/-employee/-medical-template 得到模板名
	templatePrefix string
	certificate    bool
	showReason     bool
	// subject 根据是否隐藏按钮生成主题
	subject func(hidden bool, appt *domain.Appointment) string
}

func (s *visitOutcome) Descriptor() Descriptor {
	return Descriptor{
		Scenario:     s.scenario,
		ActorAware:   true,
		DefaultActor: domain.ActorEmployee,
	}
}

func (s *visitOutcome) Compose(ctx context.Context, req Request) domain.NotificationContent {
	appt, viewer := req.Appointment, req.Recipient
	typeText := appointmentTypeLabel(appt)
	mode := modeLabel(appt, "Présentiel")
	display := employeeDisplay(appt)
	when := s.when(appt)
	initiated := isEmployeeInitiated(appt)

	isEmployee := visibility.IsEmployeeRecipient(viewer, appt)
	hidden := visibility.ShouldHideEmailCta(viewer, appt)
	isMedical := !hidden && visibility.IsMedicalStaff(viewer)

	var msg string
	switch {
	case isEmployee:
		switch {
		case initiated:
			msg = fmt.Sprintf("Vous avez %s votre demande de visite médicale (%s) du %s – Modalité : %s", s.verb, typeText, when, mode)
		case appt.Obligatory:
			msg = fmt.Sprintf("Vous avez %s la visite médicale obligatoire (%s) proposée par le service médical le %s – Modalité : %s", s.verb, typeText, when, mode)
		default:
			msg = fmt.Sprintf("Vous avez %s la visite médicale (%s) proposée par le service médical le %s – Modalité : %s", s.verb, typeText, when, mode)
		}
		msg += instructionsSuffix(appt)
	case isMedical:
		switch {
		case initiated:
			msg = fmt.Sprintf("L'employé [%s] a %s sa demande de visite médicale (%s) du %s – Modalité : %s", display, s.verb, typeText, when, mode)
		case appt.Obligatory:
			msg = fmt.Sprintf("L'employé [%s] a %s la visite médicale obligatoire (%s) que vous aviez proposée le %s – Modalité : %s", display, s.verb, typeText, when, mode)
		default:
			msg = fmt.Sprintf("L'employé [%s] a %s la visite médicale (%s) que vous aviez proposée le %s – Modalité : %s", display, s.verb, typeText, when, mode)
		}
		msg += instructionsSuffix(appt)
	default:
		switch {
		case initiated:
			msg = fmt.Sprintf("L'employé [%s] a %s sa demande de visite médicale (%s) le %s – Modalité : %s", display, s.verb, typeText, when, mode)
		case appt.Obligatory:
			msg = fmt.Sprintf("L'employé [%s] a %s la visite médicale obligatoire (%s) proposée par le service médical le %s – Modalité : %s", display, s.verb, typeText, when, mode)
		default:
			msg = fmt.Sprintf("L'employé [%s] a %s la visite médicale (%s) proposée par le service médical le %s – Modalité : %s", display, s.verb, typeText, when, mode)
		}
	}
	msg += " – Statut : " + s.status + "."
	if reason := strings.TrimSpace(appt.CancellationReason); s.showReason && reason != "" &&
		visibility.CanSeeCancellationReason(viewer, appt) {
		msg += " – Motif d'annulation : " + reason
	}

	c := s.newContent(req, s.title, appendExtra(msg, req.ExtraMessage), actionView)
	c.Extra["visitTypeText"] = typeText
	c.Extra["visitModeText"] = mode
	c.Extra["employeeEmail"] = employeeEmail(appt)
	c.Extra["appointmentDateTime"] = when
	c.EmailSubject = s.subject(hidden, appt)

	switch {
	case hidden:
		c.EmailTemplate = s.resolveTemplate(ctx, s.templatePrefix+"-rh-template")
		return c
	case isEmployee:
		c.EmailTemplate = s.resolveTemplate(ctx, s.templatePrefix+"-employee-template")
	default:
		c.EmailTemplate = s.resolveTemplate(ctx, s.templatePrefix+"-medical-template")
	}
	c.CTA1URL = s.actionLink(appt, actionView)
	c.CTA1Label = "Voir les détails"
	if s.certificate {
		s.withCertificate(&c, appt)
	}
	return c
}

func (s *visitOutcome) when(appt *domain.Appointment) string {
	if s.scenario == domain.ScenarioMedicalVisitConfirmedByEmployee {
		return formatTime(appt.ScheduledTime)
	}
	t, _ := appt.DisplayTime()
	return formatTime(t)
}

// NewConfirmedByEmployeeStrategy 员工确认排期的体检
func NewConfirmedByEmployeeStrategy(cfg Config, catalog template.Catalog) Strategy {
	return &visitOutcome{
		base:           newBase(cfg, catalog),
		scenario:       domain.ScenarioMedicalVisitConfirmedByEmployee,
		title:          "Visite médicale confirmée",
		verb:           "confirmé",
		status:         "Confirmé",
		templatePrefix: "medical-visit-confirmed",
		certificate:    true,
		subject: func(hidden bool, appt *domain.Appointment) string {
			display := employeeDisplay(appt)
			switch {
			case hidden && appt.Obligatory:
				return fmt.Sprintf("Rendez-vous confirmé – Visite médicale obligatoire (%s) – %s", appointmentTypeLabel(appt), display)
			case hidden:
				return "Rendez-vous confirmé – " + display
			case appt.Obligatory:
				return fmt.Sprintf("Confirmation – Visite médicale obligatoire (%s) – %s", appointmentTypeLabel(appt), display)
			default:
				return "Confirmation de visite médicale – " + display
			}
		},
	}
}

// NewVisitCancelledStrategy 员工取消排期的体检
func NewVisitCancelledStrategy(cfg Config, catalog template.Catalog) Strategy {
	return &visitOutcome{
		base:           newBase(cfg, catalog),
		scenario:       domain.ScenarioMedicalVisitCancelled,
		title:          "Visite médicale annulée",
		verb:           "annulé",
		status:         "Annulé",
		templatePrefix: "medical-visit-cancelled",
		showReason:     true,
		subject: func(_ bool, appt *domain.Appointment) string {
			display := employeeDisplay(appt)
			if appt.Obligatory {
				return fmt.Sprintf("Annulation – Visite médicale obligatoire (%s) – %s", appointmentTypeLabel(appt), display)
			}
			return "Annulation de visite médicale – " + display
		},
	}
}
