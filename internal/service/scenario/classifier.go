// Package scenario 将调用方传入的场景字符串（可能是历史遗留写法）归一化为标准场景，
// 并从同一字符串中推断触发方。原始字符串只在这里解析，不向下游泄漏。
package scenario

import (
	"strings"

	"gitee.com/flycash/osh-notification/internal/domain"
)

// aliases 历史遗留的场景写法
var aliases = map[string]domain.Scenario{
	"CREATION": domain.ScenarioAppointmentRequested,
}

// Classify 归一化场景，无法识别时回退为 APPOINTMENT_CONFIRMED，不返回错误
func Classify(raw string) domain.Scenario {
	key := normalize(raw)
	if s, ok := aliases[key]; ok {
		return s
	}
	if s := domain.Scenario(key); s.IsValid() {
		return s
	}
	return domain.ScenarioAppointmentConfirmed
}

// actorRule 按顺序匹配，命中第一条即返回
type actorRule struct {
	actor    domain.Actor
	contains []string
}

var actorRules = []actorRule{
	{actor: domain.ActorEmployee, contains: []string{"_BY_EMPLOYEE", "PROPOSAL_ACCEPTED"}},
	{actor: domain.ActorRH, contains: []string{"_RH", "RH_"}},
	{actor: domain.ActorMedicalStaff, contains: []string{"MEDICAL_STAFF", "OBLIGATORY", "SLOT_PROPOSED", "MEDICAL_VISIT_PLANNED"}},
}

// ExtractActor 从场景字符串推断触发方，推断不出时返回 ActorUnknown
func ExtractActor(raw string) domain.Actor {
	key := normalize(raw)
	if key == "" {
		return domain.ActorUnknown
	}
	for _, rule := range actorRules {
		for _, sub := range rule.contains {
			if strings.Contains(key, sub) {
				return rule.actor
			}
		}
	}
	if key == "CREATION" {
		return domain.ActorSystem
	}
	return domain.ActorUnknown
}

// Resolve 同时得到场景和触发方，显式传入的触发方优先于推断结果
func Resolve(raw string, explicit domain.Actor) (domain.Scenario, domain.Actor) {
	actor := explicit
	if !actor.IsKnown() {
		actor = ExtractActor(raw)
	}
	return Classify(raw), actor
}

// ParseActor 解析显式传入的触发方名称，无法识别时返回 ActorUnknown
func ParseActor(raw string) domain.Actor {
	switch a := domain.Actor(normalize(raw)); a {
	case domain.ActorEmployee, domain.ActorMedicalStaff, domain.ActorRH, domain.ActorSystem:
		return a
	default:
		return domain.ActorUnknown
	}
}

func normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
