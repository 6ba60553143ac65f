// Package template 回答"某个邮件模板是否存在"，模板的渲染由下游邮件服务负责
package template

import "context"

// GenericTemplate 找不到模板时使用的通用模板
const GenericTemplate = "appointment-generic"

// Catalog 邮件模板目录
type Catalog interface {
	// Exists 模板是否可用
	Exists(ctx context.Context, name string) (bool, error)
}

// StaticCatalog 固定的模板集合，未配置 Redis 时使用
type StaticCatalog struct {
	names map[string]struct{}
}

func NewStaticCatalog(names ...string) *StaticCatalog {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return &StaticCatalog{names: m}
}

func (s *StaticCatalog) Exists(_ context.Context, name string) (bool, error) {
	_, ok := s.names[name]
	return ok, nil
}

// DefaultTemplates 预约通知使用到的全部模板
func DefaultTemplates() []string {
	return []string{
		GenericTemplate,
		"appointment-requested-template",
		"appointment-requested-rh-template",
		"appointment-proposal-template",
		"appointment-proposal-rh-template",
		"appointment-confirmation-template",
		"appointment-confirmation-rh-template",
		"appointment-confirmation-medical-template",
		"appointment-cancellation-rh-template",
		"appointment-cancellation-medical-template",
		"medical-visit-planned-employee-template",
		"medical-visit-planned-rh-template",
		"medical-visit-planned-medical-template",
		"medical-visit-confirmed-employee-template",
		"medical-visit-confirmed-rh-template",
		"medical-visit-confirmed-medical-template",
		"medical-visit-cancelled-employee-template",
		"medical-visit-cancelled-rh-template",
		"medical-visit-cancelled-medical-template",
	}
}
