package notification

import (
	"context"
	"fmt"
	"strings"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/errs"
	"gitee.com/flycash/osh-notification/internal/service/scenario"
	"gitee.com/flycash/osh-notification/internal/service/strategy"
	"github.com/gofrs/uuid"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 8

// Service 预约通知编排服务
//
//go:generate mockgen -source=./notification.go -destination=./mocks/notification.mock.go -package=notificationmocks -typed Service,Dispatcher
type Service interface {
	// Notify 向事件中的全部接收者投递通知，投递失败记录在报告中，不作为错误返回
	Notify(ctx context.Context, evt domain.AppointmentEvent) (domain.DeliveryReport, error)
	// Preview 只组装内容，不投递
	Preview(ctx context.Context, evt domain.AppointmentEvent) ([]Preview, error)
}

// Dispatcher 按场景组装并投递单个接收者的通知
type Dispatcher interface {
	Dispatch(ctx context.Context, scenario domain.Scenario, req strategy.Request) (domain.DeliveryResult, error)
	Compose(ctx context.Context, scenario domain.Scenario, req strategy.Request) (domain.NotificationContent, error)
}

// Preview 单个接收者将会收到的内容
type Preview struct {
	RecipientID int64
	Content     domain.NotificationContent
}

// Config 编排服务配置
type Config struct {
	// Concurrency 单次分发并发投递的接收者数量上限
	Concurrency int `yaml:"concurrency"`
}

type notificationService struct {
	dispatcher  Dispatcher
	concurrency int
	tracer      trace.Tracer
	logger      *elog.Component
}

// NewNotificationService 创建通知编排服务
func NewNotificationService(dispatcher Dispatcher, cfg Config) Service {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &notificationService{
		dispatcher:  dispatcher,
		concurrency: concurrency,
		tracer:      otel.Tracer("osh-notification/notification"),
		logger:      elog.DefaultLogger,
	}
}

func (s *notificationService) Notify(ctx context.Context, evt domain.AppointmentEvent) (domain.DeliveryReport, error) {
	sc, actor, err := s.resolve(evt)
	if err != nil {
		return domain.DeliveryReport{}, err
	}
	report := domain.DeliveryReport{
		DispatchID: uuid.Must(uuid.NewV4()).String(),
		Scenario:   sc,
		Actor:      actor,
	}

	ctx, span := s.tracer.Start(ctx, "NotificationService.Notify",
		trace.WithAttributes(
			attribute.String("notification.dispatchId", report.DispatchID),
			attribute.String("notification.scenario", sc.String()),
			attribute.String("notification.actor", actor.String()),
			attribute.Int64("appointment.id", evt.Appointment.ID),
		))
	defer span.End()

	recipients := uniqueRecipients(evt.Recipients)
	report.Results = make([]domain.DeliveryResult, len(recipients))

	// 每个接收者独立投递，失败只记录在自己的结果里
	var eg errgroup.Group
	eg.SetLimit(s.concurrency)
	for i := range recipients {
		eg.Go(func() error {
			recipient := recipients[i]
			res, err1 := s.dispatcher.Dispatch(ctx, sc, strategy.Request{
				Recipient:    recipient,
				Appointment:  evt.Appointment,
				ExtraMessage: evt.ExtraMessage,
				Actor:        actor,
			})
			if err1 != nil {
				res = domain.DeliveryResult{RecipientID: recipient.ID, Scenario: sc, InAppErr: err1}
			}
			report.Results[i] = res
			return nil
		})
	}
	_ = eg.Wait()

	span.SetAttributes(
		attribute.Int("notification.recipients", len(recipients)),
		attribute.Int("notification.succeeded", report.SuccessCount()),
	)
	if err = report.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn("部分通知投递失败",
			elog.String("dispatchId", report.DispatchID),
			elog.String("scenario", sc.String()),
			elog.Int64("appointmentId", evt.Appointment.ID),
			elog.FieldErr(err),
		)
		return report, nil
	}
	s.logger.Debug("通知分发完成",
		elog.String("dispatchId", report.DispatchID),
		elog.String("scenario", sc.String()),
		elog.Int("recipients", len(recipients)),
	)
	return report, nil
}

func (s *notificationService) Preview(ctx context.Context, evt domain.AppointmentEvent) ([]Preview, error) {
	sc, actor, err := s.resolve(evt)
	if err != nil {
		return nil, err
	}
	recipients := uniqueRecipients(evt.Recipients)
	res := make([]Preview, 0, len(recipients))
	for _, r := range recipients {
		c, err1 := s.dispatcher.Compose(ctx, sc, strategy.Request{
			Recipient:    r,
			Appointment:  evt.Appointment,
			ExtraMessage: evt.ExtraMessage,
			Actor:        actor,
		})
		if err1 != nil {
			return nil, err1
		}
		res = append(res, Preview{RecipientID: r.ID, Content: c})
	}
	return res, nil
}

func (s *notificationService) resolve(evt domain.AppointmentEvent) (domain.Scenario, domain.Actor, error) {
	if strings.TrimSpace(evt.Scenario) == "" {
		return "", domain.ActorUnknown, fmt.Errorf("%w", errs.ErrScenarioRequired)
	}
	if evt.Appointment == nil {
		return "", domain.ActorUnknown, fmt.Errorf("%w: 预约不能为空", errs.ErrInvalidParameter)
	}
	sc, actor := scenario.Resolve(evt.Scenario, evt.Actor)
	return sc, actor, nil
}

// uniqueRecipients 去掉空接收者和没有身份的接收者，同一身份只保留第一个
func uniqueRecipients(users []*domain.User) []*domain.User {
	seen := make(map[int64]struct{}, len(users))
	res := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if u == nil || u.ID == 0 {
			continue
		}
		if _, ok := seen[u.ID]; ok {
			continue
		}
		seen[u.ID] = struct{}{}
		res = append(res, u)
	}
	return res
}
