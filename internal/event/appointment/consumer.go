package appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gitee.com/flycash/osh-notification/internal/pkg/idempotent"
	"gitee.com/flycash/osh-notification/internal/pkg/mqx"
	"gitee.com/flycash/osh-notification/internal/pkg/retry"
	"gitee.com/flycash/osh-notification/internal/service/notification"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/core/elog"
)

const defaultPollTimeout = time.Second

// EventConsumer 消费预约流程事件并触发通知，每条消息处理完后提交
type EventConsumer struct {
	svc         notification.Service
	consumer    mqx.Consumer
	idempotent  idempotent.Service
	commitRetry retry.Config
	pollTimeout time.Duration
	logger      *elog.Component
}

func NewEventConsumer(
	svc notification.Service,
	consumer *kafka.Consumer,
	idem idempotent.Service,
	commitRetry retry.Config,
) (*EventConsumer, error) {
	return NewEventConsumerWithTopic(svc, consumer, idem, commitRetry, EventName)
}

func NewEventConsumerWithTopic(
	svc notification.Service,
	consumer *kafka.Consumer,
	idem idempotent.Service,
	commitRetry retry.Config,
	topic string,
) (*EventConsumer, error) {
	err := consumer.SubscribeTopics([]string{topic}, nil)
	if err != nil {
		return nil, err
	}
	return newEventConsumer(svc, consumer, idem, commitRetry), nil
}

func newEventConsumer(
	svc notification.Service,
	consumer mqx.Consumer,
	idem idempotent.Service,
	commitRetry retry.Config,
) *EventConsumer {
	return &EventConsumer{
		svc:         svc,
		consumer:    consumer,
		idempotent:  idem,
		commitRetry: commitRetry,
		pollTimeout: defaultPollTimeout,
		logger:      elog.DefaultLogger,
	}
}

func (c *EventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			if er := c.Consume(ctx); er != nil {
				c.logger.Error("消费预约流程事件失败", elog.FieldErr(er))
			}
		}
	}()
}

// Consume 处理一条消息，没有消息时直接返回
func (c *EventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.ReadMessage(c.pollTimeout)
	if err != nil {
		if mqx.IsTimeout(err) {
			return nil
		}
		return fmt.Errorf("获取消息失败: %w", err)
	}

	c.handle(ctx, msg)

	// 投递失败已经记录在报告里，不重新消费
	return c.commit(ctx, msg)
}

func (c *EventConsumer) handle(ctx context.Context, msg *kafka.Message) {
	var evt Event
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		// 解析失败，跳过本条
		c.logger.Warn("解析消息失败",
			elog.FieldErr(err),
			elog.Any("partition", msg.TopicPartition.Partition),
			elog.Any("offset", msg.TopicPartition.Offset))
		return
	}

	if evt.EventID != "" {
		exists, err := c.idempotent.Exists(ctx, evt.EventID)
		switch {
		case err != nil:
			// 幂等存储不可用时按至少一次处理
			c.logger.Warn("幂等检查失败，继续处理",
				elog.FieldErr(err),
				elog.String("eventId", evt.EventID))
		case exists:
			c.logger.Info("重复的流程事件，跳过", elog.String("eventId", evt.EventID))
			return
		}
	}

	report, err := c.svc.Notify(ctx, evt.toDomain())
	if err != nil {
		c.logger.Warn("流程事件不合法，跳过",
			elog.FieldErr(err),
			elog.String("eventId", evt.EventID),
			elog.String("scenario", evt.Scenario))
		return
	}
	if evt.EventID != "" {
		if err = c.idempotent.Mark(ctx, evt.EventID); err != nil {
			c.logger.Warn("幂等标记失败",
				elog.FieldErr(err),
				elog.String("eventId", evt.EventID))
		}
	}
	c.logger.Info("流程事件处理完成",
		elog.String("eventId", evt.EventID),
		elog.String("dispatchId", report.DispatchID),
		elog.String("scenario", report.Scenario.String()),
		elog.Int("recipients", len(report.Results)),
		elog.Int("succeeded", report.SuccessCount()))
}

func (c *EventConsumer) commit(ctx context.Context, msg *kafka.Message) error {
	strategy, err := retry.NewRetry(c.commitRetry)
	if err != nil {
		return fmt.Errorf("提交重试配置错误: %w", err)
	}
	err = retry.Do(ctx, strategy, func() error {
		_, er := c.consumer.CommitMessage(msg)
		return er
	})
	if err != nil {
		c.logger.Warn("提交消息失败",
			elog.FieldErr(err),
			elog.Any("partition", msg.TopicPartition.Partition),
			elog.Any("offset", msg.TopicPartition.Offset))
		return err
	}
	return nil
}
