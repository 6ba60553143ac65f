package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/errs"
	"gitee.com/flycash/osh-notification/internal/pkg/mqx"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

const EmailJobTopic = "email_delivery_jobs"

// EmailJob 交给邮件渲染服务的任务
type EmailJob struct {
	To         string            `json:"to"`
	TemplateID string            `json:"templateId"`
	Subject    string            `json:"subject"`
	Context    map[string]string `json:"context"`
}

// Provider 把邮件任务写入 Kafka，由下游渲染模板并真正发送
type Provider struct {
	producer mqx.Producer
	topic    string
}

func NewProvider(producer mqx.Producer) *Provider {
	return NewProviderWithTopic(producer, EmailJobTopic)
}

func NewProviderWithTopic(producer mqx.Producer, topic string) *Provider {
	return &Provider{producer: producer, topic: topic}
}

// Send 同步等待 broker 确认
func (p *Provider) Send(ctx context.Context, msg domain.EmailMessage) error {
	val, err := json.Marshal(EmailJob{
		To:         msg.To,
		TemplateID: msg.TemplateID,
		Subject:    msg.Subject,
		Context:    msg.Context,
	})
	if err != nil {
		return fmt.Errorf("%w: 序列化邮件任务失败: %w", errs.ErrSendEmailFailed, err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(msg.To),
		Value:          val,
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSendEmailFailed, err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case e := <-deliveryChan:
		m, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("%w: 未知的投递事件 %v", errs.ErrSendEmailFailed, e)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("%w: %w", errs.ErrSendEmailFailed, m.TopicPartition.Error)
		}
		return nil
	}
}
