// Package mqx 对 confluent-kafka-go 的最小抽象，方便替换和测试
package mqx

import (
	"errors"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// Consumer *kafka.Consumer 中用到的部分
//
//go:generate mockgen -source=./consumer.go -package=evtmocks -destination=../../event/mocks/kafka_consumer.mock.go -typed Consumer
type Consumer interface {
	ReadMessage(timeout time.Duration) (*kafka.Message, error)
	CommitMessage(msg *kafka.Message) ([]kafka.TopicPartition, error)
}

// Producer *kafka.Producer 中用到的部分
type Producer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
}

// IsTimeout ReadMessage 超时不是错误，只表示暂时没有消息
func IsTimeout(err error) bool {
	var kErr kafka.Error
	return errors.As(err, &kErr) && kErr.Code() == kafka.ErrTimedOut
}
