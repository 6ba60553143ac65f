package ioc

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/osh-notification/internal/event/appointment"
	"gitee.com/flycash/osh-notification/internal/service/provider/outbox"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/ecodeclub/ekit/retry"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

type kafkaConfig struct {
	BootstrapServers string `yaml:"bootstrapServers"`
	GroupID          string `yaml:"groupID"`
	ClientID         string `yaml:"clientID"`
	Partitions       int    `yaml:"partitions"`
}

func loadKafkaConfig() kafkaConfig {
	cfg := kafkaConfig{
		GroupID:    "osh-notification",
		ClientID:   "osh-notification",
		Partitions: 1,
	}
	err := econf.UnmarshalKey("kafka", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitProducer() *kafka.Producer {
	cfg := loadKafkaConfig()
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.BootstrapServers,
		"client.id":         cfg.ClientID,
		"acks":              "all",
	})
	if err != nil {
		panic(fmt.Sprintf("创建生产者失败: %v", err))
	}
	return producer
}

// InitConsumer 关闭自动提交，消息处理完才提交
func InitConsumer() *kafka.Consumer {
	cfg := loadKafkaConfig()
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  cfg.BootstrapServers,
		"group.id":           cfg.GroupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": false,
	})
	if err != nil {
		panic(fmt.Sprintf("创建消费者失败: %v", err))
	}
	return consumer
}

// InitTopic 创建本服务用到的 topic，Kafka 尚未就绪时按指数退避重试
func InitTopic() {
	cfg := loadKafkaConfig()
	topics := []kafka.TopicSpecification{
		{Topic: appointment.EventName, NumPartitions: cfg.Partitions, ReplicationFactor: 1},
		{Topic: outbox.EmailJobTopic, NumPartitions: cfg.Partitions, ReplicationFactor: 1},
	}

	const maxInterval = 10 * time.Second
	const maxRetries = 10
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}
	for {
		err = initTopic(cfg.BootstrapServers, topics...)
		if err == nil {
			return
		}
		next, ok := strategy.Next()
		if !ok {
			panic(fmt.Sprintf("InitTopic 重试失败: %v", err))
		}
		elog.DefaultLogger.Warn("创建topic失败，稍后重试", elog.FieldErr(err), elog.Any("next", next))
		time.Sleep(next)
	}
}

func initTopic(servers string, topics ...kafka.TopicSpecification) error {
	adminClient, err := kafka.NewAdminClient(&kafka.ConfigMap{
		"bootstrap.servers": servers,
	})
	if err != nil {
		return fmt.Errorf("创建kafka连接失败: %w", err)
	}
	defer adminClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	results, err := adminClient.CreateTopics(ctx, topics)
	if err != nil {
		return fmt.Errorf("创建topic失败: %w", err)
	}
	for _, result := range results {
		if result.Error.Code() != kafka.ErrNoError && result.Error.Code() != kafka.ErrTopicAlreadyExists {
			return fmt.Errorf("创建topic失败 %s: %w", result.Topic, result.Error)
		}
		elog.DefaultLogger.Info("topic 已就绪", elog.String("topic", result.Topic))
	}
	return nil
}
