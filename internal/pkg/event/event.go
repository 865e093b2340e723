// Package event 把投票结果作为事件推给下游（报表、通知）。
// 未配置 broker 时使用空实现，主流程不感知差异。
package event

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	"github.com/AndriiHamasa/lunchify/internal/pkg/options"
	"github.com/maxiaolu1981/cretem/nexuscore/log"
)

// Producer 发布投票事件。
type Producer interface {
	PublishVote(ctx context.Context, vote *v1.Vote) error
	Close() error
}

// VoteEvent 是投票事件的载荷。
type VoteEvent struct {
	EmployeeID string    `json:"employee_id"`
	MenuID     uint64    `json:"menu_id"`
	VoteDate   string    `json:"vote_date"`
	CastAt     time.Time `json:"cast_at"`
}

// New 根据配置返回 Kafka 生产者或空实现。
func New(opts *options.KafkaOptions) Producer {
	if opts == nil || !opts.Enabled() {
		return &noopProducer{}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(opts.Brokers...),
		Topic:        opts.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		ErrorLogger: kafka.LoggerFunc(func(format string, args ...interface{}) {
			log.Errorf("kafka: "+format, args...)
		}),
	}
	log.Infof("vote events will be published to %v topic %s", opts.Brokers, opts.Topic)

	return &kafkaProducer{writer: writer}
}

type kafkaProducer struct {
	writer *kafka.Writer
}

func (p *kafkaProducer) PublishVote(ctx context.Context, vote *v1.Vote) error {
	payload, err := json.Marshal(VoteEvent{
		EmployeeID: vote.EmployeeID,
		MenuID:     vote.MenuID,
		VoteDate:   vote.VoteDate.Format("2006-01-02"),
		CastAt:     time.Now(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(vote.MenuID, 10)),
		Value: payload,
	})
}

func (p *kafkaProducer) Close() error {
	return p.writer.Close()
}

type noopProducer struct{}

func (*noopProducer) PublishVote(ctx context.Context, vote *v1.Vote) error { return nil }

func (*noopProducer) Close() error { return nil }
