package options

import (
	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
	"github.com/spf13/pflag"
)

// KafkaOptions 定义投票事件外发的 Kafka 参数。
// Brokers 为空表示不接 Kafka，事件走空实现。
type KafkaOptions struct {
	Brokers []string `json:"brokers" mapstructure:"brokers"`
	Topic   string   `json:"topic"   mapstructure:"topic"`
}

func NewKafkaOptions() *KafkaOptions {
	return &KafkaOptions{
		Brokers: []string{},
		Topic:   "lunchify-votes",
	}
}

func (o *KafkaOptions) Enabled() bool {
	return len(o.Brokers) > 0
}

func (o *KafkaOptions) Validate() []error {
	var errs []error

	if len(o.Brokers) > 0 && o.Topic == "" {
		errs = append(errs, errors.WithCode(code.ErrValidation, "kafka topic is required when brokers are set"))
	}

	return errs
}

func (o *KafkaOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringSliceVar(&o.Brokers, "kafka.brokers", o.Brokers, ""+
		"Kafka broker addresses, comma separated. Leave empty to disable vote event publishing.")

	fs.StringVar(&o.Topic, "kafka.topic", o.Topic, ""+
		"Topic that vote events are published to.")
}
