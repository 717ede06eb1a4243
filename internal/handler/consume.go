package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/sajilorent/rental-service/internal/model"
)

type applyEvent func(ctx context.Context, event model.SellerEvent) error

// Consumer folds seller events from Kafka into the stats counters.
// Setup and Cleanup hold no per-session state: the group loop reuses
// one Consumer across rebalances.
type Consumer struct {
	apply applyEvent
	log   *zap.Logger
}

func NewConsumer(apply applyEvent, log *zap.Logger) *Consumer {
	return &Consumer{
		apply: apply,
		log:   log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event model.SellerEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("unmarshal event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.apply(context.Background(), event); err != nil {
				consumer.log.Error("apply event", zap.String("type", event.Type), zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
