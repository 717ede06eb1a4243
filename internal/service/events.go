package service

import (
	"encoding/json"

	"github.com/IBM/sarama"

	"github.com/sajilorent/rental-service/internal/model"
	"github.com/sajilorent/rental-service/pkg/kafka"
)

type EventPublisher interface {
	Publish(event model.SellerEvent) error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
}

func NewEventPublisher(producer sarama.SyncProducer) EventPublisher {
	return &kafkaPublisher{producer: producer}
}

func (p *kafkaPublisher) Publish(event model.SellerEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: kafka.EventsTopic, Value: sarama.StringEncoder(data)}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}
