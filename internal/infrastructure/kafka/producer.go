package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

// messageWriter — часть kafka.Writer, которой пользуется продюсер.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer публикует события изменения каталога. Ключом сообщения служит ID сущности,
// поэтому события одной сущности попадают в одну партицию по порядку.
type Producer struct {
	writer messageWriter
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), fmt.Errorf("no kafka brokers configured"))
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s, messages: %d", err.Error(), len(messages))
			}
		},
	}

	return newProducer(writer, logger, cfg), nil
}

func newProducer(writer messageWriter, logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}
}

// Publish сериализует событие в JSON и отправляет его в топик каталога.
func (p *Producer) Publish(ctx context.Context, event domain.CatalogEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EntityID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_kind", Value: []byte(event.Kind)},
		},
	}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// EnsureTopic создает топик каталога, если его еще нет. Создание идет через
// контроллер кластера: остальные брокеры CreateTopics отклоняют.
func (p *Producer) EnsureTopic(ctx context.Context) error {
	dialer := &kafka.Dialer{}

	conn, err := dialer.DialContext(ctx, p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	if partitions, err := conn.ReadPartitions(p.cfg.Topic); err == nil && len(partitions) > 0 {
		return nil
	}

	controller, err := conn.Controller()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	ctrlConn, err := dialer.DialContext(ctx, p.cfg.NetworkMode, net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer ctrlConn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = ctrlConn.SetDeadline(deadline)
	}

	if err := ctrlConn.CreateTopics(kafka.TopicConfig{
		Topic:             p.cfg.Topic,
		NumPartitions:     p.cfg.Partitions,
		ReplicationFactor: p.cfg.ReplicationFactor,
	}); err != nil {
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("create topic %s: %w", p.cfg.Topic, err))
	}

	p.logger.Infof("kafka topic %s created with %d partitions", p.cfg.Topic, p.cfg.Partitions)
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
