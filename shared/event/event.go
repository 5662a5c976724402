package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"time"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Event is the JSON document published for every row the console inserts.
type Event struct {
	Type       string    `json:"type"`
	Entity     string    `json:"entity"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// Publisher announces inserted rows. Delivery problems are logged, never returned.
type Publisher interface {
	Created(ctx context.Context, entity string, payload any)
}

type publisherImpl struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

// NewPublisher returns a publisher that drops every event when client is nil.
func NewPublisher(client kafka.Client, cfg *config.Config, otl otel.Otel) Publisher {
	if client == nil {
		return noopPublisher{}
	}

	return &publisherImpl{
		client: client,
		topic:  cfg.Kafka.Topic,
		otel:   otl,
	}
}

func (p *publisherImpl) Created(ctx context.Context, entity string, payload any) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Created")
	defer scope.End()

	evt := Event{
		Type:       entity + "." + constant.EventCreated,
		Entity:     entity,
		OccurredAt: timezone.Now(),
		Data:       payload,
	}

	scope.SetAttribute("event.type", evt.Type)

	if err := p.client.SendMessages(ctx, p.topic, kafka.Message{Key: entity, Value: evt}); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("event", evt.Type).Msg("failed to publish event")
	}
}

type noopPublisher struct{}

func (noopPublisher) Created(context.Context, string, any) {}
