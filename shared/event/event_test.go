package event_test

import (
	"context"
	"errors"
	"testing"

	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	"hotel/shared/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPublisher_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Topic = "hotel.events"

	payload := map[string]int{"hotelid": 5, "roomno": 101}

	client.EXPECT().
		SendMessages(gomock.Any(), "hotel.events", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			require.Len(t, messages, 1)
			assert.Equal(t, "room", messages[0].Key)

			evt, ok := messages[0].Value.(event.Event)
			require.True(t, ok)
			assert.Equal(t, "room.created", evt.Type)
			assert.Equal(t, "room", evt.Entity)
			assert.Equal(t, payload, evt.Data)
			assert.False(t, evt.OccurredAt.IsZero())

			return nil
		})

	publisher := event.NewPublisher(client, cfg, mocks.NewOtel())
	publisher.Created(context.Background(), "room", payload)
}

func TestPublisher_CreatedSwallowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	client.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("broker unavailable"))

	publisher := event.NewPublisher(client, &config.Config{}, mocks.NewOtel())

	assert.NotPanics(t, func() {
		publisher.Created(context.Background(), "booking", nil)
	})
}

func TestNewPublisher_Noop(t *testing.T) {
	publisher := event.NewPublisher(nil, &config.Config{}, mocks.NewOtel())

	assert.NotPanics(t, func() {
		publisher.Created(context.Background(), "customer", struct{}{})
	})
}
