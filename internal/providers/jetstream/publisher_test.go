package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mural-hq/mint-fulfillment/internal/adapter"
	"github.com/mural-hq/mint-fulfillment/internal/domain"
	"github.com/mural-hq/mint-fulfillment/internal/logger"
	"github.com/mural-hq/mint-fulfillment/internal/messaging"
	"github.com/mural-hq/mint-fulfillment/internal/mocks"
	"github.com/mural-hq/mint-fulfillment/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var testConfig = jetstream.Config{
	URL:            "nats://localhost:4222",
	StreamName:     "PURCHASE_EVENTS",
	MaxReconnects:  5,
	ReconnectWait:  2 * time.Second,
	ConnectionName: "publisher-test",
}

// setupTestPublisher connects a publisher through the mocked NATS layer
func setupTestPublisher(t *testing.T) (messaging.Publisher, *mocks.MockNatsConn, *mocks.MockJetStream) {
	ctrl := gomock.NewController(t)
	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().
		Connect(testConfig.URL, gomock.Any()).
		Return(nc, js, nil)

	pub, err := jetstream.NewPublisher(testConfig, natsJS, adapter.NewJSON())
	require.NoError(t, err)
	return pub, nc, js
}

func TestNewPublisherConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().
		Connect(testConfig.URL, gomock.Any()).
		Return(nil, nil, errors.New("no servers available"))

	_, err := jetstream.NewPublisher(testConfig, natsJS, adapter.NewJSON())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestPublishPurchaseEvent(t *testing.T) {
	pub, _, js := setupTestPublisher(t)
	ctx := context.Background()

	event := &domain.PurchaseEvent{
		EventID:       "01JX0000000000000000000000",
		EventType:     domain.EventTypePurchaseConfirmed,
		PurchaseID:    uuid.New(),
		PostID:        uuid.New(),
		BuyerID:       uuid.New(),
		NFTMint:       "mint-addr",
		EditionNumber: 3,
		Timestamp:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	js.EXPECT().
		Publish(ctx, "purchase.confirmed", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var published domain.PurchaseEvent
			require.NoError(t, json.Unmarshal(data, &published))
			assert.Equal(t, event.EventID, published.EventID)
			assert.Equal(t, event.PurchaseID, published.PurchaseID)
			assert.Equal(t, "mint-addr", published.NFTMint)
			return &natsjs.PubAck{Stream: testConfig.StreamName, Sequence: 1}, nil
		})

	require.NoError(t, pub.PublishPurchaseEvent(ctx, event))
}

func TestPublishFailedEventUsesFailureSubject(t *testing.T) {
	pub, _, js := setupTestPublisher(t)
	ctx := context.Background()

	js.EXPECT().
		Publish(ctx, "purchase.failed", gomock.Any()).
		Return(&natsjs.PubAck{Stream: testConfig.StreamName, Sequence: 2}, nil)

	err := pub.PublishPurchaseEvent(ctx, &domain.PurchaseEvent{
		EventID:    "01JX0000000000000000000001",
		EventType:  domain.EventTypePurchaseFailed,
		PurchaseID: uuid.New(),
	})
	require.NoError(t, err)
}

func TestPublishErrorPropagates(t *testing.T) {
	pub, _, js := setupTestPublisher(t)
	ctx := context.Background()

	js.EXPECT().
		Publish(ctx, "purchase.confirmed", gomock.Any()).
		Return(nil, errors.New("nats: maximum payload exceeded"))

	err := pub.PublishPurchaseEvent(ctx, &domain.PurchaseEvent{
		EventType: domain.EventTypePurchaseConfirmed,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event")
}

func TestMarshalErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	jsonAdapter := mocks.NewMockJSON(ctrl)

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().
		Connect(testConfig.URL, gomock.Any()).
		Return(nc, js, nil)

	pub, err := jetstream.NewPublisher(testConfig, natsJS, jsonAdapter)
	require.NoError(t, err)

	jsonAdapter.EXPECT().
		Marshal(gomock.Any()).
		Return(nil, errors.New("unsupported type"))

	err = pub.PublishPurchaseEvent(context.Background(), &domain.PurchaseEvent{
		EventType: domain.EventTypePurchaseConfirmed,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal event")
}

func TestCloseClosesConnection(t *testing.T) {
	pub, nc, _ := setupTestPublisher(t)

	nc.EXPECT().Close()

	pub.Close()
}
