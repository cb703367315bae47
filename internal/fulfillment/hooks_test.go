package fulfillment_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mural-hq/mint-fulfillment/internal/adapter"
	"github.com/mural-hq/mint-fulfillment/internal/domain"
	"github.com/mural-hq/mint-fulfillment/internal/fulfillment"
	"github.com/mural-hq/mint-fulfillment/internal/mocks"
	"github.com/mural-hq/mint-fulfillment/internal/store/schema"
)

func newConfirmedPayload(f *testFixture) *fulfillment.HookPayload {
	return &fulfillment.HookPayload{
		Purchase:      f.purchase,
		Post:          f.post,
		Buyer:         f.buyer,
		Creator:       f.creator,
		Status:        domain.StatusConfirmed,
		NFTMint:       "mint-addr",
		MetadataURI:   "meta-uri",
		EditionNumber: 3,
	}
}

func TestNotificationHookCreatesCreatorNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	f := newTestFixture()

	var created *schema.Notification
	store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *schema.Notification) error {
			created = n
			return nil
		})

	hook := fulfillment.NewNotificationHook(store, adapter.NewJSON())
	err := hook.Run(context.Background(), newConfirmedPayload(f))

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, f.creatorID, created.UserID)
	assert.Equal(t, schema.NotificationKindEditionSold, created.Kind)
	assert.Contains(t, string(created.Payload), "mint-addr")
}

func TestNotificationHookSkipsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	f := newTestFixture()

	payload := newConfirmedPayload(f)
	payload.Status = domain.StatusFailed

	hook := fulfillment.NewNotificationHook(store, adapter.NewJSON())
	err := hook.Run(context.Background(), payload)

	assert.NoError(t, err)
}

func TestSnapshotHookWritesMintSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	f := newTestFixture()

	var snapshot *schema.MintSnapshot
	store.EXPECT().CreateMintSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *schema.MintSnapshot) error {
			snapshot = s
			return nil
		})

	hook := fulfillment.NewSnapshotHook(store, adapter.NewJSON())
	err := hook.Run(context.Background(), newConfirmedPayload(f))

	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, f.purchaseID, snapshot.PurchaseID)
	assert.Equal(t, "mint-addr", snapshot.NFTMint)
	assert.Contains(t, string(snapshot.Metadata), "meta-uri")
}
