package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mural-hq/mint-fulfillment/internal/domain"
	"github.com/mural-hq/mint-fulfillment/internal/store/schema"
)

// seedUser inserts a user row for tests
func seedUser(t *testing.T, db *gorm.DB) *schema.User {
	t.Helper()

	wallet := "wallet-" + uuid.NewString()[:8]
	user := &schema.User{
		ID:            uuid.New(),
		DisplayName:   "test-user",
		WalletAddress: &wallet,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedPost inserts a post row for tests
func seedPost(t *testing.T, db *gorm.DB, creatorID uuid.UUID, mutate ...func(*schema.Post)) *schema.Post {
	t.Helper()

	post := &schema.Post{
		ID:            uuid.New(),
		CreatorID:     creatorID,
		Title:         "Sunset Over Harbor",
		MediaURI:      "https://cdn.example.com/media/sunset.png",
		CurrentSupply: 1,
		RoyaltyBps:    500,
	}
	for _, m := range mutate {
		m(post)
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

// seedPurchase inserts a purchase row for tests
func seedPurchase(t *testing.T, db *gorm.DB, postID, userID uuid.UUID, status domain.PurchaseStatus, mutate ...func(*schema.Purchase)) *schema.Purchase {
	t.Helper()

	purchase := &schema.Purchase{
		ID:     uuid.New(),
		PostID: postID,
		UserID: userID,
		Status: status,
		Amount: 2500,
	}
	for _, m := range mutate {
		m(purchase)
	}
	require.NoError(t, db.Create(purchase).Error)
	return purchase
}

func strPtr(s string) *string {
	return &s
}

func timePtr(tm time.Time) *time.Time {
	return &tm
}

func testGetPurchase(t *testing.T, st Store, db *gorm.DB) {
	ctx := context.Background()
	user := seedUser(t, db)
	post := seedPost(t, db, user.ID)

	t.Run("returns existing purchase", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusAwaitingFulfillment)

		purchase, err := st.GetPurchase(ctx, seeded.ID)
		require.NoError(t, err)
		require.NotNil(t, purchase)
		assert.Equal(t, seeded.ID, purchase.ID)
		assert.Equal(t, domain.StatusAwaitingFulfillment, purchase.Status)
		assert.Equal(t, int64(2500), purchase.Amount)
	})

	t.Run("returns nil for absent purchase", func(t *testing.T) {
		purchase, err := st.GetPurchase(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, purchase)
	})
}

func testClaimPurchase(t *testing.T, st Store, db *gorm.DB) {
	ctx := context.Background()
	user := seedUser(t, db)
	post := seedPost(t, db, user.ID)

	now := time.Now().UTC().Truncate(time.Microsecond)
	staleBefore := now.Add(-2 * time.Minute)

	t.Run("claims awaiting_fulfillment purchase", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusAwaitingFulfillment)

		claimed, err := st.ClaimPurchase(ctx, seeded.ID, "claim-key-1", now, staleBefore)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, domain.StatusMinting, claimed.Status)
		require.NotNil(t, claimed.FulfillmentKey)
		assert.Equal(t, "claim-key-1", *claimed.FulfillmentKey)
		require.NotNil(t, claimed.FulfillmentClaimedAt)
		assert.WithinDuration(t, now, *claimed.FulfillmentClaimedAt, time.Second)
	})

	t.Run("claims master_created purchase", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusMasterCreated)

		claimed, err := st.ClaimPurchase(ctx, seeded.ID, "claim-key-2", now, staleBefore)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, domain.StatusMinting, claimed.Status)
	})

	t.Run("rejects fresh minting claim", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusMinting, func(p *schema.Purchase) {
			p.FulfillmentKey = strPtr("other-worker")
			p.FulfillmentClaimedAt = timePtr(now.Add(-30 * time.Second))
		})

		claimed, err := st.ClaimPurchase(ctx, seeded.ID, "claim-key-3", now, staleBefore)
		require.NoError(t, err)
		assert.Nil(t, claimed)

		// Holder's claim is untouched
		current, err := st.GetPurchase(ctx, seeded.ID)
		require.NoError(t, err)
		require.NotNil(t, current.FulfillmentKey)
		assert.Equal(t, "other-worker", *current.FulfillmentKey)
	})

	t.Run("reclaims stale minting claim", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusMinting, func(p *schema.Purchase) {
			p.FulfillmentKey = strPtr("dead-worker")
			p.FulfillmentClaimedAt = timePtr(now.Add(-10 * time.Minute))
		})

		claimed, err := st.ClaimPurchase(ctx, seeded.ID, "claim-key-4", now, staleBefore)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, domain.StatusMinting, claimed.Status)
		require.NotNil(t, claimed.FulfillmentKey)
		assert.Equal(t, "claim-key-4", *claimed.FulfillmentKey)
	})

	t.Run("claims confirmed purchase without a recorded mint", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusConfirmed)

		claimed, err := st.ClaimPurchase(ctx, seeded.ID, "claim-key-5", now, staleBefore)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, domain.StatusMinting, claimed.Status)
	})

	t.Run("rejects confirmed purchase with a recorded mint", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusConfirmed, func(p *schema.Purchase) {
			p.NFTMint = strPtr("mint-address")
		})

		claimed, err := st.ClaimPurchase(ctx, seeded.ID, "claim-key-6", now, staleBefore)
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("rejects submitted purchase", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusSubmitted)

		claimed, err := st.ClaimPurchase(ctx, seeded.ID, "claim-key-7", now, staleBefore)
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("rejects failed purchase", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusFailed)

		claimed, err := st.ClaimPurchase(ctx, seeded.ID, "claim-key-8", now, staleBefore)
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})
}

func testResetOrphanedPurchase(t *testing.T, st Store, db *gorm.DB) {
	ctx := context.Background()
	user := seedUser(t, db)
	post := seedPost(t, db, user.ID)

	t.Run("resets confirmed purchase without mint", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusConfirmed, func(p *schema.Purchase) {
			p.FulfillmentKey = strPtr("stale-key")
			p.FulfillmentClaimedAt = timePtr(time.Now())
		})

		reset, err := st.ResetOrphanedPurchase(ctx, seeded.ID)
		require.NoError(t, err)
		assert.True(t, reset)

		current, err := st.GetPurchase(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAwaitingFulfillment, current.Status)
		assert.Nil(t, current.FulfillmentKey)
		assert.Nil(t, current.FulfillmentClaimedAt)
	})

	t.Run("leaves confirmed purchase with mint alone", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusConfirmed, func(p *schema.Purchase) {
			p.NFTMint = strPtr("mint-address")
		})

		reset, err := st.ResetOrphanedPurchase(ctx, seeded.ID)
		require.NoError(t, err)
		assert.False(t, reset)

		current, err := st.GetPurchase(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, current.Status)
	})
}

func testSetPostMetadataURI(t *testing.T, st Store, db *gorm.DB) {
	ctx := context.Background()
	user := seedUser(t, db)
	post := seedPost(t, db, user.ID)

	t.Run("first write wins", func(t *testing.T) {
		won, err := st.SetPostMetadataURI(ctx, post.ID, "https://storage.example.com/meta/1.json")
		require.NoError(t, err)
		assert.True(t, won)

		won, err = st.SetPostMetadataURI(ctx, post.ID, "https://storage.example.com/meta/2.json")
		require.NoError(t, err)
		assert.False(t, won)

		current, err := st.GetPost(ctx, post.ID)
		require.NoError(t, err)
		require.NotNil(t, current.MetadataURI)
		assert.Equal(t, "https://storage.example.com/meta/1.json", *current.MetadataURI)
	})
}

func testSetMasterCollection(t *testing.T, st Store, db *gorm.DB) {
	ctx := context.Background()
	user := seedUser(t, db)
	post := seedPost(t, db, user.ID)

	t.Run("winner takes all", func(t *testing.T) {
		won, err := st.SetMasterCollection(ctx, post.ID, "collection-winner")
		require.NoError(t, err)
		assert.True(t, won)

		won, err = st.SetMasterCollection(ctx, post.ID, "collection-loser")
		require.NoError(t, err)
		assert.False(t, won)

		current, err := st.GetPost(ctx, post.ID)
		require.NoError(t, err)
		require.NotNil(t, current.MasterCollectionAddress)
		assert.Equal(t, "collection-winner", *current.MasterCollectionAddress)
	})

	t.Run("absent post matches nothing", func(t *testing.T) {
		won, err := st.SetMasterCollection(ctx, uuid.New(), "collection-addr")
		require.NoError(t, err)
		assert.False(t, won)
	})
}

func testRecordMasterSignature(t *testing.T, st Store, db *gorm.DB) {
	ctx := context.Background()
	user := seedUser(t, db)
	post := seedPost(t, db, user.ID)

	t.Run("records signature on minting purchase", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusMinting)

		err := st.RecordMasterSignature(ctx, seeded.ID, "master-sig")
		require.NoError(t, err)

		current, err := st.GetPurchase(ctx, seeded.ID)
		require.NoError(t, err)
		require.NotNil(t, current.MasterTxSignature)
		assert.Equal(t, "master-sig", *current.MasterTxSignature)
	})

	t.Run("ignores purchase no longer minting", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusConfirmed)

		err := st.RecordMasterSignature(ctx, seeded.ID, "master-sig")
		require.NoError(t, err)

		current, err := st.GetPurchase(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Nil(t, current.MasterTxSignature)
	})
}

func testConfirmPurchase(t *testing.T, st Store, db *gorm.DB) {
	ctx := context.Background()
	user := seedUser(t, db)
	post := seedPost(t, db, user.ID)

	t.Run("confirms minting purchase and clears claim", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusMinting, func(p *schema.Purchase) {
			p.FulfillmentKey = strPtr("claim-key")
			p.FulfillmentClaimedAt = timePtr(time.Now())
		})

		confirmed, err := st.ConfirmPurchase(ctx, seeded.ID, "mint-address", "print-sig")
		require.NoError(t, err)
		assert.True(t, confirmed)

		current, err := st.GetPurchase(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, current.Status)
		require.NotNil(t, current.NFTMint)
		assert.Equal(t, "mint-address", *current.NFTMint)
		require.NotNil(t, current.PrintTxSignature)
		assert.Equal(t, "print-sig", *current.PrintTxSignature)
		assert.Nil(t, current.FulfillmentKey)
		assert.Nil(t, current.FulfillmentClaimedAt)
	})

	t.Run("returns false when claim was lost", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusAwaitingFulfillment)

		confirmed, err := st.ConfirmPurchase(ctx, seeded.ID, "mint-address", "print-sig")
		require.NoError(t, err)
		assert.False(t, confirmed)

		current, err := st.GetPurchase(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAwaitingFulfillment, current.Status)
		assert.Nil(t, current.NFTMint)
	})
}

func testReleaseForRetry(t *testing.T, st Store, db *gorm.DB) {
	ctx := context.Background()
	user := seedUser(t, db)
	post := seedPost(t, db, user.ID)

	t.Run("releases minting purchase to awaiting_fulfillment", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusMinting, func(p *schema.Purchase) {
			p.FulfillmentKey = strPtr("claim-key")
			p.FulfillmentClaimedAt = timePtr(time.Now())
		})

		released, err := st.ReleaseForRetry(ctx, seeded.ID, domain.StatusAwaitingFulfillment)
		require.NoError(t, err)
		assert.True(t, released)

		current, err := st.GetPurchase(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAwaitingFulfillment, current.Status)
		assert.Nil(t, current.FulfillmentKey)
		assert.Nil(t, current.FulfillmentClaimedAt)
	})

	t.Run("releases minting purchase to master_created", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusMinting)

		released, err := st.ReleaseForRetry(ctx, seeded.ID, domain.StatusMasterCreated)
		require.NoError(t, err)
		assert.True(t, released)

		current, err := st.GetPurchase(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusMasterCreated, current.Status)
	})

	t.Run("rejects non-retryable target status", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusMinting)

		_, err := st.ReleaseForRetry(ctx, seeded.ID, domain.StatusConfirmed)
		require.Error(t, err)
	})

	t.Run("returns false when claim was lost", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusConfirmed)

		released, err := st.ReleaseForRetry(ctx, seeded.ID, domain.StatusAwaitingFulfillment)
		require.NoError(t, err)
		assert.False(t, released)
	})
}

func testFailPurchase(t *testing.T, st Store, db *gorm.DB) {
	ctx := context.Background()
	user := seedUser(t, db)

	failedAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("fails minting purchase and releases supply slot", func(t *testing.T) {
		post := seedPost(t, db, user.ID, func(p *schema.Post) {
			p.CurrentSupply = 3
		})
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusMinting, func(p *schema.Purchase) {
			p.FulfillmentKey = strPtr("claim-key")
			p.FulfillmentClaimedAt = timePtr(time.Now())
		})

		failed, err := st.FailPurchase(ctx, seeded.ID, failedAt)
		require.NoError(t, err)
		assert.True(t, failed)

		current, err := st.GetPurchase(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusFailed, current.Status)
		require.NotNil(t, current.FailedAt)
		assert.Nil(t, current.FulfillmentKey)

		currentPost, err := st.GetPost(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, currentPost.CurrentSupply)
	})

	t.Run("supply decrement floors at zero", func(t *testing.T) {
		post := seedPost(t, db, user.ID, func(p *schema.Post) {
			p.CurrentSupply = 0
		})
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusMinting)

		failed, err := st.FailPurchase(ctx, seeded.ID, failedAt)
		require.NoError(t, err)
		assert.True(t, failed)

		currentPost, err := st.GetPost(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, currentPost.CurrentSupply)
	})

	t.Run("lost claim skips the decrement", func(t *testing.T) {
		post := seedPost(t, db, user.ID, func(p *schema.Post) {
			p.CurrentSupply = 3
		})
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusConfirmed)

		failed, err := st.FailPurchase(ctx, seeded.ID, failedAt)
		require.NoError(t, err)
		assert.False(t, failed)

		currentPost, err := st.GetPost(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, currentPost.CurrentSupply)
	})
}

func testMarkAwaitingFulfillment(t *testing.T, st Store, db *gorm.DB) {
	ctx := context.Background()
	user := seedUser(t, db)
	post := seedPost(t, db, user.ID)

	t.Run("moves submitted purchase forward", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusSubmitted)

		moved, err := st.MarkAwaitingFulfillment(ctx, seeded.ID)
		require.NoError(t, err)
		assert.True(t, moved)

		current, err := st.GetPurchase(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAwaitingFulfillment, current.Status)
	})

	t.Run("ignores purchase already past submitted", func(t *testing.T) {
		seeded := seedPurchase(t, db, post.ID, user.ID, domain.StatusConfirmed)

		moved, err := st.MarkAwaitingFulfillment(ctx, seeded.ID)
		require.NoError(t, err)
		assert.False(t, moved)
	})
}

func testListPurchasesByStatus(t *testing.T, st Store, db *gorm.DB) {
	ctx := context.Background()
	user := seedUser(t, db)
	post := seedPost(t, db, user.ID)

	older := time.Now().Add(-10 * time.Minute)
	newer := time.Now().Add(-1 * time.Minute)

	oldSubmitted := seedPurchase(t, db, post.ID, user.ID, domain.StatusSubmitted)
	require.NoError(t, db.Model(oldSubmitted).UpdateColumn("updated_at", older).Error)
	newSubmitted := seedPurchase(t, db, post.ID, user.ID, domain.StatusSubmitted)
	require.NoError(t, db.Model(newSubmitted).UpdateColumn("updated_at", newer).Error)
	retryable := seedPurchase(t, db, post.ID, user.ID, domain.StatusAwaitingFulfillment)
	require.NoError(t, db.Model(retryable).UpdateColumn("updated_at", older).Error)

	t.Run("filters by status and updated_before, oldest first", func(t *testing.T) {
		purchases, err := st.ListPurchasesByStatus(ctx, []domain.PurchaseStatus{domain.StatusSubmitted}, time.Now(), 10)
		require.NoError(t, err)
		require.Len(t, purchases, 2)
		assert.Equal(t, oldSubmitted.ID, purchases[0].ID)
		assert.Equal(t, newSubmitted.ID, purchases[1].ID)
	})

	t.Run("respects the updated_before cutoff", func(t *testing.T) {
		purchases, err := st.ListPurchasesByStatus(ctx, []domain.PurchaseStatus{domain.StatusSubmitted}, time.Now().Add(-5*time.Minute), 10)
		require.NoError(t, err)
		require.Len(t, purchases, 1)
		assert.Equal(t, oldSubmitted.ID, purchases[0].ID)
	})

	t.Run("matches multiple statuses", func(t *testing.T) {
		purchases, err := st.ListPurchasesByStatus(ctx, []domain.PurchaseStatus{domain.StatusSubmitted, domain.StatusAwaitingFulfillment}, time.Now(), 10)
		require.NoError(t, err)
		assert.Len(t, purchases, 3)
	})

	t.Run("respects the limit", func(t *testing.T) {
		purchases, err := st.ListPurchasesByStatus(ctx, []domain.PurchaseStatus{domain.StatusSubmitted}, time.Now(), 1)
		require.NoError(t, err)
		require.Len(t, purchases, 1)
		assert.Equal(t, oldSubmitted.ID, purchases[0].ID)
	})

	t.Run("empty statuses returns empty list", func(t *testing.T) {
		purchases, err := st.ListPurchasesByStatus(ctx, nil, time.Now(), 10)
		require.NoError(t, err)
		assert.Empty(t, purchases)
	})
}

func testCreateNotification(t *testing.T, st Store, db *gorm.DB) {
	ctx := context.Background()
	user := seedUser(t, db)

	notification := &schema.Notification{
		UserID:  user.ID,
		Kind:    schema.NotificationKindEditionSold,
		Payload: datatypes.JSON(`{"post_title":"Sunset Over Harbor","edition_number":3}`),
	}
	require.NoError(t, st.CreateNotification(ctx, notification))
	assert.NotZero(t, notification.ID)

	var stored schema.Notification
	require.NoError(t, db.Where("id = ?", notification.ID).First(&stored).Error)
	assert.Equal(t, user.ID, stored.UserID)
	assert.Equal(t, schema.NotificationKindEditionSold, stored.Kind)
}

func testCreateMintSnapshot(t *testing.T, st Store, db *gorm.DB) {
	ctx := context.Background()
	user := seedUser(t, db)
	post := seedPost(t, db, user.ID)
	purchase := seedPurchase(t, db, post.ID, user.ID, domain.StatusConfirmed)

	snapshot := &schema.MintSnapshot{
		PurchaseID: purchase.ID,
		NFTMint:    "mint-address",
		Metadata:   datatypes.JSON(`{"name":"Sunset Over Harbor #1"}`),
	}
	require.NoError(t, st.CreateMintSnapshot(ctx, snapshot))

	// Re-running the hook must not duplicate the snapshot
	duplicate := &schema.MintSnapshot{
		PurchaseID: purchase.ID,
		NFTMint:    "other-mint",
		Metadata:   datatypes.JSON(`{"name":"other"}`),
	}
	require.NoError(t, st.CreateMintSnapshot(ctx, duplicate))

	var count int64
	require.NoError(t, db.Model(&schema.MintSnapshot{}).Where("purchase_id = ?", purchase.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var stored schema.MintSnapshot
	require.NoError(t, db.Where("purchase_id = ?", purchase.ID).First(&stored).Error)
	assert.Equal(t, "mint-address", stored.NFTMint)
}

// RunStoreTests runs the full store test suite against a database-backed Store
func RunStoreTests(t *testing.T, initDB func(t *testing.T) (Store, *gorm.DB)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store, *gorm.DB)
	}{
		{"GetPurchase", testGetPurchase},
		{"ClaimPurchase", testClaimPurchase},
		{"ResetOrphanedPurchase", testResetOrphanedPurchase},
		{"SetPostMetadataURI", testSetPostMetadataURI},
		{"SetMasterCollection", testSetMasterCollection},
		{"RecordMasterSignature", testRecordMasterSignature},
		{"ConfirmPurchase", testConfirmPurchase},
		{"ReleaseForRetry", testReleaseForRetry},
		{"FailPurchase", testFailPurchase},
		{"MarkAwaitingFulfillment", testMarkAwaitingFulfillment},
		{"ListPurchasesByStatus", testListPurchasesByStatus},
		{"CreateNotification", testCreateNotification},
		{"CreateMintSnapshot", testCreateMintSnapshot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, db := initDB(t)
			tt.fn(t, store, db)
		})
	}
}
