package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mural-hq/mint-fulfillment/internal/domain"
	"github.com/mural-hq/mint-fulfillment/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults: 20 open, 5 idle,
// 5m lifetime, 10m idle time.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// GetPurchase retrieves a purchase by ID
func (s *pgStore) GetPurchase(ctx context.Context, id uuid.UUID) (*schema.Purchase, error) {
	var purchase schema.Purchase
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&purchase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	return &purchase, nil
}

// GetPost retrieves a post by ID
func (s *pgStore) GetPost(ctx context.Context, id uuid.UUID) (*schema.Post, error) {
	var post schema.Post
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// GetUser retrieves a user by ID
func (s *pgStore) GetUser(ctx context.Context, id uuid.UUID) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// ClaimPurchase performs the claim acquisition as a single conditional update.
// The WHERE predicate encodes every state a claim may legally be taken from;
// anything else leaves the row untouched and returns (nil, nil) for the caller
// to branch on.
func (s *pgStore) ClaimPurchase(ctx context.Context, id uuid.UUID, key string, now time.Time, staleBefore time.Time) (*schema.Purchase, error) {
	var purchase schema.Purchase
	result := s.db.WithContext(ctx).
		Model(&purchase).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Where(
			s.db.
				Where("status IN ?", []domain.PurchaseStatus{domain.StatusAwaitingFulfillment, domain.StatusMasterCreated}).
				Or("status = ? AND fulfillment_claimed_at < ?", domain.StatusMinting, staleBefore).
				Or("status = ? AND nft_mint IS NULL", domain.StatusConfirmed),
		).
		Updates(map[string]interface{}{
			"status":                 domain.StatusMinting,
			"fulfillment_key":        key,
			"fulfillment_claimed_at": now,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to claim purchase: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return &purchase, nil
}

// ResetOrphanedPurchase repairs a confirmed purchase without a recorded mint
func (s *pgStore) ResetOrphanedPurchase(ctx context.Context, id uuid.UUID) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Purchase{}).
		Where("id = ? AND status = ? AND nft_mint IS NULL", id, domain.StatusConfirmed).
		Updates(map[string]interface{}{
			"status":                 domain.StatusAwaitingFulfillment,
			"fulfillment_key":        nil,
			"fulfillment_claimed_at": nil,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to reset orphaned purchase: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// SetPostMetadataURI persists the metadata URI once
func (s *pgStore) SetPostMetadataURI(ctx context.Context, postID uuid.UUID, uri string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Post{}).
		Where("id = ? AND metadata_uri IS NULL", postID).
		Update("metadata_uri", uri)
	if result.Error != nil {
		return false, fmt.Errorf("failed to set post metadata URI: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// SetMasterCollection persists the collection address with a winner-take-all
// conditional update
func (s *pgStore) SetMasterCollection(ctx context.Context, postID uuid.UUID, address string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Post{}).
		Where("id = ? AND master_collection_address IS NULL", postID).
		Update("master_collection_address", address)
	if result.Error != nil {
		return false, fmt.Errorf("failed to set master collection: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// RecordMasterSignature stores the collection creation tx signature on the purchase
func (s *pgStore) RecordMasterSignature(ctx context.Context, purchaseID uuid.UUID, signature string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Purchase{}).
		Where("id = ? AND status = ?", purchaseID, domain.StatusMinting).
		Update("master_tx_signature", signature).Error
	if err != nil {
		return fmt.Errorf("failed to record master signature: %w", err)
	}

	return nil
}

// ConfirmPurchase finalizes a minting purchase in a single update
func (s *pgStore) ConfirmPurchase(ctx context.Context, id uuid.UUID, nftMint string, printTxSignature string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Purchase{}).
		Where("id = ? AND status = ?", id, domain.StatusMinting).
		Updates(map[string]interface{}{
			"status":                 domain.StatusConfirmed,
			"nft_mint":               nftMint,
			"print_tx_signature":     printTxSignature,
			"fulfillment_key":        nil,
			"fulfillment_claimed_at": nil,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to confirm purchase: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// ReleaseForRetry releases the claim back to a retryable status
func (s *pgStore) ReleaseForRetry(ctx context.Context, id uuid.UUID, status domain.PurchaseStatus) (bool, error) {
	if !status.Retryable() {
		return false, fmt.Errorf("cannot release purchase into status %q", status)
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Purchase{}).
		Where("id = ? AND status = ?", id, domain.StatusMinting).
		Updates(map[string]interface{}{
			"status":                 status,
			"fulfillment_key":        nil,
			"fulfillment_claimed_at": nil,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to release purchase for retry: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// FailPurchase terminally fails a purchase and applies the compensating supply
// decrement in the same transaction. The decrement only happens when the
// purchase update matched, so a lost claim can never release a slot twice.
func (s *pgStore) FailPurchase(ctx context.Context, id uuid.UUID, failedAt time.Time) (bool, error) {
	var failed bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var purchase schema.Purchase
		result := tx.
			Model(&purchase).
			Clauses(clause.Returning{}).
			Where("id = ? AND status = ?", id, domain.StatusMinting).
			Updates(map[string]interface{}{
				"status":                 domain.StatusFailed,
				"failed_at":              failedAt,
				"fulfillment_key":        nil,
				"fulfillment_claimed_at": nil,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to mark purchase failed: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		failed = true

		err := tx.
			Model(&schema.Post{}).
			Where("id = ?", purchase.PostID).
			Update("current_supply", gorm.Expr("GREATEST(current_supply - 1, 0)")).Error
		if err != nil {
			return fmt.Errorf("failed to release supply slot: %w", err)
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return failed, nil
}

// MarkAwaitingFulfillment moves a submitted purchase to awaiting_fulfillment
func (s *pgStore) MarkAwaitingFulfillment(ctx context.Context, id uuid.UUID) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Purchase{}).
		Where("id = ? AND status = ?", id, domain.StatusSubmitted).
		Update("status", domain.StatusAwaitingFulfillment)
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark purchase awaiting fulfillment: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// ListPurchasesByStatus returns purchases in the given statuses not touched
// since updatedBefore, oldest first
func (s *pgStore) ListPurchasesByStatus(ctx context.Context, statuses []domain.PurchaseStatus, updatedBefore time.Time, limit int) ([]*schema.Purchase, error) {
	if len(statuses) == 0 {
		return []*schema.Purchase{}, nil
	}

	var purchases []*schema.Purchase
	err := s.db.WithContext(ctx).
		Where("status IN ? AND updated_at < ?", statuses, updatedBefore).
		Order("updated_at ASC").
		Limit(limit).
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	return purchases, nil
}

// CreateNotification inserts an in-app notification row
func (s *pgStore) CreateNotification(ctx context.Context, notification *schema.Notification) error {
	if err := s.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// CreateMintSnapshot inserts a mint snapshot, skipping duplicates for the same
// purchase (re-running the post-commit hooks must stay idempotent)
func (s *pgStore) CreateMintSnapshot(ctx context.Context, snapshot *schema.MintSnapshot) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "purchase_id"}},
			DoNothing: true,
		}).
		Create(snapshot).Error
	if err != nil {
		return fmt.Errorf("failed to create mint snapshot: %w", err)
	}
	return nil
}
