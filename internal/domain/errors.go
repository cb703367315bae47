package domain

import "errors"

var (
	// ErrPurchaseNotFound is returned when a purchase does not exist
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrPostNotFound is returned when the post owning a purchase does not exist
	ErrPostNotFound = errors.New("post not found")

	// ErrUserNotFound is returned when a buyer or creator record does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrMissingCreatorWallet is returned when the post creator has no wallet configured
	ErrMissingCreatorWallet = errors.New("creator wallet not configured")

	// ErrMissingBuyerWallet is returned when the purchase carries no buyer wallet snapshot
	ErrMissingBuyerWallet = errors.New("buyer wallet not recorded")
)
