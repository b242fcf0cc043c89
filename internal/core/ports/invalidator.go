// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/purge/internal/core/domain"
)

// Invalidator defines the interface for purging cached content from the CDN.
//
//go:generate mockgen -source=invalidator.go -destination=mocks/mock_invalidator.go -package=mocks
type Invalidator interface {
	// CreateInvalidation submits a single invalidation request.
	// It does not retry; any error is returned as-is so the caller can report it.
	CreateInvalidation(ctx context.Context, req domain.InvalidationRequest) (*domain.InvalidationReceipt, error)
}
