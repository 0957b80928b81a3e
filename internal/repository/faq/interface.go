// File: internal/repository/faq/interface.go
package faq

import (
	"context"

	"github.com/medibot-health/go-medibot/internal/domain"
)

// FAQRepository handles FAQ data operations.
type FAQRepository interface {
	Create(ctx context.Context, f *domain.FAQ) (*domain.FAQ, error)
	Search(ctx context.Context, query string, limit int) ([]domain.FAQ, error)
	SearchLike(ctx context.Context, query string, limit int) ([]domain.FAQ, error)
}
