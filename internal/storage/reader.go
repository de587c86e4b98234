package storage

import (
	"context"

	"newsroom/internal/domain"
	"newsroom/internal/query"
)

// ListArticlesParams is the validated input for an article listing.
// Optional fields are nil/empty when absent; the store composes only
// the predicates that are present.
type ListArticlesParams struct {
	AuthorID *int64
	Search   string
	SortBy   *query.Metric
	Sort     query.Direction
	Page     int
	Limit    int
}

// ArticleReader is the read surface the HTTP layer depends on.
type ArticleReader interface {
	// List returns one page of articles plus the total match count for
	// the same filter, so pagination metadata stays consistent with the
	// returned rows.
	List(ctx context.Context, p ListArticlesParams) ([]domain.ArticleWithAuthor, int64, error)

	// Highlights returns the most-shared and most-viewed articles for an
	// optional author scope, or a no-results error when the scope is empty.
	Highlights(ctx context.Context, authorID *int64) (*domain.Highlights, error)

	// GetByID returns one article with its author, or a not-found error.
	GetByID(ctx context.Context, id int64) (*domain.ArticleWithAuthor, error)
}

type AuthorReader interface {
	List(ctx context.Context) ([]domain.Author, error)
}
