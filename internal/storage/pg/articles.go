package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"newsroom/internal/apperr"
	"newsroom/internal/domain"
	"newsroom/internal/query"
	"newsroom/internal/storage"
	"newsroom/pkg/pagination"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

// articleColumns is the shared select list for article-with-author rows.
// The stored summary may be NULL; it surfaces as an empty string.
const articleColumns = `a.id, a.title, a.content, COALESCE(a.summary, ''), a.views, a.shares, a.created_at, a.updated_at, au.id, au.name`

const articleFrom = `FROM articles a JOIN authors au ON au.id = a.author_id`

type ArticleStore struct {
	db DB
}

func NewArticleStore(db DB) *ArticleStore {
	return &ArticleStore{db: db}
}

func listFilter(authorID *int64, search string) *query.Filter {
	f := query.NewFilter()
	if authorID != nil {
		f.Where(query.Eq{Column: "a.author_id", Value: *authorID})
	}
	if search != "" {
		f.Where(query.ContainsAny{Columns: []string{"a.title", "a.content"}, Term: search})
	}
	return f
}

// List runs the page query and the count query concurrently, both built
// from the same filter. Either failing fails the whole call.
func (s *ArticleStore) List(ctx context.Context, p storage.ListArticlesParams) ([]domain.ArticleWithAuthor, int64, error) {
	where, args := listFilter(p.AuthorID, p.Search).Build(1)

	whereSQL := ""
	if where != "" {
		whereSQL = " WHERE " + where
	}

	// Ordering always tie-breaks by primary key so pages are stable
	// across requests even without an explicit sort key.
	orderBy := "a.id ASC"
	if p.SortBy != nil {
		orderBy = fmt.Sprintf("a.%s %s, a.id ASC", p.SortBy.Column(), p.Sort.SQL())
	}

	req := pagination.OffsetRequest{Page: p.Page, Limit: p.Limit}
	req.Normalize()

	pageSQL := fmt.Sprintf(`SELECT %s %s%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		articleColumns, articleFrom, whereSQL, orderBy, len(args)+1, len(args)+2)
	pageArgs := append(append([]any{}, args...), req.Limit, req.Offset())

	countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM articles a%s`, whereSQL)

	slog.Debug("Listing articles",
		"where", where,
		"order_by", orderBy,
		"page", p.Page,
		"limit", p.Limit)

	var items []domain.ArticleWithAuthor
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.db.Query(gctx, pageSQL, pageArgs...)
		if err != nil {
			return fmt.Errorf("failed to execute article page query: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			article, err := scanArticleWithAuthor(rows)
			if err != nil {
				return err
			}
			items = append(items, *article)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := s.db.QueryRow(gctx, countSQL, args...).Scan(&total); err != nil {
			return fmt.Errorf("failed to count articles: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Highlights issues the most-shared and most-viewed lookups concurrently.
// Both must yield a row; an empty scope reports a no-results error rather
// than partial highlights.
func (s *ArticleStore) Highlights(ctx context.Context, authorID *int64) (*domain.Highlights, error) {
	var mostShares, mostViews *domain.ArticleWithAuthor

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		mostShares, err = s.topByMetric(gctx, query.ByShares, authorID)
		return err
	})
	g.Go(func() error {
		var err error
		mostViews, err = s.topByMetric(gctx, query.ByViews, authorID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if mostShares == nil || mostViews == nil {
		return nil, apperr.NewNoResults("No highlights found for this author")
	}

	return &domain.Highlights{MostShares: *mostShares, MostViews: *mostViews}, nil
}

// topByMetric returns the single leading article for one metric, or nil
// when the scope has no articles at all.
func (s *ArticleStore) topByMetric(ctx context.Context, metric query.Metric, authorID *int64) (*domain.ArticleWithAuthor, error) {
	f := query.NewFilter()
	if authorID != nil {
		f.Where(query.Eq{Column: "a.author_id", Value: *authorID})
	}
	where, args := f.Build(1)

	whereSQL := ""
	if where != "" {
		whereSQL = " WHERE " + where
	}

	sql := fmt.Sprintf(`SELECT %s %s%s ORDER BY a.%s DESC, a.id ASC LIMIT 1`,
		articleColumns, articleFrom, whereSQL, metric.Column())

	article, err := scanArticleWithAuthor(s.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch top article by %s: %w", metric, err)
	}

	return article, nil
}

func (s *ArticleStore) GetByID(ctx context.Context, id int64) (*domain.ArticleWithAuthor, error) {
	sql := fmt.Sprintf(`SELECT %s %s WHERE a.id = $1`, articleColumns, articleFrom)

	article, err := scanArticleWithAuthor(s.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NewNotFound(fmt.Sprintf("Article with id %d not found", id))
		}
		return nil, fmt.Errorf("failed to fetch article %d: %w", id, err)
	}

	return article, nil
}

func scanArticleWithAuthor(row pgx.Row) (*domain.ArticleWithAuthor, error) {
	var a domain.ArticleWithAuthor
	if err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Summary,
		&a.Views,
		&a.Shares,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.Author.ID,
		&a.Author.Name,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan article row: %w", err)
	}
	return &a, nil
}

// Compile-time interface assertion
var _ storage.ArticleReader = (*ArticleStore)(nil)
