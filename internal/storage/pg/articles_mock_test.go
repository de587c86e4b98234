package pg

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsroom/internal/apperr"
	"newsroom/internal/query"
	"newsroom/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
)

var articleRowColumns = []string{
	"id", "title", "content", "summary", "views", "shares",
	"created_at", "updated_at", "author_id", "author_name",
}

func newMockStore(t *testing.T) (pgxmock.PgxPoolIface, *ArticleStore) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	// List and Highlights fan their queries out concurrently, so the
	// arrival order at the mock is not deterministic.
	mock.MatchExpectationsInOrder(false)

	return mock, NewArticleStore(mock)
}

func mockArticleRow(rows *pgxmock.Rows, id int64, title string, views, shares int64) *pgxmock.Rows {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return rows.AddRow(id, title, "content", "", views, shares, now, now, int64(1), "John Doe")
}

func TestArticleStore_List_Defaults(t *testing.T) {
	mock, store := newMockStore(t)

	rows := pgxmock.NewRows(articleRowColumns)
	mockArticleRow(rows, 1, "First", 10, 1)
	mockArticleRow(rows, 2, "Second", 20, 2)

	mock.ExpectQuery(`FROM articles a JOIN authors au ON au\.id = a\.author_id ORDER BY a\.id ASC`).
		WithArgs(10, 0).
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))

	items, total, err := store.List(context.Background(), storage.ListArticlesParams{Page: 1, Limit: 10, Sort: query.Desc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if total != 12 {
		t.Errorf("expected total 12, got %d", total)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "First" || items[0].Author.Name != "John Doe" {
		t.Errorf("unexpected first item: %+v", items[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestArticleStore_List_FilteredAndSorted(t *testing.T) {
	mock, store := newMockStore(t)

	rows := pgxmock.NewRows(articleRowColumns)
	mockArticleRow(rows, 3, "Cup final", 500, 50)

	mock.ExpectQuery(`WHERE a\.author_id = \$1 AND \(a\.title ILIKE \$2 OR a\.content ILIKE \$2\) ORDER BY a\.views DESC, a\.id ASC`).
		WithArgs(int64(3), "%cup%", 5, 5).
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM articles a WHERE`).
		WithArgs(int64(3), "%cup%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(6)))

	authorID := int64(3)
	sortBy := query.ByViews
	items, total, err := store.List(context.Background(), storage.ListArticlesParams{
		AuthorID: &authorID,
		Search:   "cup",
		SortBy:   &sortBy,
		Sort:     query.Desc,
		Page:     2,
		Limit:    5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if total != 6 {
		t.Errorf("expected total 6, got %d", total)
	}
	if len(items) != 1 || items[0].ID != 3 {
		t.Errorf("unexpected items: %+v", items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestArticleStore_List_QueryError(t *testing.T) {
	mock, store := newMockStore(t)

	mock.ExpectQuery(`FROM articles a JOIN authors`).
		WithArgs(10, 0).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

	_, _, err := store.List(context.Background(), storage.ListArticlesParams{Page: 1, Limit: 10, Sort: query.Desc})
	if err == nil {
		t.Fatal("expected error when the page query fails")
	}
}

func TestArticleStore_Highlights(t *testing.T) {
	mock, store := newMockStore(t)

	sharesRows := pgxmock.NewRows(articleRowColumns)
	mockArticleRow(sharesRows, 4, "Most shared", 100, 90)
	viewsRows := pgxmock.NewRows(articleRowColumns)
	mockArticleRow(viewsRows, 5, "Most viewed", 900, 10)

	mock.ExpectQuery(`WHERE a\.author_id = \$1 ORDER BY a\.shares DESC, a\.id ASC LIMIT 1`).
		WithArgs(int64(2)).
		WillReturnRows(sharesRows)
	mock.ExpectQuery(`WHERE a\.author_id = \$1 ORDER BY a\.views DESC, a\.id ASC LIMIT 1`).
		WithArgs(int64(2)).
		WillReturnRows(viewsRows)

	authorID := int64(2)
	highlights, err := store.Highlights(context.Background(), &authorID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if highlights.MostShares.ID != 4 {
		t.Errorf("expected most shared id 4, got %d", highlights.MostShares.ID)
	}
	if highlights.MostViews.ID != 5 {
		t.Errorf("expected most viewed id 5, got %d", highlights.MostViews.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestArticleStore_Highlights_EmptyScope(t *testing.T) {
	mock, store := newMockStore(t)

	mock.ExpectQuery(`ORDER BY a\.shares DESC, a\.id ASC LIMIT 1`).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`ORDER BY a\.views DESC, a\.id ASC LIMIT 1`).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	authorID := int64(99)
	_, err := store.Highlights(context.Background(), &authorID)

	var nre *apperr.NoResultsError
	if !errors.As(err, &nre) {
		t.Fatalf("expected no-results error, got %v", err)
	}
}

func TestArticleStore_GetByID(t *testing.T) {
	mock, store := newMockStore(t)

	rows := pgxmock.NewRows(articleRowColumns)
	mockArticleRow(rows, 7, "Found", 10, 1)

	mock.ExpectQuery(`WHERE a\.id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	article, err := store.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if article.Title != "Found" {
		t.Errorf("unexpected article: %+v", article)
	}
}

func TestArticleStore_GetByID_NotFound(t *testing.T) {
	mock, store := newMockStore(t)

	mock.ExpectQuery(`WHERE a\.id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	_, err := store.GetByID(context.Background(), 42)

	var nfe *apperr.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if nfe.Message != "Article with id 42 not found" {
		t.Errorf("unexpected message: %q", nfe.Message)
	}
}
