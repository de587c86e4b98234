package pg

import (
	"context"
	"fmt"

	"newsroom/internal/domain"
	"newsroom/internal/storage"
)

type AuthorStore struct {
	db DB
}

func NewAuthorStore(db DB) *AuthorStore {
	return &AuthorStore{db: db}
}

func (s *AuthorStore) List(ctx context.Context) ([]domain.Author, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, created_at, updated_at FROM authors ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	var authors []domain.Author
	for rows.Next() {
		var a domain.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author row: %w", err)
		}
		authors = append(authors, a)
	}

	return authors, rows.Err()
}

// Compile-time interface assertion
var _ storage.AuthorReader = (*AuthorStore)(nil)
