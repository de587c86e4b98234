package domain

import (
	"time"
)

type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorRef is the trimmed author shape nested inside article responses.
type AuthorRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Article struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary,omitempty"`
	Views     int64     `json:"views"`
	Shares    int64     `json:"shares"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ArticleWithAuthor is an article annotated with its author.
// The raw author_id foreign key is never serialized; the nested
// AuthorRef replaces it in every response.
type ArticleWithAuthor struct {
	Article
	Author AuthorRef `json:"author"`
}

// Highlights pairs the article leading in shares with the article
// leading in views for a given scope. The two lookups are independent,
// so both fields may point at the same underlying article.
type Highlights struct {
	MostShares ArticleWithAuthor `json:"mostShares"`
	MostViews  ArticleWithAuthor `json:"mostViews"`
}
