package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"newsroom/internal/storage/pg"

	"gopkg.in/yaml.v3"
)

// Fixture is the YAML seed shape: authors by name, articles referencing
// their author by name so the fixture stays independent of generated ids.
type Fixture struct {
	Authors  []AuthorFixture  `yaml:"authors"`
	Articles []ArticleFixture `yaml:"articles"`
}

type AuthorFixture struct {
	Name string `yaml:"name"`
}

type ArticleFixture struct {
	Author  string `yaml:"author"`
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	Summary string `yaml:"summary,omitempty"`
	Views   int64  `yaml:"views"`
	Shares  int64  `yaml:"shares"`
}

type Loader struct {
	reader io.Reader
}

func NewLoader(reader io.Reader) *Loader {
	return &Loader{reader: reader}
}

func (l *Loader) Load(validate bool) (*Fixture, error) {
	decoder := yaml.NewDecoder(l.reader)
	var fixture Fixture
	if err := decoder.Decode(&fixture); err != nil {
		return nil, err
	}
	if validate {
		if err := fixture.Validate(); err != nil {
			return nil, err
		}
	}
	return &fixture, nil
}

func (f *Fixture) Validate() error {
	names := make(map[string]bool, len(f.Authors))
	for _, a := range f.Authors {
		if a.Name == "" {
			return fmt.Errorf("author with empty name")
		}
		if names[a.Name] {
			return fmt.Errorf("duplicate author name: %q", a.Name)
		}
		names[a.Name] = true
	}

	for i, ar := range f.Articles {
		if ar.Title == "" || ar.Content == "" {
			return fmt.Errorf("article %d: title and content are required", i)
		}
		if !names[ar.Author] {
			return fmt.Errorf("article %q references unknown author %q", ar.Title, ar.Author)
		}
		if ar.Views < 0 || ar.Shares < 0 {
			return fmt.Errorf("article %q: views and shares must be non-negative", ar.Title)
		}
	}

	return nil
}

// Apply upserts the fixture. Authors conflict on name, articles on
// (author_id, title), so seeding an already-seeded database is a no-op
// for existing rows.
func Apply(ctx context.Context, db pg.DB, f *Fixture) error {
	authorIDs := make(map[string]int64, len(f.Authors))

	for _, a := range f.Authors {
		var id int64
		err := db.QueryRow(ctx, `
			INSERT INTO authors (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET updated_at = now()
			RETURNING id
		`, a.Name).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to seed author %q: %w", a.Name, err)
		}
		authorIDs[a.Name] = id
	}

	inserted := 0
	for _, ar := range f.Articles {
		var summary any
		if ar.Summary != "" {
			summary = ar.Summary
		}

		tag, err := db.Exec(ctx, `
			INSERT INTO articles (author_id, title, content, summary, views, shares)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (author_id, title) DO NOTHING
		`, authorIDs[ar.Author], ar.Title, ar.Content, summary, ar.Views, ar.Shares)
		if err != nil {
			return fmt.Errorf("failed to seed article %q: %w", ar.Title, err)
		}
		inserted += int(tag.RowsAffected())
	}

	slog.Info("Seed applied", "authors", len(f.Authors), "articles", inserted)
	return nil
}
