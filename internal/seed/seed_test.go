package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFixture = `
authors:
  - name: John Doe
  - name: Maya Lindqvist
articles:
  - author: John Doe
    title: First Article
    content: Some content here
    views: 10
    shares: 2
  - author: Maya Lindqvist
    title: Second Article
    content: More content
    summary: A stored summary.
    views: 0
    shares: 0
`

func TestLoader_Load(t *testing.T) {
	fixture, err := NewLoader(strings.NewReader(validFixture)).Load(true)
	require.NoError(t, err)

	require.Len(t, fixture.Authors, 2)
	require.Len(t, fixture.Articles, 2)
	assert.Equal(t, "John Doe", fixture.Authors[0].Name)
	assert.Equal(t, "First Article", fixture.Articles[0].Title)
	assert.Equal(t, int64(10), fixture.Articles[0].Views)
	assert.Equal(t, "A stored summary.", fixture.Articles[1].Summary)
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	_, err := NewLoader(strings.NewReader("authors: [")).Load(false)
	assert.Error(t, err)
}

func TestFixture_Validate_UnknownAuthor(t *testing.T) {
	fixture := &Fixture{
		Authors:  []AuthorFixture{{Name: "John Doe"}},
		Articles: []ArticleFixture{{Author: "Nobody", Title: "T", Content: "C"}},
	}

	err := fixture.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown author")
}

func TestFixture_Validate_DuplicateAuthor(t *testing.T) {
	fixture := &Fixture{
		Authors: []AuthorFixture{{Name: "John Doe"}, {Name: "John Doe"}},
	}

	assert.Error(t, fixture.Validate())
}

func TestFixture_Validate_MissingContent(t *testing.T) {
	fixture := &Fixture{
		Authors:  []AuthorFixture{{Name: "John Doe"}},
		Articles: []ArticleFixture{{Author: "John Doe", Title: "T"}},
	}

	assert.Error(t, fixture.Validate())
}

func TestFixture_Validate_NegativeCounters(t *testing.T) {
	fixture := &Fixture{
		Authors:  []AuthorFixture{{Name: "John Doe"}},
		Articles: []ArticleFixture{{Author: "John Doe", Title: "T", Content: "C", Views: -1}},
	}

	assert.Error(t, fixture.Validate())
}
