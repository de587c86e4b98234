package summary

import (
	"context"
	"fmt"
	"testing"

	"newsroom/internal/domain"

	"github.com/stretchr/testify/assert"
)

type stubClient struct {
	resp  *Response
	err   error
	calls int
	last  Request
}

func (c *stubClient) Generate(_ context.Context, req Request) (*Response, error) {
	c.calls++
	c.last = req
	if c.err != nil {
		return nil, c.err
	}
	return c.resp, nil
}

func testArticle() domain.ArticleWithAuthor {
	return domain.ArticleWithAuthor{
		Article: domain.Article{
			ID:      1,
			Title:   "Marathon Training on Four Hours a Week",
			Content: "A progressive twelve-week plan built around three quality sessions.",
			Summary: "A twelve-week marathon plan.",
		},
		Author: domain.AuthorRef{ID: 1, Name: "John Doe"},
	}
}

func TestSummarize_Unconfigured_UsesStoredSummary(t *testing.T) {
	s := NewSummarizer(nil)

	got := s.Summarize(context.Background(), testArticle())

	assert.Equal(t, "A twelve-week marathon plan.", got)
	assert.False(t, s.Configured())
}

func TestSummarize_Unconfigured_FallsBackToContent(t *testing.T) {
	s := NewSummarizer(nil)

	article := testArticle()
	article.Summary = ""

	got := s.Summarize(context.Background(), article)

	assert.Equal(t, article.Content, got)
}

func TestSummarize_Success_ReturnsGeneratedTextVerbatim(t *testing.T) {
	client := &stubClient{resp: &Response{Text: "  Generated summary. "}}
	s := NewSummarizer(client, WithModel("test-model"))

	got := s.Summarize(context.Background(), testArticle())

	assert.Equal(t, "  Generated summary. ", got)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "test-model", client.last.Model)
}

func TestSummarize_PromptCarriesTitleAuthorContent(t *testing.T) {
	client := &stubClient{resp: &Response{Text: "ok"}}
	s := NewSummarizer(client)

	article := testArticle()
	s.Summarize(context.Background(), article)

	if assert.Len(t, client.last.Messages, 3) {
		assert.Equal(t, "system", client.last.Messages[0].Role)
		assert.Contains(t, client.last.Messages[1].Content, article.Title)
		assert.Contains(t, client.last.Messages[1].Content, article.Author.Name)
		assert.Contains(t, client.last.Messages[1].Content, article.Content)
		assert.Contains(t, client.last.Messages[2].Content, "2-3 sentences")
	}
}

func TestSummarize_ProviderFailure_FallsBack_NoRetry(t *testing.T) {
	client := &stubClient{err: fmt.Errorf("connection refused")}
	s := NewSummarizer(client)

	got := s.Summarize(context.Background(), testArticle())

	assert.Equal(t, "A twelve-week marathon plan.", got)
	assert.Equal(t, 1, client.calls, "a failed call must not be retried")
}
