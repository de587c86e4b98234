package summary

import (
	"context"
	"fmt"
	"log/slog"

	"newsroom/internal/domain"
)

const systemInstruction = "You are a helpful assistant that summarizes articles."

const userInstruction = "Summarize the article in 2-3 sentences. Do not include any other text."

// Summarizer produces an article summary through the configured client,
// or falls back deterministically when no client is configured or the
// call fails. Summarize never returns an error to the caller; upstream
// failures are absorbed here and only logged.
type Summarizer struct {
	client Client
	model  string
}

type SummarizerOption func(*Summarizer)

// NewSummarizer builds a summarizer. A nil client is the unconfigured
// variant: every call takes the fallback path without touching the
// network. The decision is made once at process start.
func NewSummarizer(client Client, opts ...SummarizerOption) *Summarizer {
	s := &Summarizer{
		client: client,
		model:  defaultModel,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func WithModel(model string) SummarizerOption {
	return func(s *Summarizer) {
		s.model = model
	}
}

func (s *Summarizer) Configured() bool {
	return s.client != nil
}

func (s *Summarizer) Summarize(ctx context.Context, article domain.ArticleWithAuthor) string {
	if s.client == nil {
		slog.Error("Summary client not configured, using fallback", "article_id", article.ID)
		return fallback(article)
	}

	slog.Info("Generating article summary", "article_id", article.ID)

	resp, err := s.client.Generate(ctx, Request{
		Model: s.model,
		Messages: []Message{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: fmt.Sprintf("Title: %s. Author: %s. Content: %s",
				article.Title, article.Author.Name, article.Content)},
			{Role: "user", Content: userInstruction},
		},
	})
	if err != nil {
		slog.Error("Failed to generate article summary", "article_id", article.ID, "error", err)
		return fallback(article)
	}

	return resp.Text
}

// fallback returns the stored summary when present, else the raw content.
func fallback(article domain.ArticleWithAuthor) string {
	if article.Summary != "" {
		return article.Summary
	}
	return article.Content
}
