package summary

import (
	"context"
)

const defaultModel = "gpt-4.1"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Request struct {
	Model string `json:"model"`

	// Messages is the ordered conversation sent to the provider.
	Messages []Message `json:"messages"`
}

type Response struct {
	// Text is the provider's generated text, returned verbatim.
	Text string `json:"text"`
}

// Client generates text through an external provider. A nil Client on
// the Summarizer means no credential was configured at startup.
type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}
