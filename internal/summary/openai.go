package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"newsroom/internal/apperr"
)

const defaultBaseURL = "https://api.openai.com"

const defaultTimeout = 60 * time.Second

type OpenAIConfig func(client *OpenAIClient)

// OpenAIClient talks to an OpenAI-compatible chat-completions endpoint.
type OpenAIClient struct {
	base   url.URL
	apiKey string
	http   *http.Client
}

func NewOpenAIClient(baseUrl, apiKey string, opts ...OpenAIConfig) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, apperr.NewValidation("missing api key")
	}
	if baseUrl == "" {
		baseUrl = defaultBaseURL
	}

	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, err
	}

	client := &OpenAIClient{
		base:   *base,
		apiKey: apiKey,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, cfg := range opts {
		cfg(client)
	}

	return client, nil
}

func WithHttpClient(httpClient *http.Client) OpenAIConfig {
	return func(client *OpenAIClient) {
		client.http = httpClient
	}
}

type chatCompletionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func (oc *OpenAIClient) Generate(ctx context.Context, req Request) (*Response, error) {
	if len(req.Messages) == 0 {
		return nil, apperr.NewValidation("missing messages to generate from")
	}

	model := req.Model
	if model == "" {
		model = defaultModel
	}

	oReq := chatCompletionRequest{
		Model:    model,
		Messages: req.Messages,
	}

	var resp chatCompletionResponse
	if err := oc.do(ctx, http.MethodPost, "/v1/chat/completions", oReq, &resp); err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("provider returned no choices")
	}

	return &Response{Text: resp.Choices[0].Message.Content}, nil
}

func (oc *OpenAIClient) do(ctx context.Context, method, path string, reqData, respData any) error {
	reqDataBytes, err := json.Marshal(reqData)
	if err != nil {
		return err
	}

	reqURL := oc.base.JoinPath(path)
	request, err := http.NewRequestWithContext(ctx, method, reqURL.String(), bytes.NewReader(reqDataBytes))
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Authorization", "Bearer "+oc.apiKey)

	resp, err := oc.http.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, respData); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
