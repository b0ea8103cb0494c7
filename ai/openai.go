package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4o-mini"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// OpenAI talks to an OpenAI compatible chat-completions endpoint.
type OpenAI struct {
	client *http.Client
	cfg    Endpoint
}

// NewOpenAI returns a provider for cfg, filling in the public endpoint and a
// default model.
func NewOpenAI(cfg Endpoint) *OpenAI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenAIBaseURL
	}

	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
	}

	return &OpenAI{cfg: cfg, client: http.DefaultClient}
}

func (o *OpenAI) Name() string {
	return ProviderOpenAI
}

func (o *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	if o.cfg.APIKey == "" {
		return "", errMissingAPIKey.Fmt(ProviderOpenAI)
	}

	req := chatRequest{
		Model: o.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a helpful wellness and productivity assistant."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+o.cfg.APIKey)

	url := strings.TrimRight(o.cfg.BaseURL, "/") + "/chat/completions"

	var resp chatResponse

	if err := postJSON(ctx, o.client, url, header, req, &resp); err != nil {
		return "", err
	}

	if resp.Error != nil {
		return "", ErrRequestFailed.Wrap(errors.New(resp.Error.Message))
	}

	if len(resp.Choices) == 0 {
		return "", ErrMalformedResponse.Wrap(errors.New("empty choices in response"))
	}

	return resp.Choices[0].Message.Content, nil
}
