package ai

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "gemini-1.5-flash"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Gemini talks to the Gemini generateContent REST endpoint.
type Gemini struct {
	client *http.Client
	cfg    Endpoint
}

// NewGemini returns a provider for cfg, filling in the public endpoint and a
// default model.
func NewGemini(cfg Endpoint) *Gemini {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGeminiBaseURL
	}

	if cfg.Model == "" {
		cfg.Model = defaultGeminiModel
	}

	return &Gemini{cfg: cfg, client: http.DefaultClient}
}

func (g *Gemini) Name() string {
	return ProviderGemini
}

func (g *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	if g.cfg.APIKey == "" {
		return "", errMissingAPIKey.Fmt(ProviderGemini)
	}

	req := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
	}

	header := http.Header{}
	header.Set("x-goog-api-key", g.cfg.APIKey)

	endpoint := strings.TrimRight(g.cfg.BaseURL, "/") +
		"/models/" + url.PathEscape(g.cfg.Model) + ":generateContent"

	var resp geminiResponse

	if err := postJSON(ctx, g.client, endpoint, header, req, &resp); err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 {
		return "", ErrMalformedResponse.Wrap(errors.New("no candidates in response"))
	}

	var b strings.Builder

	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}

	return b.String(), nil
}
