// Package ai generates task suggestions and free-form content through a
// hosted language model
package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/trssantos/wellness-tracker-sub005/internal/apperr"
	"github.com/trssantos/wellness-tracker-sub005/internal/models"
)

// Provider names.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

const (
	DefaultTimeout  = 30 * time.Second
	DefaultCacheTTL = 10 * time.Minute
)

// MaxEnergyLevel is the top of the energy scale, which starts at 1.
const MaxEnergyLevel = 10

// UserMessage is shown when tasks cannot be generated.
const UserMessage = "Failed to generate tasks. Please try again."

var (
	// ErrRequestFailed covers transport failures and error responses from a
	// provider.
	ErrRequestFailed = &apperr.Error{
		Message: "AI request failed",
	}

	// ErrMalformedResponse is returned when a provider answers but the answer
	// does not contain usable JSON.
	ErrMalformedResponse = &apperr.Error{
		Message: "AI response is malformed",
	}

	errUnknownProvider = &apperr.Error{
		Message: "unknown AI provider %q: expected openai or gemini",
	}

	errMissingAPIKey = &apperr.Error{
		Message: "no API key configured for the %s provider",
	}
)

// Provider turns a prompt into raw model output.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Endpoint configures one provider.
type Endpoint struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Config selects and configures the providers.
type Config struct {
	Provider string
	OpenAI   Endpoint
	Gemini   Endpoint
	Timeout  time.Duration
	CacheTTL time.Duration
}

// TaskContext describes the user's day for task generation.
type TaskContext struct {
	Mood        string
	EnergyLevel int
	Objective   string
	Context     string
}

// TaskPlan is the validated result of task generation.
type TaskPlan struct {
	Categories []models.TaskCategory `json:"categories"`
}

// Service sends prompts to the active provider. Identical prompts are served
// from a cache until they expire.
type Service struct {
	providers map[string]Provider
	cache     *gocache.Cache
	active    string
	timeout   time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithProvider registers p under its name, replacing any provider built from
// the configuration.
func WithProvider(p Provider) Option {
	return func(s *Service) {
		s.providers[p.Name()] = p
	}
}

// WithHTTPClient sets the client used by the built-in providers.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) {
		for _, p := range s.providers {
			switch v := p.(type) {
			case *OpenAI:
				v.client = c
			case *Gemini:
				v.client = c
			}
		}
	}
}

// New builds a service from cfg.
func New(cfg Config, opts ...Option) (*Service, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	s := &Service{
		providers: map[string]Provider{
			ProviderOpenAI: NewOpenAI(cfg.OpenAI),
			ProviderGemini: NewGemini(cfg.Gemini),
		},
		cache:   gocache.New(ttl, 2*ttl),
		timeout: timeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	name := cfg.Provider
	if name == "" {
		name = ProviderOpenAI
	}

	if err := s.Use(name); err != nil {
		return nil, err
	}

	return s, nil
}

// Use switches the active provider. An empty name keeps the current one.
func (s *Service) Use(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}

	if _, ok := s.providers[name]; !ok {
		return errUnknownProvider.Fmt(name)
	}

	s.active = name

	return nil
}

// Active returns the name of the active provider.
func (s *Service) Active() string {
	return s.active
}

func cacheKey(provider, prompt string) string {
	sum := sha256.Sum256([]byte(provider + "\x00" + prompt))
	return hex.EncodeToString(sum[:])
}

// GenerateContent returns the raw model output for prompt.
func (s *Service) GenerateContent(ctx context.Context, prompt string) (string, error) {
	key := cacheKey(s.active, prompt)

	if v, found := s.cache.Get(key); found {
		if text, ok := v.(string); ok {
			slog.Debug("ai cache hit", "provider", s.active)
			return text, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()

	text, err := s.providers[s.active].Complete(ctx, prompt)
	if err != nil {
		slog.Error(
			"ai request failed",
			"provider", s.active,
			"error", err,
		)

		return "", err
	}

	slog.Info(
		"ai request completed",
		"provider", s.active,
		"elapsed", time.Since(start),
		"bytes", len(text),
	)

	s.cache.SetDefault(key, text)

	return text, nil
}

// GenerateTasks asks the model for task categories suited to tc. The
// response is validated before it is returned.
func (s *Service) GenerateTasks(ctx context.Context, tc TaskContext) (TaskPlan, error) {
	text, err := s.GenerateContent(ctx, TaskPrompt(tc))
	if err != nil {
		return TaskPlan{}, err
	}

	plan, err := ParseTaskPlan(text)
	if err != nil {
		s.cache.Delete(cacheKey(s.active, TaskPrompt(tc)))

		slog.Error(
			"ai task response rejected",
			"provider", s.active,
			"error", err,
		)

		return TaskPlan{}, err
	}

	return plan, nil
}

// TaskPrompt builds the task generation prompt.
func TaskPrompt(tc TaskContext) string {
	var b strings.Builder

	b.WriteString("Suggest a short, realistic checklist for today.\n")

	if tc.Mood != "" {
		fmt.Fprintf(&b, "Current mood: %s\n", tc.Mood)
	}

	if tc.EnergyLevel > 0 {
		fmt.Fprintf(&b, "Energy level: %d out of %d\n", tc.EnergyLevel, MaxEnergyLevel)
	}

	if tc.Objective != "" {
		fmt.Fprintf(&b, "Main objective: %s\n", tc.Objective)
	}

	if tc.Context != "" {
		fmt.Fprintf(&b, "Additional context: %s\n", tc.Context)
	}

	b.WriteString(`Group the tasks into 2 to 4 categories. Respond with JSON only, in this shape:
{"categories":[{"title":"Category name","items":["First task","Second task"]}]}`)

	return b.String()
}
