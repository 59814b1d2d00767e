package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"

	"github.com/roivaz/llm-commit/internal/logging"
)

// Config holds the model invocation parameters for a single run.
type Config struct {
	Model       string
	ServerURL   string
	MaxTokens   int
	Temperature float64
	CallTimeout time.Duration
	Logger      logr.Logger
}

// Client wraps the ollama-backed langchaingo model. One Generate call per run,
// no retries; a failure is fatal to the run.
type Client struct {
	llm *ollama.LLM
	cfg Config
	log logging.Logger
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("llm model name is required")
	}

	opts := []ollama.Option{
		ollama.WithModel(cfg.Model),
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithKeepAlive("5m"),
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}

	return &Client{llm: client, cfg: cfg, log: logging.New(cfg.Logger)}, nil
}

// Generate performs the single completion call with the configured model,
// token budget and temperature.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextContent{Text: system}},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextContent{Text: user}},
		},
	}

	c.log.Debug("invoking model", "model", c.cfg.Model, "max_tokens", c.cfg.MaxTokens, "temperature", c.cfg.Temperature)

	resp, err := c.llm.GenerateContent(ctx, messages,
		llms.WithMaxTokens(c.cfg.MaxTokens),
		llms.WithTemperature(c.cfg.Temperature),
	)
	if err != nil {
		return "", c.annotateError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty model response")
	}
	return resp.Choices[0].Content, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.CallTimeout)
}

func (c *Client) annotateError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("llm call timed out after %s: %w", c.cfg.CallTimeout, err)
	}
	return err
}
