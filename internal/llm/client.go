package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/tidwall/gjson"
)

// GenerateRequest holds the parameters for one generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of a generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client provides access to a language model for text generation.
type Client interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// messagesClient implements Client over the Anthropic messages API.
type messagesClient struct {
	cfg      Config
	api      anthropic.Client
	observer Observer
}

// NewClient creates a Client for cfg.Endpoint. Retries and backoff are left
// to the SDK, bounded by cfg.MaxRetries.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	opts := []option.RequestOption{
		option.WithBaseURL(cfg.Endpoint),
		option.WithMaxRetries(cfg.MaxRetries),
		option.WithHTTPClient(&http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		}),
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	} else {
		opts = append(opts, option.WithHeaderDel("x-api-key"))
	}
	if cfg.Version != "" {
		opts = append(opts, option.WithHeader("anthropic-version", cfg.Version))
	}
	if path := messagesPath(cfg); path != "" {
		opts = append(opts, option.WithMiddleware(rewritePath(path)))
	}
	return &messagesClient{
		cfg:      cfg,
		api:      anthropic.NewClient(opts...),
		observer: observer,
	}
}

// messagesPath returns the request path when cfg.Path differs from the
// SDK's own, or "" when no rewrite is needed.
func messagesPath(cfg Config) string {
	if cfg.Path == "" || cfg.Path == "/v1/messages" {
		return ""
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return cfg.Path
	}
	return strings.TrimRight(u.Path, "/") + cfg.Path
}

// rewritePath points every request at path, for proxies that expose the
// messages endpoint somewhere else.
func rewritePath(path string) option.Middleware {
	return func(r *http.Request, next option.MiddlewareNext) (*http.Response, error) {
		r.URL.Path = path
		r.URL.RawPath = ""
		return next(r)
	}
}

// countAttempts increments n once per HTTP attempt, retries included.
func countAttempts(n *atomic.Int32) option.Middleware {
	return func(r *http.Request, next option.MiddlewareNext) (*http.Response, error) {
		n.Add(1)
		return next(r)
	}
}

// DisabledClient fails every call with ErrDisabled.
type DisabledClient struct{}

func (DisabledClient) Generate(context.Context, GenerateRequest) (*GenerateResponse, error) {
	return nil, ErrDisabled
}

// statusError carries a non-2xx reply.
type statusError struct {
	code    int
	message string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("endpoint returned status %d: %s", e.code, e.message)
}

func (e *statusError) Unwrap() error { return ErrAPI }

// fromAPIError lifts the SDK error into a statusError, preferring the
// error.message member of the reply body.
func fromAPIError(apiErr *anthropic.Error) *statusError {
	raw := apiErr.RawJSON()
	msg := gjson.Get(raw, "error.message").String()
	if msg == "" {
		msg = strings.TrimSpace(raw)
	}
	return &statusError{code: apiErr.StatusCode, message: msg}
}

// firstText returns the first non-empty text block.
func firstText(msg *anthropic.Message) string {
	for _, b := range msg.Content {
		if b.Type == "text" && b.Text != "" {
			return b.Text
		}
	}
	return ""
}

func (c *messagesClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	var temp *float64
	if req.Temperature != nil {
		temp = req.Temperature
	} else if taskCfg.Temperature > 0 {
		t := taskCfg.Temperature
		temp = &t
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}
	if maxTok <= 0 {
		maxTok = 4000
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.cfg.Model),
		MaxTokens: int64(maxTok),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserPrompt)),
		},
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}
	if temp != nil {
		params.Temperature = anthropic.Float(*temp)
	}

	var attempts atomic.Int32
	msg, err := c.api.Messages.New(ctx, params, option.WithMiddleware(countAttempts(&attempts)))
	if err == nil && firstText(msg) == "" {
		err = ErrEmptyResponse
	}
	if err == nil {
		latency := time.Since(start).Milliseconds()
		c.observer.OnCallComplete(CallEvent{
			Task:      req.Task,
			Model:     c.cfg.Model,
			LatencyMs: latency,
			Attempts:  int(attempts.Load()),
			Success:   true,
		})
		return &GenerateResponse{
			Text:      firstText(msg),
			Model:     string(msg.Model),
			LatencyMs: latency,
		}, nil
	}

	var apiErr *anthropic.Error
	switch {
	case ctx.Err() != nil:
		err = ErrTimeout
	case errors.As(err, &apiErr):
		err = fromAPIError(apiErr)
	case isConnectionError(err):
		err = fmt.Errorf("%w: %v", ErrUnavailable, err)
	case !errors.Is(err, ErrEmptyResponse):
		err = fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	}

	c.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Attempts:  int(attempts.Load()),
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return nil, err
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrAPI):
		return "API_ERROR"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY"
	default:
		return "UNKNOWN"
	}
}
