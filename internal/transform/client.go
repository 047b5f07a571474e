package transform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/tonefence/relay/internal/breaker"
	"github.com/tonefence/relay/internal/config"
	"github.com/tonefence/relay/internal/models"
)

const authKeyHeader = "x-relay-auth-key"

type Client struct {
	cfg        *config.TransformConfig
	httpClient *http.Client
	cb         *breaker.Breaker
	fallback   *keywordFallback
	logger     *zap.Logger
}

// NewClient builds the HTTP-backed Transform. Filtering and option
// generation degrade to a local keyword fallback when the service or its
// circuit breaker fails; moderation does too, on the conservative side.
func NewClient(cfg *config.TransformConfig, logger *zap.Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		cb:       breaker.New("transform-circuit-breaker", &cfg.CircuitBreaker, logger),
		fallback: newKeywordFallback(),
		logger:   logger,
	}
}

type transformRequest struct {
	Text string `json:"text"`
}

type incomingResponse struct {
	FilteredText  string    `json:"filtered_text"`
	Category      string    `json:"category"`
	Options       [3]string `json:"options"`
	ContextReason string    `json:"context_reason,omitempty"`
}

type outgoingResponse struct {
	Options  [3]string `json:"options"`
	Category string    `json:"category"`
}

type moderateResponse struct {
	Refused bool   `json:"refused"`
	Text    string `json:"text"`
}

func (c *Client) ProcessIncoming(ctx context.Context, text string) (*IncomingResult, error) {
	var resp incomingResponse
	err := c.post(ctx, "/v1/filter", text, &resp)
	if err != nil {
		c.logger.Warn("Transform service unavailable, using keyword fallback",
			zap.String("operation", "process_incoming"),
			zap.Error(err))
		return c.fallback.processIncoming(text), nil
	}

	return &IncomingResult{
		FilteredText:  resp.FilteredText,
		Category:      category(resp.Category),
		Options:       resp.Options,
		ContextReason: resp.ContextReason,
	}, nil
}

func (c *Client) GenerateOutgoingOptions(ctx context.Context, text string) (*OutgoingResult, error) {
	var resp outgoingResponse
	err := c.post(ctx, "/v1/options", text, &resp)
	if err != nil {
		c.logger.Warn("Transform service unavailable, using keyword fallback",
			zap.String("operation", "generate_outgoing_options"),
			zap.Error(err))
		return c.fallback.generateOutgoing(text), nil
	}

	return &OutgoingResult{
		Options:  resp.Options,
		Category: category(resp.Category),
	}, nil
}

func (c *Client) ModerateCustomReply(ctx context.Context, text string) (string, error) {
	var resp moderateResponse
	err := c.post(ctx, "/v1/moderate", text, &resp)
	if err != nil {
		// The fallback only passes text it can vouch for; hostile content
		// is refused rather than forwarded unmoderated.
		c.logger.Warn("Transform service unavailable, using keyword moderation",
			zap.String("operation", "moderate_custom_reply"),
			zap.Error(err))
		return c.fallback.moderate(text)
	}

	if resp.Refused {
		return "", ErrReplyRefused
	}
	return resp.Text, nil
}

func (c *Client) post(ctx context.Context, path, text string, out interface{}) error {
	return c.cb.Execute(ctx, func() error {
		jsonData, err := json.Marshal(transformRequest{Text: text})
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL+path, bytes.NewBuffer(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(authKeyHeader, c.cfg.AuthKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to send request: %w", err)
		}
		defer func() {
			if closeErr := resp.Body.Close(); closeErr != nil {
				c.logger.Warn("Failed to close response body", zap.Error(closeErr))
			}
		}()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}

		return nil
	})
}

func category(s string) models.MessageCategory {
	if models.MessageCategory(s) == models.CategoryDecisionMaking {
		return models.CategoryDecisionMaking
	}
	return models.CategoryInformational
}

// BreakerState exposes the circuit breaker state for health reporting.
func (c *Client) BreakerState() breaker.State {
	return c.cb.State()
}

// BreakerCounts exposes the circuit breaker window counts.
func (c *Client) BreakerCounts() (requests, failures uint32) {
	return c.cb.Counts()
}
