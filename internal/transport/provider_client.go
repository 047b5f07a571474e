package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tonefence/relay/internal/breaker"
	"github.com/tonefence/relay/internal/config"
	"github.com/tonefence/relay/internal/phone"
)

// ProviderClient sends SMS through a Twilio-style Messages API:
// form-encoded POST, JSON response carrying a message SID.
type ProviderClient struct {
	cfg        *config.TransportConfig
	httpClient *http.Client
	cb         *breaker.Breaker
	logger     *zap.Logger
}

func NewProviderClient(cfg *config.TransportConfig, logger *zap.Logger) *ProviderClient {
	return &ProviderClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		cb:     breaker.New("transport-circuit-breaker", &cfg.CircuitBreaker, logger),
		logger: logger,
	}
}

type messageResponse struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Send posts the message to the provider and returns its SID.
func (c *ProviderClient) Send(ctx context.Context, to, body string) (string, error) {
	var sid string

	err := c.cb.Execute(ctx, func() error {
		form := url.Values{}
		form.Set("To", to)
		form.Set("From", c.cfg.FromNumber)
		form.Set("Body", body)

		endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.cfg.APIURL, c.cfg.AccountSID)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to send request: %w", err)
		}
		defer func() {
			if closeErr := resp.Body.Close(); closeErr != nil {
				c.logger.Warn("Failed to close response body", zap.Error(closeErr))
			}
		}()

		var msgResp messageResponse
		if err := json.NewDecoder(resp.Body).Decode(&msgResp); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
			return fmt.Errorf("provider rejected message: status %d, code %d: %s",
				resp.StatusCode, msgResp.Code, msgResp.Message)
		}
		if msgResp.SID == "" {
			return fmt.Errorf("provider response missing message sid")
		}

		sid = msgResp.SID
		return nil
	})
	if err != nil {
		return "", err
	}

	c.logger.Info("Message sent",
		zap.String("to", to),
		zap.String("sid", sid))

	return sid, nil
}

// NormalizeAddress canonicalizes a raw phone string.
func (c *ProviderClient) NormalizeAddress(raw string) string {
	return phone.Normalize(raw)
}

// IsValidAddress reports whether a canonical address is usable.
func (c *ProviderClient) IsValidAddress(canonical string) bool {
	return phone.IsValid(canonical)
}

// BreakerState exposes the circuit breaker state for health reporting.
func (c *ProviderClient) BreakerState() breaker.State {
	return c.cb.State()
}

// BreakerCounts exposes the circuit breaker window counts.
func (c *ProviderClient) BreakerCounts() (requests, failures uint32) {
	return c.cb.Counts()
}
