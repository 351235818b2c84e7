package n8n

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Trio2/telegram-construction-bot/internal/domain"
)

const defaultSubmitTimeout = 10 * time.Second

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client - клиент workflow-endpoint'а n8n
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient создаёт новый клиент для отправки заявок в n8n
func NewClient(cfg *Config, log *slog.Logger) *Client {
	transport := &http.Transport{}

	if cfg.ShouldSkipSSL() {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
		log.Warn("TLS certificate verification is disabled for the n8n webhook")
	}

	timeout := defaultSubmitTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		Log: log,
	}
}

// Submit выполняет единственный POST заявки в workflow.
// Ошибка означает сетевой сбой или таймаут; любой HTTP-ответ,
// включая не-200, возвращается как WebhookResult.
func (c *Client) Submit(ctx context.Context, req domain.InspectionRequest) (*domain.WebhookResult, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inspection request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.WebhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		c.Log.Debug("n8n webhook unreachable",
			"error", err,
			"inspection_type", req.InspectionType,
		)
		return nil, fmt.Errorf("n8n webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read n8n response body: %w", err)
	}

	result := &domain.WebhookResult{
		StatusCode: resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("n8n webhook returned non-200 status",
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return result, nil
	}

	// Тело успешного ответа опционально и может быть невалидным JSON -
	// тогда просто подтверждаем доставку без enrichment-полей
	var webhookResp webhookResponse
	if err := json.Unmarshal(body, &webhookResp); err != nil {
		c.Log.Debug("n8n response body is not valid JSON, ignoring",
			"body_preview", truncateString(string(body), 200),
		)
		return result, nil
	}

	result.PermitNumber = webhookResp.Data.PermitNumber
	result.Address = webhookResp.Data.Address
	result.TaskID = webhookResp.Data.NotionTaskID

	return result, nil
}
