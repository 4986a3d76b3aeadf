package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"openaria_tracking/internal/config"
	"openaria_tracking/internal/domain/entities"
	"openaria_tracking/internal/infrastructure/logging"
	"openaria_tracking/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// StatusError is returned when the inbound webhook answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("crm webhook responded with status %d", e.StatusCode)
}

// GoHighLevelClient posts leads to a GoHighLevel workflow inbound webhook.
//
// Without a webhook URL the client runs in simulation mode: the payload is
// logged, the optional delay is applied and no request is made.
type GoHighLevelClient struct {
	httpClient      *http.Client
	webhookURL      string
	simulationDelay time.Duration
}

var _ interfaces.ILeadForwarder = (*GoHighLevelClient)(nil)

func NewGoHighLevelClient(cfg config.LeadConfig, httpClient *http.Client) *GoHighLevelClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	c := &GoHighLevelClient{
		httpClient:      httpClient,
		webhookURL:      strings.TrimSpace(cfg.WebhookURL),
		simulationDelay: cfg.SimulationDelay,
	}
	if c.SimulationMode() {
		log.WithField("delay", c.simulationDelay).Warn("[crm] GHL_WEBHOOK_URL missing; simulation mode enabled")
	} else {
		log.WithField("webhook", logging.MaskURL(c.webhookURL)).Info("[crm] GoHighLevel client initialized")
	}
	return c
}

func (c *GoHighLevelClient) SimulationMode() bool {
	return c.webhookURL == ""
}

func (c *GoHighLevelClient) Forward(ctx context.Context, lead entities.Lead) error {
	body, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("marshal lead: %w", err)
	}
	logger := logging.FromContext(ctx).WithFields(log.Fields{
		"email":       logging.MaskEmail(lead.Email),
		"source_page": lead.SourcePage,
		"payload_len": len(body),
	})

	if c.SimulationMode() {
		logger.WithField("payload", string(body)).Info("[crm] simulation: lead not sent")
		if c.simulationDelay > 0 {
			timer := time.NewTimer(c.simulationDelay)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build crm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Error("[crm] request failed")
		return fmt.Errorf("post lead: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.WithField("status", resp.StatusCode).Error("[crm] webhook rejected lead")
		return &StatusError{StatusCode: resp.StatusCode}
	}
	logger.WithField("status", resp.StatusCode).Info("[crm] lead sent")
	return nil
}
