package conversions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
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

const (
	actionSourceWebsite = "website"
	maxResponseBytes    = 1 << 20
	defaultTimeout      = 5 * time.Second

	msgMissingCredentials = "Missing credentials"
	msgUnknownError       = "Unknown error"
	msgInvalidResponse    = "Invalid response body"
)

var ErrMissingCredentials = errors.New("conversions api credentials not configured")

// DispatchError reports a conversion that was not accepted. Message mirrors
// the provider's error message when one was returned.
type DispatchError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *DispatchError) Error() string { return e.Message }
func (e *DispatchError) Unwrap() error { return e.Err }

// FacebookConversionsClient posts conversion events to the Graph API
// /{pixel-id}/events edge. One attempt per event, no retries.
type FacebookConversionsClient struct {
	httpClient    *http.Client
	baseURL       string
	apiVersion    string
	pixelID       string
	accessToken   string
	testEventCode string
}

var _ interfaces.IConversionDispatcher = (*FacebookConversionsClient)(nil)

// NewFacebookConversionsClient never fails: missing credentials are reported
// per dispatch so the webhook keeps acknowledging deliveries.
func NewFacebookConversionsClient(cfg config.FacebookConfig, httpClient *http.Client) *FacebookConversionsClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.GraphBaseURL), "/")
	if baseURL == "" {
		baseURL = "https://graph.facebook.com"
	}
	version := strings.Trim(strings.TrimSpace(cfg.APIVersion), "/")
	if version == "" {
		version = "v18.0"
	}
	c := &FacebookConversionsClient{
		httpClient:    httpClient,
		baseURL:       baseURL,
		apiVersion:    version,
		pixelID:       strings.TrimSpace(cfg.PixelID),
		accessToken:   strings.TrimSpace(cfg.AccessToken),
		testEventCode: strings.TrimSpace(cfg.TestEventCode),
	}
	if c.accessToken == "" || c.pixelID == "" {
		log.Warn("[conversions] FB_ACCESS_TOKEN or FB_PIXEL_ID missing; events will not be sent")
	} else {
		log.WithFields(log.Fields{
			"pixel_id":     c.pixelID,
			"api_version":  c.apiVersion,
			"access_token": logging.MaskSecret(c.accessToken),
			"test_mode":    c.testEventCode != "",
		}).Info("[conversions] client initialized")
	}
	return c
}

func (c *FacebookConversionsClient) endpoint() string {
	return fmt.Sprintf("%s/%s/%s/events", c.baseURL, c.apiVersion, c.pixelID)
}

func (c *FacebookConversionsClient) Dispatch(ctx context.Context, event entities.ConversionEvent) error {
	logger := logging.FromContext(ctx).WithFields(log.Fields{
		"event_name": event.Name,
		"event_id":   event.EventID,
	})
	if c == nil || c.accessToken == "" || c.pixelID == "" {
		logger.Error("[conversions] missing credentials")
		return &DispatchError{Message: msgMissingCredentials, Err: ErrMissingCredentials}
	}

	body, err := json.Marshal(c.buildRequest(event))
	if err != nil {
		return &DispatchError{Message: err.Error(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return &DispatchError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Error("[conversions] request failed")
		return &DispatchError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	// A timeout can also fire while the body is still streaming.
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		logger.WithError(err).WithField("status", resp.StatusCode).Error("[conversions] reading response failed")
		return &DispatchError{Message: err.Error(), StatusCode: resp.StatusCode, Err: err}
	}
	var parsed graphResponse
	decodeErr := json.Unmarshal(raw, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := msgUnknownError
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		logger.WithFields(log.Fields{
			"status":     resp.StatusCode,
			"fbtrace_id": parsed.traceID(),
		}).Errorf("[conversions] api error: %s", msg)
		return &DispatchError{Message: msg, StatusCode: resp.StatusCode}
	}
	if decodeErr != nil {
		logger.WithError(decodeErr).WithField("status", resp.StatusCode).Error("[conversions] undecodable success response")
		return &DispatchError{Message: msgInvalidResponse, StatusCode: resp.StatusCode, Err: decodeErr}
	}
	if parsed.Error != nil {
		msg := parsed.Error.Message
		if msg == "" {
			msg = msgUnknownError
		}
		logger.WithField("status", resp.StatusCode).Errorf("[conversions] api error in success response: %s", msg)
		return &DispatchError{Message: msg, StatusCode: resp.StatusCode}
	}

	logger.WithFields(log.Fields{
		"events_received": parsed.EventsReceived,
		"fbtrace_id":      parsed.traceID(),
	}).Info("[conversions] event sent")
	return nil
}

func (c *FacebookConversionsClient) buildRequest(event entities.ConversionEvent) eventsRequest {
	ud := userData{
		ClientIPAddress: event.Identity.ClientIP,
		ClientUserAgent: event.Identity.UserAgent,
		FBC:             event.Identity.FBC,
		FBP:             event.Identity.FBP,
	}
	if event.Identity.HashedEmail != "" {
		ud.Em = []string{event.Identity.HashedEmail}
	}
	if event.Identity.HashedPhone != "" {
		ud.Ph = []string{event.Identity.HashedPhone}
	}

	custom := make(map[string]any, len(event.Attributes.Extra)+3)
	for k, v := range event.Attributes.Extra {
		custom[k] = v
	}
	if event.Attributes.Currency != "" {
		custom["currency"] = event.Attributes.Currency
	}
	if event.Attributes.Value != nil {
		custom["value"] = *event.Attributes.Value
	}
	if event.Attributes.ContentName != "" {
		custom["content_name"] = event.Attributes.ContentName
	}

	eventTime := event.OccurredAt
	if eventTime == 0 {
		eventTime = time.Now().Unix()
	}

	return eventsRequest{
		Data: []eventPayload{{
			EventName:      string(event.Name),
			EventTime:      eventTime,
			ActionSource:   actionSourceWebsite,
			EventSourceURL: event.SourceURL,
			EventID:        event.EventID,
			UserData:       ud,
			CustomData:     custom,
		}},
		AccessToken:   c.accessToken,
		TestEventCode: c.testEventCode,
	}
}
