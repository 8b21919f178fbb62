package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"anoa.com/spacemanagement/internal/modules/notification/dto"
	"anoa.com/spacemanagement/pkg/apperror"
	"github.com/rs/zerolog/log"
)

// AddNotificationPath is the broadcast endpoint of the user-notification service.
const AddNotificationPath = "/api/UserNotifications/add-notification"

// InternalKeyHeader carries the shared key between the two services.
const InternalKeyHeader = "X-Internal-Key"

// Relay forwards a notification to the user-notification service.
type Relay interface {
	Relay(ctx context.Context, payload dto.RelayPayload) error
}

type httpRelay struct {
	client      *http.Client
	endpoint    string
	internalKey string
}

// NewHTTPRelay posts to baseURL + AddNotificationPath. A nil client gets a
// default one with a 10s timeout.
func NewHTTPRelay(baseURL, internalKey string, client *http.Client) Relay {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &httpRelay{
		client:      client,
		endpoint:    strings.TrimSuffix(baseURL, "/") + AddNotificationPath,
		internalKey: internalKey,
	}
}

// Relay returns an *apperror.AppError carrying the upstream status on a
// non-2xx answer, and a 502 one when the service cannot be reached.
func (r *httpRelay) Relay(ctx context.Context, payload dto.RelayPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.internalKey != "" {
		req.Header.Set(InternalKeyHeader, r.internalKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("endpoint", r.endpoint).Msg("notification relay unreachable")
		return apperror.New(http.StatusBadGateway, apperror.ErrUpstreamRelay.Error(), fmt.Errorf("%w: %v", apperror.ErrUpstreamRelay, err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Ctx(ctx).Warn().Int("status", resp.StatusCode).Uint("alien_id", payload.AlienID).Msg("notification relay rejected")
		return apperror.Upstream(resp.StatusCode)
	}
	return nil
}
