package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/pulsehq/meeting-relevance/errors"
	"github.com/pulsehq/meeting-relevance/internal/domain/entities"
	pkgai "github.com/pulsehq/meeting-relevance/pkg/ai"
)

// SignatureHeader carries the HMAC signature of the notification payload
const SignatureHeader = "X-Pulse-Signature"

// Payload is the JSON body delivered to the notification webhook
type Payload struct {
	TranscriptID    string `json:"transcript_id"`
	Title           string `json:"title"`
	OrganizationKey string `json:"pulse_id"`
	UserID          string `json:"user_id"`
	Summary         string `json:"summary"`
	Rationale       string `json:"rationale,omitempty"`
}

// WebhookNotifier posts signed meeting summaries to a configured endpoint
type WebhookNotifier struct {
	url    string
	secret string
	client *http.Client
	logger *zap.Logger
}

// NewWebhookNotifier creates a webhook notifier
func NewWebhookNotifier(url, secret string, logger *zap.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		secret: secret,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, meeting *entities.Meeting, judgment entities.Judgment) error {
	body, err := json.Marshal(Payload{
		TranscriptID:    meeting.TranscriptID,
		Title:           meeting.Title,
		OrganizationKey: meeting.OrganizationKey,
		UserID:          meeting.UserID,
		Summary:         meeting.Summary,
		Rationale:       judgment.Rationale,
	})
	if err != nil {
		return apperrors.ErrNotification(meeting.TranscriptID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return apperrors.ErrNotification(meeting.TranscriptID, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.secret != "" {
		req.Header.Set(SignatureHeader, pkgai.SignHMAC(n.secret, body))
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return apperrors.ErrNotification(meeting.TranscriptID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apperrors.ErrNotification(meeting.TranscriptID,
			fmt.Errorf("webhook returned status %d", resp.StatusCode))
	}

	n.logger.Info("notification delivered",
		zap.String("transcript_id", meeting.TranscriptID),
		zap.String("pulse_id", meeting.OrganizationKey),
	)
	return nil
}

// LogNotifier writes notifications to the log. Used when no webhook URL is
// configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a log-only notifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, meeting *entities.Meeting, judgment entities.Judgment) error {
	n.logger.Info("relevant meeting",
		zap.String("transcript_id", meeting.TranscriptID),
		zap.String("pulse_id", meeting.OrganizationKey),
		zap.String("title", meeting.Title),
		zap.String("rationale", judgment.Rationale),
	)
	return nil
}
