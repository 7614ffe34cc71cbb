package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"enrollhub/internal/logger"
	"enrollhub/internal/wizard"

	"go.uber.org/zap"
)

// Status is the relay's delivery outcome. "partial" means the organization
// was notified but the applicant's auto-reply failed; callers treat it as
// success, and this adapter records it for later review.
type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusError   Status = "error"
)

// Delivered reports whether a status counts as a successful delivery.
func (s Status) Delivered() bool {
	return s == StatusSuccess || s == StatusPartial
}

// Sender delivers an assembled enrollment payload to the mail relay.
type Sender interface {
	Send(ctx context.Context, payload map[string]string, attachment *wizard.Attachment) (Status, error)
}

// HTTPSender posts the payload as multipart/form-data: every field a text
// part, the resume a binary file part.
type HTTPSender struct {
	url    string
	client *http.Client
}

func NewHTTPSender(url string, timeout time.Duration) *HTTPSender {
	return &HTTPSender{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type relayResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Send implements Sender
func (s *HTTPSender) Send(ctx context.Context, payload map[string]string, attachment *wizard.Attachment) (Status, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for key, value := range payload {
		if err := writer.WriteField(key, value); err != nil {
			return StatusError, fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}
	if attachment != nil {
		part, err := writer.CreateFormFile("resume", attachment.Filename)
		if err != nil {
			return StatusError, fmt.Errorf("failed to create resume part: %w", err)
		}
		if _, err := part.Write(attachment.Content); err != nil {
			return StatusError, fmt.Errorf("failed to write resume part: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return StatusError, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, &body)
	if err != nil {
		return StatusError, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return StatusError, fmt.Errorf("mail relay unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return StatusError, err
	}
	if resp.StatusCode != http.StatusOK {
		return StatusError, fmt.Errorf("mail relay returned status %d", resp.StatusCode)
	}

	var relay relayResponse
	if err := json.Unmarshal(raw, &relay); err != nil {
		return StatusError, fmt.Errorf("mail relay returned unparsable response: %w", err)
	}

	switch Status(relay.Status) {
	case StatusSuccess:
		return StatusSuccess, nil
	case StatusPartial:
		// Surfaced as success to the caller; kept distinguishable here.
		logger.Get().Warn("Mail relay reported partial delivery",
			zap.String("status", relay.Status),
			zap.String("message", relay.Message),
		)
		return StatusPartial, nil
	default:
		return StatusError, fmt.Errorf("mail relay rejected submission: %s", relay.Message)
	}
}
