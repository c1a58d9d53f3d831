package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/schedmail/email-worker/internal/domain"
	"github.com/schedmail/email-worker/pkg/logger"
)

const mailgunEndpoint = "https://api.mailgun.net/v3"

// MailgunService delivers rendered emails through the Mailgun messages
// API. A configured override address replaces every outbound recipient
// and empties cc/bcc; this is the staging safety valve.
type MailgunService struct {
	httpClient        domain.HTTPClient
	credentials       domain.MailgunCredentials
	overwriteOutgoing string
	logger            logger.Logger
}

func NewMailgunService(httpClient domain.HTTPClient, credentials domain.MailgunCredentials, overwriteOutgoing string, logger logger.Logger) *MailgunService {
	return &MailgunService{
		httpClient:        httpClient,
		credentials:       credentials,
		overwriteOutgoing: overwriteOutgoing,
		logger:            logger,
	}
}

// Send posts the rendered message and returns the Mailgun response body
// so the caller can record it in the succeed details.
func (s *MailgunService) Send(ctx context.Context, email *domain.RenderedEmail) (string, error) {
	apiURL := fmt.Sprintf("%s/%s/messages", mailgunEndpoint, s.credentials.SenderDomain)

	to := email.ToHeaderRendered
	cc := email.CcHeader
	bcc := email.BccHeader
	if s.overwriteOutgoing != "" {
		to = []string{s.overwriteOutgoing}
		cc = nil
		bcc = nil
	}

	// Mailgun requires multipart/form-data for attachments; plain form
	// encoding is enough otherwise.
	if len(email.AttachmentsWithContent) > 0 {
		return s.sendWithAttachments(ctx, apiURL, email, to, cc, bcc)
	}
	return s.sendSimple(ctx, apiURL, email, to, cc, bcc)
}

func (s *MailgunService) sendSimple(ctx context.Context, apiURL string, email *domain.RenderedEmail, to, cc, bcc []string) (string, error) {
	form := url.Values{}
	form.Add("from", email.FromHeader)
	for _, address := range to {
		form.Add("to", address)
	}
	for _, address := range cc {
		form.Add("cc", address)
	}
	for _, address := range bcc {
		form.Add("bcc", address)
	}
	if email.ReplyToHeader != "" {
		form.Add("h:Reply-To", email.ReplyToHeader)
	}
	form.Add("subject", email.SubjectRendered)
	form.Add("html", email.BodyRendered)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth("api", s.credentials.APIKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return s.execute(req)
}

func (s *MailgunService) sendWithAttachments(ctx context.Context, apiURL string, email *domain.RenderedEmail, to, cc, bcc []string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := []struct {
		name   string
		values []string
	}{
		{"from", []string{email.FromHeader}},
		{"to", to},
		{"cc", cc},
		{"bcc", bcc},
		{"subject", []string{email.SubjectRendered}},
		{"html", []string{email.BodyRendered}},
	}
	for _, field := range fields {
		for _, value := range field.values {
			if err := writer.WriteField(field.name, value); err != nil {
				return "", fmt.Errorf("failed to write %s field: %w", field.name, err)
			}
		}
	}
	if email.ReplyToHeader != "" {
		if err := writer.WriteField("h:Reply-To", email.ReplyToHeader); err != nil {
			return "", fmt.Errorf("failed to write reply-to field: %w", err)
		}
	}

	for i, attachment := range email.AttachmentsWithContent {
		part, err := writer.CreateFormFile("attachment", attachment.Filename)
		if err != nil {
			return "", fmt.Errorf("attachment %d: failed to create form file: %w", i, err)
		}
		if _, err := part.Write(attachment.Content); err != nil {
			return "", fmt.Errorf("attachment %d: failed to write content: %w", i, err)
		}

		s.logger.WithField("attachment_size", len(attachment.Content)).
			WithField("filename", attachment.Filename).
			Debug("Added attachment to Mailgun email")
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth("api", s.credentials.APIKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return s.execute(req)
}

func (s *MailgunService) execute(req *http.Request) (string, error) {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Error(fmt.Sprintf("Mailgun API returned status code %d: %s", resp.StatusCode, string(body)))
		return "", &domain.MailTransferError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return string(body), nil
}
