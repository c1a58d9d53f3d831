package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/schedmail/email-worker/internal/domain"
	"github.com/schedmail/email-worker/pkg/logger"
)

// ScheduledEmailService implements domain.ScheduledEmailAPI over the
// upstream HTTP API. It never retries; non-success statuses propagate
// with the code preserved.
type ScheduledEmailService struct {
	apiBaseURL string
	httpClient domain.HTTPClient
	tokens     domain.TokenProvider
	maxPages   int
	logger     logger.Logger
}

func NewScheduledEmailService(apiBaseURL string, httpClient domain.HTTPClient, tokens domain.TokenProvider, maxPages int, logger logger.Logger) *ScheduledEmailService {
	if maxPages <= 0 {
		maxPages = 10
	}
	return &ScheduledEmailService{
		apiBaseURL: apiBaseURL,
		httpClient: httpClient,
		tokens:     tokens,
		maxPages:   maxPages,
		logger:     logger,
	}
}

// ListScheduledToRun returns every email currently eligible for
// dispatch, walking pagination transparently.
func (s *ScheduledEmailService) ListScheduledToRun(ctx context.Context) ([]domain.ScheduledEmail, error) {
	urlFormat := fmt.Sprintf("%s/v2/scheduledemail/scheduled_to_run?page=%%d", s.apiBaseURL)
	return s.getPaginated(ctx, urlFormat)
}

// getPaginated fetches pages 1..maxPages sequentially, extending the
// accumulator from each page's results array. The first non-200 status
// ends the walk: pagination running off the end is expected, not an
// error. The page cap bounds the loop regardless of server behavior.
func (s *ScheduledEmailService) getPaginated(ctx context.Context, urlFormat string) ([]domain.ScheduledEmail, error) {
	token, err := s.tokens.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	var emails []domain.ScheduledEmail
	for page := 1; page <= s.maxPages; page++ {
		pageURL := fmt.Sprintf(urlFormat, page)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Token "+token.Token)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to execute request: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			break
		}

		var pageBody struct {
			Results []domain.ScheduledEmail `json:"results"`
		}
		err = json.NewDecoder(resp.Body).Decode(&pageBody)
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode page %d: %w", page, err)
		}

		emails = append(emails, pageBody.Results...)
	}

	return emails, nil
}

func (s *ScheduledEmailService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduledEmail, error) {
	url := fmt.Sprintf("%s/v2/scheduledemail/%s", s.apiBaseURL, id)
	return s.doEmailRequest(ctx, http.MethodGet, url, nil)
}

// Lock claims exclusive processing rights by requesting the locked state
// transition upstream.
func (s *ScheduledEmailService) Lock(ctx context.Context, id uuid.UUID) (*domain.ScheduledEmail, error) {
	url := fmt.Sprintf("%s/v2/scheduledemail/%s/lock", s.apiBaseURL, id)
	return s.doEmailRequest(ctx, http.MethodPost, url, nil)
}

// Fail records the terminal failed transition with operator-readable
// details.
func (s *ScheduledEmailService) Fail(ctx context.Context, id uuid.UUID, details string) (*domain.ScheduledEmail, error) {
	url := fmt.Sprintf("%s/v2/scheduledemail/%s/fail", s.apiBaseURL, id)
	return s.doEmailRequest(ctx, http.MethodPost, url, &details)
}

// Succeed records the terminal succeeded transition with operator-
// readable details.
func (s *ScheduledEmailService) Succeed(ctx context.Context, id uuid.UUID, details string) (*domain.ScheduledEmail, error) {
	url := fmt.Sprintf("%s/v2/scheduledemail/%s/succeed", s.apiBaseURL, id)
	return s.doEmailRequest(ctx, http.MethodPost, url, &details)
}

func (s *ScheduledEmailService) doEmailRequest(ctx context.Context, method, url string, details *string) (*domain.ScheduledEmail, error) {
	token, err := s.tokens.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if details != nil {
		payload, err := json.Marshal(map[string]string{"details": *details})
		if err != nil {
			return nil, fmt.Errorf("failed to encode details: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+token.Token)
	if details != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.HTTPStatusError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Body:       string(body),
		}
	}

	var email domain.ScheduledEmail
	if err := json.Unmarshal(body, &email); err != nil {
		return nil, fmt.Errorf("failed to decode scheduled email: %w", err)
	}

	return &email, nil
}
