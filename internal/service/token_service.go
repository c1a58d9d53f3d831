package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/schedmail/email-worker/internal/domain"
	"github.com/schedmail/email-worker/pkg/logger"
)

// TokenService caches the bearer token for the upstream API and refreshes
// it with single-flight semantics: one expiry event costs at most one
// login POST no matter how many pipelines demand a token concurrently.
type TokenService struct {
	httpClient domain.HTTPClient
	secrets    *SecretsService
	apiBaseURL string
	leeway     time.Duration
	logger     logger.Logger

	group singleflight.Group
	mu    sync.RWMutex
	token *domain.AuthToken

	now func() time.Time
}

func NewTokenService(httpClient domain.HTTPClient, secrets *SecretsService, apiBaseURL string, leeway time.Duration, logger logger.Logger) *TokenService {
	return &TokenService{
		httpClient: httpClient,
		secrets:    secrets,
		apiBaseURL: apiBaseURL,
		leeway:     leeway,
		logger:     logger,
		now:        time.Now,
	}
}

// GetToken returns the cached token when still valid, otherwise performs
// a credentialed login. A failed refresh leaves the cache empty and
// surfaces the error to every concurrent caller.
func (s *TokenService) GetToken(ctx context.Context) (domain.AuthToken, error) {
	if token, ok := s.cachedToken(); ok {
		return token, nil
	}

	result, err, _ := s.group.Do("auth-token", func() (interface{}, error) {
		// A waiter queued behind the winning refresh sees the fresh
		// token here instead of refreshing again.
		if token, ok := s.cachedToken(); ok {
			return token, nil
		}

		token, err := s.fetchToken(ctx)
		if err != nil {
			s.mu.Lock()
			s.token = nil
			s.mu.Unlock()
			return domain.AuthToken{}, err
		}

		s.mu.Lock()
		s.token = &token
		s.mu.Unlock()
		return token, nil
	})
	if err != nil {
		return domain.AuthToken{}, err
	}

	return result.(domain.AuthToken), nil
}

func (s *TokenService) cachedToken() (domain.AuthToken, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == nil || s.token.HasExpired(s.now(), s.leeway) {
		return domain.AuthToken{}, false
	}
	return *s.token, true
}

func (s *TokenService) fetchToken(ctx context.Context) (domain.AuthToken, error) {
	credentials, err := s.secrets.TokenCredentials(ctx)
	if err != nil {
		return domain.AuthToken{}, fmt.Errorf("failed to read token credentials: %w", err)
	}

	loginURL := fmt.Sprintf("%s/auth/login/", s.apiBaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, nil)
	if err != nil {
		return domain.AuthToken{}, fmt.Errorf("failed to create login request: %w", err)
	}
	req.SetBasicAuth(credentials.User, credentials.Password)

	s.logger.Info("Refreshing auth token.")
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.AuthToken{}, fmt.Errorf("failed to execute login request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.AuthToken{}, fmt.Errorf("failed to read login response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.AuthToken{}, &domain.HTTPStatusError{
			StatusCode: resp.StatusCode,
			URL:        loginURL,
			Body:       string(body),
		}
	}

	var token domain.AuthToken
	if err := json.Unmarshal(body, &token); err != nil {
		return domain.AuthToken{}, fmt.Errorf("failed to decode login response: %w", err)
	}

	return token, nil
}
