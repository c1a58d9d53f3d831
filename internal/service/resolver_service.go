package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/schedmail/email-worker/internal/domain"
	"github.com/schedmail/email-worker/pkg/logger"
)

// ResolverService evaluates the URI sublanguage. Model fetches are the
// only pipeline-time HTTP fan-out: a list context entry resolves all of
// its elements concurrently while keeping the input order in the result.
type ResolverService struct {
	apiBaseURL string
	httpClient domain.HTTPClient
	tokens     domain.TokenProvider
	logger     logger.Logger
}

func NewResolverService(apiBaseURL string, httpClient domain.HTTPClient, tokens domain.TokenProvider, logger logger.Logger) *ResolverService {
	return &ResolverService{
		apiBaseURL: apiBaseURL,
		httpClient: httpClient,
		tokens:     tokens,
		logger:     logger,
	}
}

// Scalar evaluates a value: URI without touching the network.
func (s *ResolverService) Scalar(uri string) (interface{}, error) {
	ref, err := domain.ParseURIRef(uri)
	if err != nil {
		return nil, err
	}
	return ref.ScalarValue()
}

// Model fetches an api: URI as a JSON object from the upstream API.
func (s *ResolverService) Model(ctx context.Context, uri string) (map[string]interface{}, error) {
	raw, err := s.fetchModelBytes(ctx, uri)
	if err != nil {
		return nil, err
	}

	var model map[string]interface{}
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("failed to decode model %s: %w", uri, err)
	}
	return model, nil
}

// ModelField fetches the model then stringifies the named property.
func (s *ResolverService) ModelField(ctx context.Context, uri string, property string) (string, error) {
	s.logger.WithField("api_uri", uri).WithField("property", property).Debug("Fetching model property.")

	raw, err := s.fetchModelBytes(ctx, uri)
	if err != nil {
		return "", err
	}

	value := gjson.GetBytes(raw, property)
	if !value.Exists() {
		return "", &domain.MissingFieldError{URI: uri, Property: property}
	}
	return value.String(), nil
}

// ContextEntry resolves one context mapping entry: a list fans out into
// ordered concurrent model fetches, a value: URI yields its scalar, an
// api: URI yields the model object.
func (s *ResolverService) ContextEntry(ctx context.Context, ref domain.ContextRef) (interface{}, error) {
	if ref.IsList() {
		models := make([]map[string]interface{}, len(ref.URIs))
		group, groupCtx := errgroup.WithContext(ctx)
		for i, uri := range ref.URIs {
			i, uri := i, uri
			group.Go(func() error {
				model, err := s.Model(groupCtx, uri)
				if err != nil {
					return err
				}
				models[i] = model
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return nil, err
		}
		return models, nil
	}

	parsed, err := domain.ParseURIRef(ref.URI)
	if err != nil {
		return nil, &domain.UnsupportedURIError{URI: ref.URI, Usage: "context generation"}
	}

	switch parsed.Kind {
	case domain.ValueRef:
		return parsed.ScalarValue()
	case domain.ModelRef:
		return s.Model(ctx, ref.URI)
	default:
		return nil, &domain.UnsupportedURIError{URI: ref.URI, Usage: "context generation"}
	}
}

// fetchModelBytes maps an api: URI onto its API URL and fetches the raw
// JSON document.
func (s *ResolverService) fetchModelBytes(ctx context.Context, uri string) ([]byte, error) {
	ref, err := domain.ParseURIRef(uri)
	if err != nil {
		return nil, err
	}
	if ref.Kind == domain.ValueRef {
		return nil, &domain.ValueSchemeError{}
	}

	token, err := s.tokens.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v2/%s/%s", s.apiBaseURL, ref.Path, ref.Fragment)
	s.logger.WithField("url", url).Debug("Fetching entity from API.")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+token.Token)

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

	return body, nil
}
