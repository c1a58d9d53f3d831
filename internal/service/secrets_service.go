package service

import (
	"context"
	"fmt"

	"github.com/schedmail/email-worker/internal/domain"
	"github.com/schedmail/email-worker/pkg/logger"
)

// Defaults substituted when a parameter is absent from the secret store.
// They keep staging runs alive against fixtures; production has the real
// values provisioned.
const (
	defaultMailgunAPIKey = "fakeKey"
	defaultTokenUser     = "email_worker_account"
	defaultTokenPassword = "fakePassword"
	defaultS3Bucket      = "fakeBucket"
)

// SecretsService layers the /{stage}/email-worker/* parameter naming
// scheme over the secret store.
type SecretsService struct {
	store  domain.SecretStore
	stage  string
	logger logger.Logger
}

func NewSecretsService(store domain.SecretStore, stage string, logger logger.Logger) *SecretsService {
	return &SecretsService{
		store:  store,
		stage:  stage,
		logger: logger,
	}
}

func (s *SecretsService) parameterPath(name string) string {
	return fmt.Sprintf("/%s/email-worker/%s", s.stage, name)
}

func (s *SecretsService) read(ctx context.Context, name, fallback string) (string, error) {
	value, found, err := s.store.GetParameter(ctx, s.parameterPath(name))
	if err != nil {
		return "", err
	}
	if !found {
		return fallback, nil
	}
	return value, nil
}

// MailgunCredentials reads the mail API key and sender domain.
func (s *SecretsService) MailgunCredentials(ctx context.Context) (domain.MailgunCredentials, error) {
	apiKey, err := s.read(ctx, "mailgun_key", defaultMailgunAPIKey)
	if err != nil {
		return domain.MailgunCredentials{}, err
	}
	senderDomain, err := s.read(ctx, "mailgun_sender_domain", "")
	if err != nil {
		return domain.MailgunCredentials{}, err
	}
	return domain.MailgunCredentials{
		SenderDomain: senderDomain,
		APIKey:       apiKey,
	}, nil
}

// TokenCredentials reads the upstream API login credentials.
func (s *SecretsService) TokenCredentials(ctx context.Context) (domain.Credentials, error) {
	user, err := s.read(ctx, "token_username", defaultTokenUser)
	if err != nil {
		return domain.Credentials{}, err
	}
	password, err := s.read(ctx, "token_password", defaultTokenPassword)
	if err != nil {
		return domain.Credentials{}, err
	}
	return domain.Credentials{User: user, Password: password}, nil
}

// S3Bucket reads the attachment bucket name.
func (s *SecretsService) S3Bucket(ctx context.Context) (string, error) {
	return s.read(ctx, "s3_bucket", defaultS3Bucket)
}
