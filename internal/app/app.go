package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/ssm"

	"github.com/schedmail/email-worker/config"
	"github.com/schedmail/email-worker/internal/domain"
	"github.com/schedmail/email-worker/internal/repository"
	"github.com/schedmail/email-worker/internal/service"
	"github.com/schedmail/email-worker/pkg/logger"
)

// App wires the per-run object graph: credentials from the secret
// store, one shared HTTP client, the token cache, and the services
// behind the batch driver.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	// test seams; nil means the real AWS clients
	ssmClient domain.SSMClient
	s3Client  domain.S3Client
}

type Option func(*App)

// WithSSMClient replaces the AWS parameter store client.
func WithSSMClient(client domain.SSMClient) Option {
	return func(a *App) {
		a.ssmClient = client
	}
}

// WithS3Client replaces the AWS blob store client.
func WithS3Client(client domain.S3Client) Option {
	return func(a *App) {
		a.s3Client = client
	}
}

func New(cfg *config.Config, log logger.Logger, opts ...Option) *App {
	app := &App{
		cfg:    cfg,
		logger: log,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Run performs one batch: construct the services, list the eligible
// emails and process them all. Per-email outcomes live in the returned
// summary; only run-level breakage (listing, secret reads) is an error.
func (a *App) Run(ctx context.Context) (*domain.WorkerOutput, error) {
	if a.ssmClient == nil || a.s3Client == nil {
		sess, err := session.NewSession()
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %w", err)
		}
		if a.ssmClient == nil {
			a.ssmClient = ssm.New(sess)
		}
		if a.s3Client == nil {
			a.s3Client = s3.New(sess)
		}
	}

	secretStore := repository.NewSSMSecretStore(a.ssmClient, a.logger)
	secrets := service.NewSecretsService(secretStore, a.cfg.Stage, a.logger)

	mailgunCredentials, err := secrets.MailgunCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read mailgun credentials: %w", err)
	}
	bucket, err := secrets.S3Bucket(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment bucket: %w", err)
	}

	httpClient := &http.Client{Timeout: a.cfg.HTTPTimeout}

	tokens := service.NewTokenService(httpClient, secrets, a.cfg.APIBaseURL, a.cfg.TokenExpiryLeeway, a.logger)
	api := service.NewScheduledEmailService(a.cfg.APIBaseURL, httpClient, tokens, a.cfg.MaxPages, a.logger)
	resolver := service.NewResolverService(a.cfg.APIBaseURL, httpClient, tokens, a.logger)
	renderer := service.NewRenderService(a.logger)
	attachments := service.NewAttachmentService(a.s3Client, bucket, a.logger)
	dispatcher := service.NewMailgunService(httpClient, mailgunCredentials, a.cfg.OverwriteOutgoingEmails, a.logger)

	pipeline := service.NewPipelineService(api, tokens, resolver, renderer, attachments, dispatcher, a.logger)
	worker := service.NewWorkerService(api, pipeline, a.logger)

	return worker.Run(ctx)
}
