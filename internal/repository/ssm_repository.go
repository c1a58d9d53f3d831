package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ssm"

	"github.com/schedmail/email-worker/internal/domain"
	"github.com/schedmail/email-worker/pkg/logger"
)

// SSMSecretStore implements domain.SecretStore over the AWS parameter
// store.
type SSMSecretStore struct {
	client domain.SSMClient
	logger logger.Logger
}

func NewSSMSecretStore(client domain.SSMClient, logger logger.Logger) *SSMSecretStore {
	return &SSMSecretStore{
		client: client,
		logger: logger,
	}
}

// GetParameter reads one named parameter. A missing parameter is not an
// error; callers substitute their own defaults.
func (s *SSMSecretStore) GetParameter(ctx context.Context, name string) (string, bool, error) {
	output, err := s.client.GetParameterWithContext(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		if awsErr, ok := err.(awserr.Error); ok && awsErr.Code() == ssm.ErrCodeParameterNotFound {
			s.logger.WithField("parameter", name).Warn("SSM parameter not found")
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read SSM parameter %s: %w", name, err)
	}

	if output.Parameter == nil || output.Parameter.Value == nil {
		return "", false, nil
	}

	return *output.Parameter.Value, true, nil
}
