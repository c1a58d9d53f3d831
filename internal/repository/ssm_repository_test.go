package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedmail/email-worker/internal/domain/mocks"
	"github.com/schedmail/email-worker/pkg/logger"
)

func TestSSMSecretStore_GetParameter(t *testing.T) {
	t.Run("returns decrypted value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockSSMClient(ctrl)
		client.EXPECT().
			GetParameterWithContext(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ aws.Context, input *ssm.GetParameterInput, _ ...interface{}) (*ssm.GetParameterOutput, error) {
				assert.Equal(t, "/staging/email-worker/mailgun_key", *input.Name)
				assert.True(t, *input.WithDecryption)
				return &ssm.GetParameterOutput{
					Parameter: &ssm.Parameter{Value: aws.String("secret-value")},
				}, nil
			})

		store := NewSSMSecretStore(client, logger.NewMockLogger())

		value, found, err := store.GetParameter(context.Background(), "/staging/email-worker/mailgun_key")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "secret-value", value)
	})

	t.Run("missing parameter is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockSSMClient(ctrl)
		client.EXPECT().
			GetParameterWithContext(gomock.Any(), gomock.Any()).
			Return(nil, awserr.New(ssm.ErrCodeParameterNotFound, "parameter not found", nil))

		store := NewSSMSecretStore(client, logger.NewMockLogger())

		value, found, err := store.GetParameter(context.Background(), "/staging/email-worker/missing")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("other AWS errors propagate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockSSMClient(ctrl)
		client.EXPECT().
			GetParameterWithContext(gomock.Any(), gomock.Any()).
			Return(nil, awserr.New("AccessDeniedException", "not allowed", nil))

		store := NewSSMSecretStore(client, logger.NewMockLogger())

		_, _, err := store.GetParameter(context.Background(), "/staging/email-worker/mailgun_key")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read SSM parameter")
	})

	t.Run("nil parameter value treated as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockSSMClient(ctrl)
		client.EXPECT().
			GetParameterWithContext(gomock.Any(), gomock.Any()).
			Return(&ssm.GetParameterOutput{}, nil)

		store := NewSSMSecretStore(client, logger.NewMockLogger())

		_, found, err := store.GetParameter(context.Background(), "/staging/email-worker/mailgun_key")
		require.NoError(t, err)
		assert.False(t, found)
	})
}
