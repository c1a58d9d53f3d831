package service

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/schedmail/email-worker/internal/domain"
	"github.com/schedmail/email-worker/pkg/logger"
)

// AttachmentService downloads attachment bytes from the blob store. The
// bucket is resolved from the secret store once per run.
type AttachmentService struct {
	client domain.S3Client
	bucket string
	logger logger.Logger
}

func NewAttachmentService(client domain.S3Client, bucket string, logger logger.Logger) *AttachmentService {
	return &AttachmentService{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// FetchAll downloads every attachment in order. Any store-level failure
// aborts the email.
func (s *AttachmentService) FetchAll(ctx context.Context, attachments []domain.EmailAttachment) ([]domain.AttachmentContent, error) {
	contents := make([]domain.AttachmentContent, 0, len(attachments))
	for _, attachment := range attachments {
		content, err := s.fetch(ctx, attachment.BlobKey)
		if err != nil {
			return nil, &domain.AttachmentFetchError{Key: attachment.BlobKey, Err: err}
		}
		contents = append(contents, domain.AttachmentContent{
			Filename: attachment.Filename,
			Content:  content,
		})
	}
	return contents, nil
}

func (s *AttachmentService) fetch(ctx context.Context, key string) ([]byte, error) {
	s.logger.WithField("bucket", s.bucket).WithField("key", key).Debug("Downloading attachment.")

	output, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = output.Body.Close() }()

	return io.ReadAll(output.Body)
}
