package domain

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/ssm"
)

//go:generate mockgen -destination mocks/mock_aws_clients.go -package mocks github.com/schedmail/email-worker/internal/domain SSMClient,S3Client

// SSMClient defines the interface for the AWS parameter store calls the
// worker makes.
type SSMClient interface {
	GetParameterWithContext(ctx aws.Context, input *ssm.GetParameterInput, opts ...request.Option) (*ssm.GetParameterOutput, error)
}

// S3Client defines the interface for the blob store calls the worker
// makes.
type S3Client interface {
	GetObjectWithContext(ctx aws.Context, input *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error)
}
