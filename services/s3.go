package services

import (
	"context"
	"fmt"
	"stylistapi/config"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// presignedURLExpiration is how long presigned read and upload links stay valid.
const presignedURLExpiration = 15 * time.Minute

type AWSServiceProvider interface {
	InitPresignClient(ctx context.Context) error
	PresignLink(ctx context.Context, objectKey string) (string, error)
	GetPresignedR2FileReadURL(ctx context.Context, objectKey string) (string, error)
}

// AWSService presigns clothing photo links on the R2 bucket.
type AWSService struct {
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	BucketName      string
	S3PresignClient *s3.PresignClient
}

func NewAWSService(cfg config.Config) *AWSService {
	return &AWSService{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		AccessKeySecret: cfg.R2AccessKeySecret,
		BucketName:      cfg.R2BucketName,
	}
}

func (awsService *AWSService) InitPresignClient(ctx context.Context) error {
	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", awsService.AccountID),
		}, nil
	})
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithEndpointResolverWithOptions(r2Resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(awsService.AccessKeyID, awsService.AccessKeySecret, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return fmt.Errorf("load r2 config: %w", err)
	}
	awsService.S3PresignClient = s3.NewPresignClient(s3.NewFromConfig(cfg))
	return nil
}

func (awsService *AWSService) PresignLink(ctx context.Context, objectKey string) (string, error) {
	request, err := awsService.S3PresignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(awsService.BucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(presignedURLExpiration))
	if err != nil {
		return "", fmt.Errorf("presign upload %s: %w", objectKey, err)
	}
	return request.URL, nil
}

func (awsService *AWSService) GetPresignedR2FileReadURL(ctx context.Context, objectKey string) (string, error) {
	request, err := awsService.S3PresignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(awsService.BucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(presignedURLExpiration))
	if err != nil {
		return "", fmt.Errorf("presign read %s: %w", objectKey, err)
	}
	return request.URL, nil
}
