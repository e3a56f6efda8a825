package objectstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/avanekar/PdfChatAPI/internal/config"
	"github.com/avanekar/PdfChatAPI/internal/metrics"
	"github.com/avanekar/PdfChatAPI/pkg/logger_i"
)

var (
	instance *S3Presigner
	mu       sync.Mutex
)

// PresignAPI is the slice of the S3 presign client we use.
type PresignAPI interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Presigner hands out time-limited write URLs so file bytes go straight
// from the browser to the bucket instead of through this service.
type S3Presigner struct {
	presign PresignAPI
	bucket  string
	logger  *logger_i.Logger
}

func GetS3Presigner(ctx context.Context) *S3Presigner {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}

	logger := logger_i.NewLogger("S3 Presigner")
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.AWSRegion()))
	if err != nil {
		logger.Error("Could not load AWS config", "error", err.Error())
		return nil
	}

	client := s3.NewFromConfig(cfg)
	instance = &S3Presigner{
		presign: s3.NewPresignClient(client),
		bucket:  config.BucketName(),
		logger:  logger,
	}
	logger.Info("S3 presigner init successfully", "bucket", instance.bucket)
	return instance
}

// PresignWrite returns a PUT URL valid for 60 seconds. No read-back or
// integrity check happens here; the storage service is trusted.
func (p *S3Presigner) PresignWrite(ctx context.Context, objectName string) (string, error) {
	log := p.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "object", objectName)

	start := time.Now()
	req, err := p.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(objectName),
	}, s3.WithPresignExpires(config.PresignExpiry))
	metrics.CaptureExecutionMetrics("s3", time.Since(start))

	if err != nil {
		log.Error("Failed to presign write", "error", err.Error())
		return "", err
	}
	log.Debug("Presigned write")
	return req.URL, nil
}

// FileURL is the address stored in the chat record and used for the
// duplicate-upload check.
func (p *S3Presigner) FileURL(objectName string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", p.bucket, objectName)
}

// NewTestPresigner exists so a faked presign client can be injected in tests.
func NewTestPresigner(presign PresignAPI, bucket string) *S3Presigner {
	return &S3Presigner{
		presign: presign,
		bucket:  bucket,
		logger:  logger_i.NewLogger("test presigner"),
	}
}
