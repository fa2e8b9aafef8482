package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"spice-garden/domain"
	"spice-garden/internal/utils"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

var AllowImage = []string{"image/jpeg", "image/png", "image/webp"}

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error)
		DeleteFile(ctx context.Context, key string) error
		GetPublicLinkKey(key string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Errorf("failed to load aws config: %v", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: utils.GetConfig("AWS_S3_BUCKET"),
		region: region,
	}
}

// DetectContentType sniffs the uploaded bytes and rejects anything outside
// the allow-list. The extension and the client supplied header are ignored.
func DetectContentType(file *multipart.FileHeader, allowed ...string) (*mimetype.MIME, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, err
	}
	if len(allowed) > 0 && !mimetype.EqualsAny(mime.String(), allowed...) {
		return nil, domain.ErrInvalidImageFormat
	}
	return mime, nil
}

func (a *awsS3) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	mime, err := DetectContentType(file, allowed...)
	if err != nil {
		return "", err
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	if fileName == "" {
		fileName = uuid.NewString()
	}
	key := path.Join(folder, fileName+mime.Extension())

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(mime.String()),
	})
	if err != nil {
		return "", err
	}

	return key, nil
}

func (a *awsS3) DeleteFile(ctx context.Context, key string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, key)
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
