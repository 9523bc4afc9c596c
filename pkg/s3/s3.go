package s3

import (
	"context"
	"fmt"
	"mime/multipart"

	"ProjectBlog/pkg/upload"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Region          string
	BucketName      string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint targets an S3 compatible service instead of AWS.
	Endpoint string
}

type s3Client struct {
	uploader   *s3manager.Uploader
	bucketName string
	log        *logrus.Logger
}

func New(opts Options, log *logrus.Logger) (upload.ItfUploader, error) {
	sess, err := newSession(opts)
	if err != nil {
		return nil, err
	}

	return &s3Client{
		uploader:   s3manager.NewUploader(sess),
		bucketName: opts.BucketName,
		log:        log,
	}, nil
}

// Save puts the image under its client file name, replacing any object
// already stored with that key.
func (s *s3Client) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	key, err := upload.FileName(file)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer func(src multipart.File) {
		if err := src.Close(); err != nil {
			s.log.WithField("error", err.Error()).Warn("Failed to close uploaded file")
		}
	}(src)

	contentType := file.Header.Get("Content-Type")
	input := &s3manager.UploadInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
		Body:   src,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	out, err := s.uploader.UploadWithContext(ctx, input)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error":  err.Error(),
			"bucket": s.bucketName,
			"key":    key,
		}).Error("Failed to upload image")
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	s.log.WithFields(logrus.Fields{
		"location": out.Location,
	}).Debug("Image uploaded")

	return key, nil
}

func newSession(opts Options) (*session.Session, error) {
	cfg := &aws.Config{
		Region: aws.String(opts.Region),
		Credentials: credentials.NewStaticCredentials(
			opts.AccessKeyID,
			opts.SecretAccessKey,
			"",
		),
	}
	if opts.Endpoint != "" {
		cfg.Endpoint = aws.String(opts.Endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, err
	}

	return sess, nil
}
