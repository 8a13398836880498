package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Client publishes report bundles to an S3 bucket under an optional key
// prefix.
type S3Client struct {
	bucket   string
	prefix   string
	uploader *s3manager.Uploader
	s3Svc    *s3.S3
}

func NewS3Client(bucket, prefix, region string) (*S3Client, error) {
	if bucket == "" {
		return nil, fmt.Errorf("S3 bucket name is required")
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3Client{
		bucket:   bucket,
		prefix:   prefix,
		uploader: s3manager.NewUploader(sess),
		s3Svc:    s3.New(sess),
	}, nil
}

func (c *S3Client) UploadFile(localPath, s3Key string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", localPath, err)
	}
	defer file.Close()

	key := c.buildKey(s3Key)
	_, err = c.uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file to s3://%s/%s: %w", c.bucket, key, err)
	}

	return nil
}

func (c *S3Client) UploadContent(content []byte, s3Key string) error {
	key := c.buildKey(s3Key)
	_, err := c.uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(content),
	})
	if err != nil {
		return fmt.Errorf("failed to upload content to s3://%s/%s: %w", c.bucket, key, err)
	}
	return nil
}

func (c *S3Client) FileExists(s3Key string) (bool, error) {
	key := c.buildKey(s3Key)
	_, err := c.s3Svc.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *S3Client) GetBucket() string {
	return c.bucket
}

func (c *S3Client) buildKey(key string) string {
	if c.prefix == "" {
		return key
	}
	key = strings.TrimPrefix(key, "/")
	return filepath.Join(c.prefix, key)
}

func (c *S3Client) GetS3URI(key string) string {
	fullKey := c.buildKey(key)
	return fmt.Sprintf("s3://%s/%s", c.bucket, fullKey)
}
