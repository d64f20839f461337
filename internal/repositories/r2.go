package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// R2Store keeps gallery objects in a Cloudflare R2 bucket through the S3 API.
type R2Store struct {
	Client        *s3.Client
	BucketName    string
	Endpoint      string
	PublicBaseURL string
}

// NewR2Store initializes the R2 client using static credentials and custom endpoint.
// endpoint may be empty to use the account's default R2 endpoint.
func NewR2Store(accessKey, secretKey, accountID, bucketName, region, publicBaseURL, endpoint string) *R2Store {
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
	}

	cfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		Region:      region,
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2Store{
		Client:        client,
		BucketName:    bucketName,
		Endpoint:      endpoint,
		PublicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// PublicURL is the browser-facing URL of an object key.
func (r *R2Store) PublicURL(key string) string {
	if r.PublicBaseURL == "" {
		return fmt.Sprintf("%s/%s/%s", r.Endpoint, r.BucketName, key)
	}
	return r.PublicBaseURL + "/" + key
}

// Upload stores the object under key and returns its public URL.
func (r *R2Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return r.PublicURL(key), nil
}

// GeneratePresignedPutURL creates a presigned URL for uploading a file to R2.
func (r *R2Store) GeneratePresignedPutURL(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	presigner := s3.NewPresignClient(r.Client)
	input := &s3.PutObjectInput{
		Bucket: aws.String(r.BucketName),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	req, err := presigner.PresignPutObject(ctx, input, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// VerifyObjectExists checks if a given object key exists in the R2 bucket.
// Returns true if the object exists, false if not, and an error if something went wrong.
func (r *R2Store) VerifyObjectExists(ctx context.Context, key string) (bool, error) {
	_, err := r.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(r.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *s3types.NotFound
		if ok := errors.As(err, &nsk); ok {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
