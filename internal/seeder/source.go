package seeder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ErrNoDump means the source has nothing for a partition.
var ErrNoDump = errors.New("no dump for partition")

// Source yields the JSON dump of one partition.
type Source interface {
	Open(ctx context.Context, partition string) (io.ReadCloser, error)
}

func dumpName(partition string) string {
	return partition + ".json"
}

// FileSource reads <Dir>/<partition>.json.
type FileSource struct {
	Dir string
}

func (s FileSource) Open(ctx context.Context, partition string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.Dir, dumpName(partition)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoDump, partition)
		}
		return nil, err
	}
	return f, nil
}

// GetObjectAPI is the part of the S3 client the seeder needs.
type GetObjectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads s3://<Bucket>/<Prefix><partition>.json.
type S3Source struct {
	client GetObjectAPI
	bucket string
	prefix string
}

var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) GetObjectAPI {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// NewS3Source builds an S3 client from c. Static credentials are used when
// an access key is configured, the default AWS chain otherwise.
func NewS3Source(ctx context.Context, c S3Config) (*S3Source, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(c.Region)}
	if c.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
		o.UsePathStyle = c.UsePathStyle
	})

	return NewS3SourceWithClient(client, c.Bucket, c.Prefix), nil
}

func NewS3SourceWithClient(client GetObjectAPI, bucket, prefix string) *S3Source {
	return &S3Source{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3Source) Open(ctx context.Context, partition string) (io.ReadCloser, error) {
	key := path.Join(s.prefix, dumpName(partition))
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("%w: %s", ErrNoDump, partition)
		}
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.bucket, key, err)
	}
	return out.Body, nil
}
