package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/singleflight"

	"depdm/internal/util"
	"depdm/pkg/loader"
)

// S3ShardLoader is a ShardLoader implementation that loads corpus shards
// from an S3 bucket. It uses the AWS SDK v2 for Go.
//
// This loader is useful when corpus files are stored in S3 or an
// S3-compatible store like MinIO instead of the local filesystem.
type S3ShardLoader struct {
	bucket string
	client *s3.Client

	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewS3ShardLoaderWithClient creates a new S3ShardLoader using an
// existing s3.Client. This is useful if you want to reuse a
// preconfigured AWS client.
func NewS3ShardLoaderWithClient(bucket string, client *s3.Client) *S3ShardLoader {
	return &S3ShardLoader{
		bucket: bucket,
		client: client,
		cache:  make(map[string][]byte),
	}
}

// NewS3ShardLoaderParams defines the configuration parameters for
// creating a new S3ShardLoader.
//
// Bucket specifies the S3 bucket name. Endpoint allows overriding the S3
// endpoint. Region specifies the AWS region. AccessKey and SecretKey
// provide static credentials.
type NewS3ShardLoaderParams struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// NewS3ShardLoader creates a new S3ShardLoader using the provided
// parameters. It initializes an AWS S3 client with static credentials
// and the given endpoint/region.
func NewS3ShardLoader(ctx context.Context, params NewS3ShardLoaderParams) (*S3ShardLoader, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(params.Region),
		config.WithBaseEndpoint(params.Endpoint),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			params.AccessKey,
			params.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})
	return NewS3ShardLoaderWithClient(params.Bucket, client), nil
}

// GetShardBytes downloads the shard object. Results are cached, and
// concurrent requests for the same shard share one download. Transient
// download failures are retried.
func (l *S3ShardLoader) GetShardBytes(ctx context.Context, shard loader.Shard) ([]byte, error) {
	key := loader.CacheKey(shard)

	l.cacheMu.RLock()
	if cached, ok := l.cache[key]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(key, func() (any, error) {
		l.cacheMu.RLock()
		if cached, ok := l.cache[key]; ok {
			l.cacheMu.RUnlock()
			return cached, nil
		}
		l.cacheMu.RUnlock()

		data, err := util.RetryWithContext(ctx, 3, func(ctx context.Context) ([]byte, error) {
			return l.download(ctx, shard.Path)
		})
		if err != nil {
			return nil, err
		}

		l.cacheMu.Lock()
		l.cache[key] = data
		l.cacheMu.Unlock()

		return data, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}

func (l *S3ShardLoader) download(ctx context.Context, key string) ([]byte, error) {
	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get shard from S3: %w", err)
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, out.Body); err != nil {
		return nil, fmt.Errorf("failed to read shard contents: %w", err)
	}
	return buf.Bytes(), nil
}
