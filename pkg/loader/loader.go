package loader

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"strings"
)

// Shard represents one corpus file that can be streamed into an
// extraction run. The actual content is retrieved via the associated
// ShardLoader, so the same Shard value works for local files and for
// objects in a bucket.
type Shard struct {
	ID     string
	Path   string
	Loader ShardLoader
}

// NewShardParams defines the input parameters for creating a Shard.
type NewShardParams struct {
	ID     string
	Path   string
	Loader ShardLoader
}

// NewShard creates a Shard from the provided parameters.
func NewShard(params NewShardParams) Shard {
	return Shard{
		ID:     params.ID,
		Path:   params.Path,
		Loader: params.Loader,
	}
}

// Open returns a reader over the shard's decoded content. Shards whose
// path ends in .gz are decompressed transparently; syntactic n-gram
// corpora ship gzipped.
func (s *Shard) Open(ctx context.Context) (io.Reader, error) {
	raw, err := s.Loader.GetShardBytes(ctx, *s)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(s.Path, ".gz") {
		return gzip.NewReader(bytes.NewReader(raw))
	}
	return bytes.NewReader(raw), nil
}

// ShardLoader defines the interface for loading the contents of a Shard.
// Implementations may load shards from disk, cloud storage, or other
// sources.
type ShardLoader interface {
	GetShardBytes(ctx context.Context, shard Shard) ([]byte, error)
}

// CacheKey identifies a shard's content for loader-side caching and
// request deduplication.
func CacheKey(shard Shard) string {
	return shard.Path
}
