package io

import (
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"depdm/pkg/loader"
)

func TestGetShardBytesReadsAndCaches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shard.txt")
	if err := os.WriteFile(path, []byte("line one\nline two\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewIOShardLoader()
	shard := loader.NewShard(loader.NewShardParams{ID: "s1", Path: path, Loader: l})

	data, err := l.GetShardBytes(context.Background(), shard)
	if err != nil {
		t.Fatalf("GetShardBytes(): %v", err)
	}
	if string(data) != "line one\nline two\n" {
		t.Errorf("content = %q", data)
	}

	// Second read comes from cache even if the file disappears.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	cached, err := l.GetShardBytes(context.Background(), shard)
	if err != nil {
		t.Fatalf("cached GetShardBytes(): %v", err)
	}
	if string(cached) != string(data) {
		t.Errorf("cached content = %q, want %q", cached, data)
	}
}

func TestGetShardBytesMissingFile(t *testing.T) {
	l := NewIOShardLoader()
	shard := loader.NewShard(loader.NewShardParams{Path: filepath.Join(t.TempDir(), "nope"), Loader: l})
	if _, err := l.GetShardBytes(context.Background(), shard); err == nil {
		t.Error("expected error for missing shard")
	}
}

func TestShardOpenGunzips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shard.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte("compressed corpus line\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	shard := loader.NewShard(loader.NewShardParams{Path: path, Loader: NewIOShardLoader()})
	r, err := shard.Open(context.Background())
	if err != nil {
		t.Fatalf("Open(): %v", err)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll(): %v", err)
	}
	if string(content) != "compressed corpus line\n" {
		t.Errorf("content = %q", content)
	}
}
