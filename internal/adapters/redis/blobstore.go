// Package redis stores employee blobs as plain Redis string keys.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/go-redis/redis/v8"

	"github.com/csg33k/employee-register/internal/domain"
)

type BlobStore struct {
	rdb *goredis.Client
}

// New connects to addr and pings the server before returning.
func New(ctx context.Context, addr string, db int) (*BlobStore, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return &BlobStore{rdb: rdb}, nil
}

func (s *BlobStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Put uses MSET, which Redis applies atomically. Keys never expire.
func (s *BlobStore) Put(ctx context.Context, entries ...domain.BlobEntry) error {
	if len(entries) == 0 {
		return nil
	}
	pairs := make([]interface{}, 0, 2*len(entries))
	for _, e := range entries {
		pairs = append(pairs, e.Key, e.Value)
	}
	return s.rdb.MSet(ctx, pairs...).Err()
}

func (s *BlobStore) Close() error {
	return s.rdb.Close()
}
