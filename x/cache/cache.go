// Package cache provides the namespaced TTL store backing every resolver.
// It is never a source of truth: a redis failure on read degrades to a miss
// and the caller falls through to the directory store.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("cache")

// Namespaces, one per cached entity kind. Writers invalidating an entry must
// use the same namespace the resolver populated it under.
const (
	NamespaceUserRoles    = "userroles"
	NamespaceTeamRoles    = "teamroles"
	NamespaceUserPolicies = "userpolicies"
	NamespaceTeamPolicies = "teampolicies"
)

var (
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gatekeeper_cache_hits_total",
		Help: "Number of TTL cache hits per namespace",
	}, []string{"namespace"})
	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gatekeeper_cache_misses_total",
		Help: "Number of TTL cache misses per namespace",
	}, []string{"namespace"})
)

// Store is a keyed TTL cache for one entity kind. Values round-trip through
// json; entries expire after the configured TTL or on explicit Delete,
// whichever comes first.
type Store[T any] struct {
	rdb       *redis.Client
	namespace string
	ttl       time.Duration
}

// NewStore creates a store isolated under the given namespace.
func NewStore[T any](rdb *redis.Client, namespace string, ttl time.Duration) *Store[T] {
	return &Store[T]{
		rdb:       rdb,
		namespace: namespace,
		ttl:       ttl,
	}
}

func (s *Store[T]) format(key string) string {
	return fmt.Sprintf("%s:%s", s.namespace, key)
}

// Get returns the cached value and whether it was present. Absence covers
// never-set, expired, and any redis failure.
func (s *Store[T]) Get(ctx context.Context, key string) (T, bool) {
	ctx, span := tracer.Start(ctx, "Cache.Store.Get")
	defer span.End()

	var value T
	raw, err := s.rdb.Get(ctx, s.format(key)).Result()
	if err != nil {
		if err != redis.Nil {
			span.RecordError(err)
		}
		cacheMisses.WithLabelValues(s.namespace).Inc()
		return value, false
	}

	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		span.RecordError(err)
		cacheMisses.WithLabelValues(s.namespace).Inc()
		var zero T
		return zero, false
	}

	cacheHits.WithLabelValues(s.namespace).Inc()
	return value, true
}

// Set stores the value and restarts its TTL clock.
func (s *Store[T]) Set(ctx context.Context, key string, value T) error {
	ctx, span := tracer.Start(ctx, "Cache.Store.Set")
	defer span.End()

	raw, err := json.Marshal(value)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := s.rdb.Set(ctx, s.format(key), raw, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Delete removes the entry immediately. Used by mutation paths for
// invalidation.
func (s *Store[T]) Delete(ctx context.Context, key string) error {
	ctx, span := tracer.Start(ctx, "Cache.Store.Delete")
	defer span.End()

	if err := s.rdb.Del(ctx, s.format(key)).Err(); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
