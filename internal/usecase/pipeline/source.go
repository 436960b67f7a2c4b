package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/pulsehq/meeting-relevance/internal/domain/entities"
	"github.com/pulsehq/meeting-relevance/pkg/fireflies"
)

// Source retrieves meeting transcripts for one integration credential
type Source interface {
	FetchMeetings(ctx context.Context, credential entities.Integration) ([]fireflies.Transcript, error)
}

// Cache is the key-value byte store backing the cached source. Implemented
// by the Redis and in-memory stores.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, expiration time.Duration)
}

// LiveSource fetches transcripts straight from the Fireflies API
type LiveSource struct {
	client *fireflies.Client
}

// NewLiveSource creates a source backed by the Fireflies client
func NewLiveSource(client *fireflies.Client) *LiveSource {
	return &LiveSource{client: client}
}

func (s *LiveSource) FetchMeetings(ctx context.Context, credential entities.Integration) ([]fireflies.Transcript, error) {
	return s.client.FetchTranscripts(ctx, credential.APIKey)
}

// CachedSource wraps another Source with a read-through cache keyed by the
// credential's pulse id. Cache absence or corruption never fails a fetch;
// it falls back to the wrapped source and rewrites the entry.
type CachedSource struct {
	next   Source
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedSource decorates next with the given cache
func NewCachedSource(next Source, cache Cache, ttl time.Duration, logger *zap.Logger) *CachedSource {
	return &CachedSource{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (s *CachedSource) FetchMeetings(ctx context.Context, credential entities.Integration) ([]fireflies.Transcript, error) {
	key := cacheKey(credential)

	if raw, ok := s.cache.Get(ctx, key); ok {
		var transcripts []fireflies.Transcript
		if err := json.Unmarshal([]byte(raw), &transcripts); err == nil {
			return transcripts, nil
		}
		s.logger.Warn("discarding corrupt transcript cache entry",
			zap.String("pulse_id", credential.OrganizationKey),
		)
	}

	transcripts, err := s.next.FetchMeetings(ctx, credential)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(transcripts); err == nil {
		s.cache.Set(ctx, key, string(raw), s.ttl)
	}
	return transcripts, nil
}

func cacheKey(credential entities.Integration) string {
	return "fireflies:transcripts:" + credential.OrganizationKey
}
