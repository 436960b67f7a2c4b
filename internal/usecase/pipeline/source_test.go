package pipeline

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pulsehq/meeting-relevance/internal/domain/entities"
	"github.com/pulsehq/meeting-relevance/pkg/fireflies"
)

type fakeCache struct {
	items map[string]string
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, bool) {
	v, ok := c.items[key]
	return v, ok
}

func (c *fakeCache) Set(_ context.Context, key string, value string, _ time.Duration) {
	c.items[key] = value
	c.sets++
}

type fakeSource struct {
	transcripts []fireflies.Transcript
	err         error
	calls       int
}

func (s *fakeSource) FetchMeetings(_ context.Context, _ entities.Integration) ([]fireflies.Transcript, error) {
	s.calls++
	return s.transcripts, s.err
}

var testCredential = entities.Integration{OrganizationKey: "org1", UserID: "u1", APIKey: "K1"}

func TestCachedSource_HitSkipsNetwork(t *testing.T) {
	cached := []fireflies.Transcript{{ID: "t1", Title: "Cached"}}
	raw, _ := json.Marshal(cached)

	c := newFakeCache()
	c.items[cacheKey(testCredential)] = string(raw)

	live := &fakeSource{transcripts: []fireflies.Transcript{{ID: "t2", Title: "Live"}}}
	s := NewCachedSource(live, c, time.Minute, zap.NewNop())

	got, err := s.FetchMeetings(context.Background(), testCredential)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if live.calls != 0 {
		t.Errorf("cache hit should not reach the live source, got %d calls", live.calls)
	}
	if len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("expected cached transcripts, got %+v", got)
	}
}

func TestCachedSource_MissFetchesAndWritesBack(t *testing.T) {
	c := newFakeCache()
	live := &fakeSource{transcripts: []fireflies.Transcript{{ID: "t2", Title: "Live"}}}
	s := NewCachedSource(live, c, time.Minute, zap.NewNop())

	got, err := s.FetchMeetings(context.Background(), testCredential)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if live.calls != 1 {
		t.Errorf("expected 1 live call, got %d", live.calls)
	}
	if len(got) != 1 || got[0].ID != "t2" {
		t.Errorf("unexpected transcripts %+v", got)
	}
	if c.sets != 1 {
		t.Errorf("expected cache write-back, got %d sets", c.sets)
	}
}

func TestCachedSource_CorruptEntryFallsBackToLive(t *testing.T) {
	c := newFakeCache()
	c.items[cacheKey(testCredential)] = "{not json"

	live := &fakeSource{transcripts: []fireflies.Transcript{{ID: "t2", Title: "Live"}}}
	s := NewCachedSource(live, c, time.Minute, zap.NewNop())

	got, err := s.FetchMeetings(context.Background(), testCredential)
	if err != nil {
		t.Fatalf("corrupt cache must not abort the fetch: %v", err)
	}
	if live.calls != 1 {
		t.Errorf("expected fallback to live source, got %d calls", live.calls)
	}
	if len(got) != 1 || got[0].ID != "t2" {
		t.Errorf("unexpected transcripts %+v", got)
	}
	// The corrupt entry is replaced by a fresh one.
	if c.sets != 1 {
		t.Errorf("expected cache rewrite, got %d sets", c.sets)
	}
	var rewritten []fireflies.Transcript
	if err := json.Unmarshal([]byte(c.items[cacheKey(testCredential)]), &rewritten); err != nil {
		t.Errorf("rewritten cache entry is not valid JSON: %v", err)
	}
}
