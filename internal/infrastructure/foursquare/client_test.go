package foursquare

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/activity-import-service/internal/config"
	"github.com/activity-import-service/internal/domain"
	appErrors "github.com/activity-import-service/internal/pkg/errors"
)

// memoryCache is an in-process CacheRepository for tests.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key], nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *memoryCache) Exists(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok, nil
}

func testConfig(baseURL string) *config.FoursquareConfig {
	return &config.FoursquareConfig{
		APIKey:         "test_key",
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
		RequestDelay:   time.Millisecond,
		CacheTTL:       time.Minute,
		MaxPerRequest:  50,
	}
}

func ratedVenue(id string, rating float64) domain.Venue {
	return domain.Venue{
		FsqID:  id,
		Name:   "Venue " + id,
		Rating: &rating,
	}
}

func TestClient_SearchVenues(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful search", func(t *testing.T) {
		var requests int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&requests, 1)
			assert.Equal(t, "test_key", r.Header.Get("Authorization"))
			assert.Equal(t, "/places/search", r.URL.Path)
			assert.NotEmpty(t, r.URL.Query().Get("ll"))
			assert.NotEmpty(t, r.URL.Query().Get("radius"))
			assert.NotEmpty(t, r.URL.Query().Get("fields"))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"results": []domain.Venue{ratedVenue("a", 4.5), ratedVenue("b", 4.2)},
			})
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), newMemoryCache(), logger)

		// sports-fitness has a single search query
		venues, err := c.SearchVenues(context.Background(), "New York", "sports-fitness", 10)
		require.NoError(t, err)
		assert.Len(t, venues, 2)
		assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
	})

	t.Run("results across queries are deduplicated by fsq_id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Same venue on every query response
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"results": []domain.Venue{ratedVenue("same", 4.5)},
			})
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), newMemoryCache(), logger)

		// daycare issues six queries
		venues, err := c.SearchVenues(context.Background(), "New York", "daycare", 30)
		require.NoError(t, err)
		assert.Len(t, venues, 1)
		assert.Equal(t, "same", venues[0].FsqID)
	})

	t.Run("unknown city fails before any request", func(t *testing.T) {
		var requests int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&requests, 1)
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), newMemoryCache(), logger)

		_, err := c.SearchVenues(context.Background(), "Gotham", "daycare", 10)
		require.Error(t, err)

		appErr, ok := err.(*appErrors.AppError)
		require.True(t, ok)
		assert.Equal(t, "UNKNOWN_CITY", appErr.Code)
		assert.Equal(t, int32(0), atomic.LoadInt32(&requests))
	})

	t.Run("unknown category fails before any request", func(t *testing.T) {
		c := NewClient(testConfig("http://localhost:0"), newMemoryCache(), logger)

		_, err := c.SearchVenues(context.Background(), "New York", "bungee-jumping", 10)
		require.Error(t, err)

		appErr, ok := err.(*appErrors.AppError)
		require.True(t, ok)
		assert.Equal(t, "UNKNOWN_CATEGORY", appErr.Code)
	})

	t.Run("provider error status maps to typed error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"message":"rate limit"}`))
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), newMemoryCache(), logger)

		_, err := c.SearchVenues(context.Background(), "New York", "sports-fitness", 10)
		require.Error(t, err)

		appErr, ok := err.(*appErrors.AppError)
		require.True(t, ok)
		assert.Equal(t, "PROVIDER_ERROR", appErr.Code)
	})

	t.Run("repeat search is served from cache", func(t *testing.T) {
		var requests int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&requests, 1)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"results": []domain.Venue{ratedVenue("cached", 4.5)},
			})
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), newMemoryCache(), logger)

		first, err := c.SearchVenues(context.Background(), "New York", "sports-fitness", 10)
		require.NoError(t, err)
		after := atomic.LoadInt32(&requests)

		second, err := c.SearchVenues(context.Background(), "New York", "sports-fitness", 10)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, after, atomic.LoadInt32(&requests), "second search must not hit the provider")
	})
}

func TestClient_GetVenue(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/places/fsq42", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(ratedVenue("fsq42", 4.8))
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), newMemoryCache(), logger)

		venue, err := c.GetVenue(context.Background(), "fsq42")
		require.NoError(t, err)
		assert.Equal(t, "fsq42", venue.FsqID)
		require.NotNil(t, venue.Rating)
		assert.Equal(t, 4.8, *venue.Rating)
	})

	t.Run("missing venue maps to not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), newMemoryCache(), logger)

		_, err := c.GetVenue(context.Background(), "missing")
		require.Error(t, err)

		appErr, ok := err.(*appErrors.AppError)
		require.True(t, ok)
		assert.Equal(t, "VENUE_NOT_FOUND", appErr.Code)
	})
}

func TestDedupeByFsqID(t *testing.T) {
	venues := []domain.Venue{
		{FsqID: "a", Name: "first a"},
		{FsqID: "b"},
		{FsqID: "a", Name: "second a"},
	}

	result := dedupeByFsqID(venues)
	require.Len(t, result, 2)
	assert.Equal(t, "first a", result[0].Name, "first occurrence wins")
	assert.Equal(t, "b", result[1].FsqID)
}
