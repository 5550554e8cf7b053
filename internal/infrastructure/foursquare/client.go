package foursquare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/activity-import-service/internal/config"
	"github.com/activity-import-service/internal/domain"
	"github.com/activity-import-service/internal/domain/repository"
	"github.com/activity-import-service/internal/pkg/errors"
	"github.com/activity-import-service/internal/taxonomy"
)

// searchFields is the field list requested on every search call.
const searchFields = "fsq_id,name,location,categories,rating,stats,hours,price,website,tel,email,description,features"

const cacheKeyPrefix = "fsq:"

type client struct {
	httpClient    *http.Client
	baseURL       string
	apiKey        string
	requestDelay  time.Duration
	cacheTTL      time.Duration
	maxPerRequest int
	cacheRepo     repository.CacheRepository
	logger        *zap.Logger

	// mu serializes outbound calls so the minimum inter-request delay
	// holds process-wide, not per caller.
	mu          sync.Mutex
	lastRequest time.Time
}

// NewClient creates a Foursquare Places API client. Responses are cached
// in cacheRepo for the configured TTL, keyed by request signature.
func NewClient(cfg *config.FoursquareConfig, cacheRepo repository.CacheRepository, logger *zap.Logger) repository.PlacesRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:       cfg.BaseURL,
		apiKey:        cfg.APIKey,
		requestDelay:  cfg.RequestDelay,
		cacheTTL:      cfg.CacheTTL,
		maxPerRequest: cfg.MaxPerRequest,
		cacheRepo:     cacheRepo,
		logger:        logger,
	}
}

type searchResponse struct {
	Results []domain.Venue `json:"results"`
}

// SearchVenues issues one request per configured query string and merges
// the results, deduplicated by fsq_id with first occurrence preserved.
// A failure on any single request propagates; containment across
// (city, category) pairs is the orchestrator's job.
func (c *client) SearchVenues(ctx context.Context, city, category string, limit int) ([]domain.Venue, error) {
	point, err := taxonomy.CoordinatesFor(city)
	if err != nil {
		return nil, err
	}

	catCfg, err := taxonomy.ConfigFor(category)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = c.maxPerRequest
	}

	// Spread the limit across the category's queries, capped at the
	// provider's per-request maximum.
	perQuery := int(math.Ceil(float64(limit) / float64(len(catCfg.Queries))))
	if perQuery > c.maxPerRequest {
		perQuery = c.maxPerRequest
	}

	var all []domain.Venue
	for _, query := range catCfg.Queries {
		params := url.Values{}
		params.Set("ll", fmt.Sprintf("%s,%s",
			strconv.FormatFloat(point.Lat, 'f', -1, 64),
			strconv.FormatFloat(point.Lon, 'f', -1, 64)))
		params.Set("radius", strconv.Itoa(int(point.RadiusM)))
		params.Set("query", query)
		params.Set("categories", strings.Join(catCfg.PlaceCategoryIDs, ","))
		params.Set("limit", strconv.Itoa(perQuery))
		params.Set("fields", searchFields)

		var resp searchResponse
		if err := c.makeRequest(ctx, "/places/search", params, &resp); err != nil {
			c.logger.Error("Places search request failed",
				zap.String("city", city),
				zap.String("category", category),
				zap.String("query", query),
				zap.Error(err))
			return nil, err
		}

		all = append(all, resp.Results...)
	}

	deduped := dedupeByFsqID(all)

	c.logger.Debug("Places search finished",
		zap.String("city", city),
		zap.String("category", category),
		zap.Int("raw_count", len(all)),
		zap.Int("unique_count", len(deduped)))

	return deduped, nil
}

// GetVenue fetches a single venue by external id.
func (c *client) GetVenue(ctx context.Context, fsqID string) (*domain.Venue, error) {
	params := url.Values{}
	params.Set("fields", searchFields)

	var venue domain.Venue
	if err := c.makeRequest(ctx, "/places/"+fsqID, params, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

// makeRequest consults the response cache, then performs a rate-limited
// GET against the provider and caches the raw body on success.
func (c *client) makeRequest(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	// url.Values.Encode sorts keys, so the signature is canonical.
	cacheKey := cacheKeyPrefix + endpoint + "?" + params.Encode()

	cached, err := c.cacheRepo.Get(ctx, cacheKey)
	if err != nil {
		c.logger.Warn("Cache lookup failed, falling through to provider",
			zap.String("key", cacheKey), zap.Error(err))
	}
	if cached != nil {
		if err := json.Unmarshal(cached, out); err == nil {
			c.logger.Debug("Provider cache hit", zap.String("key", cacheKey))
			return nil
		}
		// Poisoned entry: drop it and refetch.
		_ = c.cacheRepo.Delete(ctx, cacheKey)
	}

	c.waitTurn()

	reqURL := c.baseURL + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Provider request failed", zap.String("url", reqURL), zap.Error(err))
		return errors.ErrProviderError.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return errors.ErrVenueNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Provider returned error status",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return errors.ErrProviderError.WithDetails(map[string]interface{}{
			"status_code": resp.StatusCode,
			"body":        string(body),
		})
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if err := c.cacheRepo.Set(ctx, cacheKey, body, c.cacheTTL); err != nil {
		c.logger.Warn("Failed to cache provider response",
			zap.String("key", cacheKey), zap.Error(err))
	}

	return nil
}

// waitTurn blocks until at least requestDelay has passed since the last
// outbound call.
func (c *client) waitTurn() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if wait := c.requestDelay - time.Since(c.lastRequest); wait > 0 {
		time.Sleep(wait)
	}
	c.lastRequest = time.Now()
}

func dedupeByFsqID(venues []domain.Venue) []domain.Venue {
	seen := make(map[string]struct{}, len(venues))
	result := make([]domain.Venue, 0, len(venues))
	for _, v := range venues {
		if _, ok := seen[v.FsqID]; ok {
			continue
		}
		seen[v.FsqID] = struct{}{}
		result = append(result, v)
	}
	return result
}
