// Package client is a thin, rate-limited HTTP client for the Guild Wars 2
// v2 trade API. It owns request pacing, the one-retry backoff on 429, auth,
// and response caching; everything above it sees plain typed results.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/mwren/craftcost/internal/domain"
	"github.com/mwren/craftcost/internal/metrics"
)

const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://api.guildwars2.com/v2"

	// defaultRequestsPerSecond keeps well inside the service's published
	// rate budget.
	defaultRequestsPerSecond = 10
	defaultBurst             = 1

	defaultCacheSize = 512
	defaultCacheTTL  = 5 * time.Minute

	// retryDelay is the pause before the single retry after a 429.
	retryDelay = 200 * time.Millisecond
)

// Config holds client configuration.
type Config struct {
	BaseURL           string
	Token             string
	RequestsPerSecond float64
	Burst             int
	CacheSize         int
	CacheTTL          time.Duration
	HTTPClient        *http.Client
}

// Client is safe for concurrent use.
type Client struct {
	httpc   *http.Client
	base    string
	token   string
	limiter *rate.Limiter
	cache   *expirable.LRU[string, []byte]
}

// New creates a client, filling unset config fields with defaults.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultRequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaultBurst
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpc:   cfg.HTTPClient,
		base:    strings.TrimSuffix(cfg.BaseURL, "/"),
		token:   cfg.Token,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		cache:   expirable.NewLRU[string, []byte](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}

// AllRecipes lists every recipe id the service knows.
func (c *Client) AllRecipes(ctx context.Context) ([]domain.RecipeID, error) {
	var out []domain.RecipeID
	if err := c.fetch(ctx, false, "recipes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Recipes fetches full recipe data for a batch of ids.
func (c *Client) Recipes(ctx context.Context, ids []domain.RecipeID) ([]domain.Recipe, error) {
	var out []domain.Recipe
	if err := c.fetch(ctx, false, "recipes", idsQuery(ids), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Items fetches reference data for a batch of item ids.
func (c *Client) Items(ctx context.Context, ids []domain.ItemID) ([]domain.Item, error) {
	var out []domain.Item
	if err := c.fetch(ctx, false, "items", idsQuery(ids), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Listings fetches order books for a batch of item ids. Sell offers are
// sorted ascending by unit price and buy offers descending here, once, at
// load time; nothing downstream re-sorts them.
func (c *Client) Listings(ctx context.Context, ids []domain.ItemID) ([]domain.Listings, error) {
	var out []domain.Listings
	if err := c.fetch(ctx, false, "commerce/listings", idsQuery(ids), &out); err != nil {
		return nil, err
	}
	for i := range out {
		sortBook(&out[i])
	}
	return out, nil
}

// Materials fetches the account's owned material storage.
func (c *Client) Materials(ctx context.Context) ([]domain.Material, error) {
	var out []domain.Material
	if err := c.fetch(ctx, true, "account/materials", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Characters lists the account's character names.
func (c *Client) Characters(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.fetch(ctx, true, "characters", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CharacterRecipes lists the recipe ids a character has learned.
func (c *Client) CharacterRecipes(ctx context.Context, name string) ([]domain.RecipeID, error) {
	var out struct {
		Recipes []domain.RecipeID `json:"recipes"`
	}
	path := "characters/" + url.PathEscape(name) + "/recipes"
	if err := c.fetch(ctx, true, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Recipes, nil
}

// fetch performs one GET, decoding the JSON body into out. Unauthenticated
// responses are served from and stored into the LRU cache; authenticated
// ones (account state) are always fetched fresh.
func (c *Client) fetch(ctx context.Context, auth bool, path string, query url.Values, out any) error {
	key := cacheKey(path, query)
	if !auth {
		if body, ok := c.cache.Get(key); ok {
			metrics.ClientCacheHits.Inc()
			return json.Unmarshal(body, out)
		}
	}

	body, err := c.get(ctx, auth, path, query)
	if err != nil {
		return err
	}
	if !auth {
		c.cache.Add(key, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, auth bool, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	body, status, err := c.doOnce(ctx, auth, path, query)
	if err != nil {
		metrics.ClientRequestsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if status == http.StatusTooManyRequests {
		metrics.ClientRequestsTotal.WithLabelValues("rate_limited").Inc()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
		body, status, err = c.doOnce(ctx, auth, path, query)
		if err != nil {
			metrics.ClientRequestsTotal.WithLabelValues("error").Inc()
			return nil, err
		}
	}

	switch status {
	case http.StatusOK, http.StatusPartialContent:
		metrics.ClientRequestsTotal.WithLabelValues("success").Inc()
		return body, nil
	default:
		metrics.ClientRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%s returned status %d", path, status)
	}
}

func (c *Client) doOnce(ctx context.Context, auth bool, path string, query url.Values) ([]byte, int, error) {
	q := url.Values{}
	for k, vs := range query {
		q[k] = vs
	}
	q.Set("v", "latest")
	if auth {
		q.Set("access_token", c.token)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/"+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response: %w", err)
	}
	return body, res.StatusCode, nil
}

// sortBook establishes the canonical book ordering: sells ascending by unit
// price, buys descending. Stable so equal-priced levels keep the service's
// relative order.
func sortBook(ls *domain.Listings) {
	sort.SliceStable(ls.Sells, func(i, j int) bool { return ls.Sells[i].UnitPrice < ls.Sells[j].UnitPrice })
	sort.SliceStable(ls.Buys, func(i, j int) bool { return ls.Buys[i].UnitPrice > ls.Buys[j].UnitPrice })
}

func cacheKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

func idsQuery[T ~int](ids []T) url.Values {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = strconv.Itoa(int(id))
	}
	return url.Values{"ids": []string{strings.Join(strs, ",")}}
}
