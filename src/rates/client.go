package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/models"
)

// Client fetches official NBU exchange rates for a currency on a
// given date. Responses are cached: historical rates never change.
type Client struct {
	baseURL    string
	httpClient *http.Client
	rateCache  *cache.Cache
}

func NewClient(baseURL string, timeout time.Duration, rateCache *cache.Cache) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		rateCache:  rateCache,
	}
}

// FetchRate returns the rate for currencyCode on date, or nil when
// the NBU published no rate for that day. Absence is a valid,
// expected outcome, not an error; errors mean the request itself
// failed.
func (c *Client) FetchRate(ctx context.Context, currencyCode string, date time.Time) (*models.NBURate, error) {
	cacheKey := fmt.Sprintf("rate_%s_%s", currencyCode, date.Format("20060102"))
	if cached, found := c.rateCache.Get(cacheKey); found {
		logger.L.Debug("Rate cache hit", "currency", currencyCode, "date", date.Format("2006-01-02"))
		return cached.(*models.NBURate), nil
	}

	url := fmt.Sprintf("%s?valcode=%s&date=%s&json", c.baseURL, currencyCode, date.Format("20060102"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error building NBU rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching NBU rate for %s: %w", currencyCode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("NBU rate request for %s returned status %d", currencyCode, resp.StatusCode)
	}

	var result []models.NBURate
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error decoding NBU rate response for %s: %w", currencyCode, err)
	}

	if len(result) == 0 {
		logger.L.Warn("NBU published no rate", "currency", currencyCode, "date", date.Format("2006-01-02"))
		return nil, nil
	}

	rate := &result[0]
	c.rateCache.Set(cacheKey, rate, cache.NoExpiration)
	return rate, nil
}

// FetchRateValue is a convenience wrapper degrading every failure to
// "no rate available": the caller must still be able to record the
// payment when the NBU is unreachable.
func (c *Client) FetchRateValue(ctx context.Context, currencyCode string, date time.Time) float64 {
	if currencyCode == models.CurrencyUAH {
		return 1.0
	}
	rate, err := c.FetchRate(ctx, currencyCode, date)
	if err != nil {
		logger.L.Warn("Rate fetch failed, proceeding without rate", "currency", currencyCode, "error", err)
		return 0
	}
	if rate == nil {
		return 0
	}
	return rate.Rate
}
