package bundestag

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the DIP API endpoint.
const DefaultBaseURL = "https://search.dip.bundestag.de/api/v1"

// DefaultUserAgent is the default User-Agent header sent with DIP requests.
const DefaultUserAgent = "plenum-dip-connector/1.0"

// DefaultRequestInterval is the default minimum interval between requests.
const DefaultRequestInterval = 1 * time.Second

// ClientConfig holds configuration for a Client.
type ClientConfig struct {
	// BaseURL is the DIP API base URL. Default: DefaultBaseURL.
	BaseURL string

	// APIKey authenticates requests with the DIP API.
	APIKey string

	// RateLimit is the minimum interval between HTTP requests.
	// Default: 1 second.
	RateLimit time.Duration

	// CacheTTL is the time-to-live for cached protocols.
	// Default: 24 hours.
	CacheTTL time.Duration

	// HTTPClient is the underlying HTTP client used for requests.
	// If nil, http.DefaultClient is used (wrapped with rate limiting).
	HTTPClient HTTPClient

	// UserAgent is the User-Agent header sent with requests.
	// Default: "plenum-dip-connector/1.0".
	UserAgent string
}

// DefaultConfig returns a ClientConfig with sensible defaults.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		BaseURL:    DefaultBaseURL,
		RateLimit:  DefaultRequestInterval,
		CacheTTL:   DefaultCacheTTL,
		HTTPClient: nil, // Will use http.DefaultClient.
		UserAgent:  DefaultUserAgent,
	}
}

// Client provides DIP connectivity: protocol listing and full-text fetching
// with rate limiting and caching.
type Client struct {
	httpClient HTTPClient
	cache      *ProtocolCache
	baseURL    string
	apiKey     string
	userAgent  string
}

// NewClient creates a new Client with the given configuration. If
// config.HTTPClient is nil, http.DefaultClient is used and wrapped with
// rate limiting.
func NewClient(config ClientConfig) *Client {
	underlyingClient := config.HTTPClient
	if underlyingClient == nil {
		underlyingClient = http.DefaultClient
	}

	rateLimitedClient := NewRateLimitedHTTPClient(underlyingClient, config.RateLimit)

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		httpClient: rateLimitedClient,
		cache:      NewProtocolCache(config.CacheTTL),
		baseURL:    baseURL,
		apiKey:     config.APIKey,
		userAgent:  userAgent,
	}
}

// FetchProtocolText retrieves a protocol with its full text by DIP document
// ID. Results are cached for the configured TTL.
func (c *Client) FetchProtocolText(id string) (*Protocol, error) {
	if cachedProtocol, found := c.cache.Get(id); found {
		return &cachedProtocol, nil
	}

	endpoint := fmt.Sprintf("%s/plenarprotokoll-text/%s", c.baseURL, url.PathEscape(id))
	body, err := c.get(endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch protocol %s: %w", id, err)
	}

	var protocol Protocol
	if err := json.Unmarshal(body, &protocol); err != nil {
		return nil, fmt.Errorf("failed to decode protocol %s: %w", id, err)
	}

	if protocol.FullText == "" {
		return nil, fmt.Errorf("protocol %s has no full text", id)
	}

	c.cache.Set(id, protocol)
	return &protocol, nil
}

// ListProtocols retrieves protocol metadata for an election period. The
// full text is not included; fetch it per protocol with FetchProtocolText.
func (c *Client) ListProtocols(electionPeriod int) ([]Protocol, error) {
	endpoint := c.baseURL + "/plenarprotokoll"
	query := url.Values{}
	query.Set("f.wahlperiode", strconv.Itoa(electionPeriod))
	query.Set("f.zuordnung", "BT")

	body, err := c.get(endpoint, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list protocols for period %d: %w", electionPeriod, err)
	}

	var list protocolList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to decode protocol list: %w", err)
	}

	return list.Documents, nil
}

// get performs an authenticated GET request and returns the response body.
func (c *Client) get(endpoint string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("format", "json")
	if c.apiKey != "" {
		query.Set("apikey", c.apiKey)
	}

	request, err := http.NewRequest(http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("User-Agent", c.userAgent)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("DIP API rejected the request (HTTP %d): check the API key", response.StatusCode)
	}
	if response.StatusCode >= 400 {
		return nil, fmt.Errorf("DIP API returned HTTP %d", response.StatusCode)
	}

	return io.ReadAll(response.Body)
}
