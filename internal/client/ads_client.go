package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/bobmcallan/reddable-mcp/internal/common"
)

// maxResponseSize caps the upstream response body to prevent OOM from unexpectedly large responses.
const maxResponseSize = 50 << 20 // 50MB

const basePath = "/api/reddit/ads/"

// AdsClient is a stateless façade over the Reddable ads REST API.
// Every call is a single request carrying the bearer credential; the decoded
// response body is returned as-is.
type AdsClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
}

// NewAdsClient creates a client targeting baseURL and authenticating with apiKey.
func NewAdsClient(baseURL, apiKey string, timeout time.Duration, logger *common.Logger) *AdsClient {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &AdsClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// BaseURL returns the configured upstream URL.
func (c *AdsClient) BaseURL() string {
	return c.baseURL
}

// GetAdAccounts lists ad accounts, optionally scoped to a business.
func (c *AdsClient) GetAdAccounts(ctx context.Context, businessID string) (any, error) {
	params := url.Values{}
	if businessID != "" {
		params.Set("businessId", businessID)
	}
	return c.get(ctx, "get-ad-accounts", params)
}

// GetFundingInstruments lists payment methods for an ad account.
func (c *AdsClient) GetFundingInstruments(ctx context.Context, adAccountID string) (any, error) {
	return c.get(ctx, "get-funding-instruments", url.Values{"adAccountId": {adAccountID}})
}

// GetCampaigns lists campaigns for an ad account.
func (c *AdsClient) GetCampaigns(ctx context.Context, adAccountID string) (any, error) {
	return c.get(ctx, "get-campaigns", url.Values{"adAccountId": {adAccountID}})
}

// GetAdGroups lists ad groups for an ad account.
func (c *AdsClient) GetAdGroups(ctx context.Context, adAccountID string) (any, error) {
	return c.get(ctx, "get-ad-groups", url.Values{"adAccountId": {adAccountID}})
}

// GetProfiles lists Reddit profiles usable by an ad account.
func (c *AdsClient) GetProfiles(ctx context.Context, adAccountID string) (any, error) {
	return c.get(ctx, "get-profiles", url.Values{"adAccountId": {adAccountID}})
}

// GetPosts lists posts for a profile.
func (c *AdsClient) GetPosts(ctx context.Context, profileID string) (any, error) {
	return c.get(ctx, "get-posts", url.Values{"profileId": {profileID}})
}

// GetPost fetches one post. A nil result with no error means the upstream
// answered with an empty body.
func (c *AdsClient) GetPost(ctx context.Context, postID string) (any, error) {
	return c.get(ctx, "get-post", url.Values{"postId": {postID}})
}

// GetAds lists ads for an ad account.
func (c *AdsClient) GetAds(ctx context.Context, adAccountID string) (any, error) {
	return c.get(ctx, "get-ads", url.Values{"adAccountId": {adAccountID}})
}

// CreateCampaign creates a campaign.
func (c *AdsClient) CreateCampaign(ctx context.Context, req CreateCampaignRequest) (any, error) {
	return c.post(ctx, "create-campaign", req)
}

// CreateAdGroup creates an ad group.
func (c *AdsClient) CreateAdGroup(ctx context.Context, req CreateAdGroupRequest) (any, error) {
	return c.post(ctx, "create-ad-group", req)
}

// CreatePost creates a post on a profile.
func (c *AdsClient) CreatePost(ctx context.Context, req CreatePostRequest) (any, error) {
	return c.post(ctx, "create-post", req)
}

// CreateAd creates an ad.
func (c *AdsClient) CreateAd(ctx context.Context, req CreateAdRequest) (any, error) {
	return c.post(ctx, "create-ad", req)
}

// GenerateImage asks the upstream image backend for an image.
func (c *AdsClient) GenerateImage(ctx context.Context, req GenerateImageRequest) (any, error) {
	return c.post(ctx, "generate-image", req)
}

// get performs a GET request with query parameters.
func (c *AdsClient) get(ctx context.Context, op string, params url.Values) (any, error) {
	path := basePath + op
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil)
}

// post performs a POST request with a JSON body.
func (c *AdsClient) post(ctx context.Context, op string, data any) (any, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request")
	}
	return c.do(ctx, http.MethodPost, basePath+op, jsonData)
}

func (c *AdsClient) do(ctx context.Context, method, path string, payload []byte) (any, error) {
	correlationID := common.CorrelationID(ctx)
	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("correlation_id", correlationID).
		Msg("upstream request")

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if correlationID != "" {
		req.Header.Set("X-Correlation-ID", correlationID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().
			Str("method", method).
			Str("path", path).
			Int64("duration_ms", duration.Milliseconds()).
			Str("error", err.Error()).
			Msg("upstream request failed")
		return nil, errors.Wrap(err, "upstream request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Int64("duration_ms", duration.Milliseconds()).
		Int("bytes", len(body)).
		Msg("upstream response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseErrorResponse(resp.StatusCode, body)
	}

	return decodeBody(body)
}

// decodeBody decodes a JSON response, keeping numbers exact. An empty body
// decodes to nil.
func decodeBody(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, "failed to parse response")
	}
	return v, nil
}
