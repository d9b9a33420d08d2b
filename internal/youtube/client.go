package youtube

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tubemark/tubemark-core/internal/logger"
)

const BaseURL = "https://www.googleapis.com/youtube/v3"

const (
	DefaultMaxResults = 10
	DefaultRegion     = "US"
)

type Config struct {
	APIKey string
	// BaseURL overrides the Data API endpoint; empty means production.
	BaseURL string
}

// Client is a stateless proxy to the YouTube Data API. It holds the
// API key server-side and normalizes every upstream failure into a
// plain error; callers never see upstream detail.
type Client struct {
	apiKey string
	http   *resty.Client
}

func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = BaseURL
	}
	return &Client{
		apiKey: cfg.APIKey,
		http: resty.New().
			SetBaseURL(base).
			SetTimeout(10 * time.Second),
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out interface{}) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("key", c.apiKey).
		SetResult(out).
		Get(endpoint)
	if err != nil {
		logger.Log.Errorw("youtube api request failed", "endpoint", endpoint, "err", err)
		return fmt.Errorf("youtube api: %w", err)
	}
	if resp.IsError() {
		// Body may carry quota or key detail; log it, never return it.
		logger.Log.Errorw("youtube api error",
			"endpoint", endpoint,
			"status", resp.StatusCode(),
			"body", string(resp.Body()),
		)
		return fmt.Errorf("youtube api: status %d", resp.StatusCode())
	}
	return nil
}

func (c *Client) Search(ctx context.Context, query string, maxResults int) (*SearchResponse, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	var result SearchResponse
	err := c.get(ctx, "/search", map[string]string{
		"part":       "snippet",
		"q":          query,
		"type":       "video",
		"maxResults": strconv.Itoa(maxResults),
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) VideoDetails(ctx context.Context, videoID string) (*VideoListResponse, error) {
	var result VideoListResponse
	err := c.get(ctx, "/videos", map[string]string{
		"part": "snippet,statistics",
		"id":   videoID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ChannelDetails(ctx context.Context, channelID string) (*ChannelListResponse, error) {
	var result ChannelListResponse
	err := c.get(ctx, "/channels", map[string]string{
		"part": "snippet,statistics",
		"id":   channelID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Trending(ctx context.Context, regionCode string, maxResults int) (*VideoListResponse, error) {
	if regionCode == "" {
		regionCode = DefaultRegion
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	var result VideoListResponse
	err := c.get(ctx, "/videos", map[string]string{
		"part":       "snippet,statistics",
		"chart":      "mostPopular",
		"regionCode": regionCode,
		"maxResults": strconv.Itoa(maxResults),
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ChannelVideos(ctx context.Context, channelID string, maxResults int) (*SearchResponse, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	var result SearchResponse
	err := c.get(ctx, "/search", map[string]string{
		"part":       "snippet",
		"channelId":  channelID,
		"order":      "date",
		"maxResults": strconv.Itoa(maxResults),
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
