package youtube

// Response shapes of the YouTube Data API v3, limited to the fields
// the application consumes. Proxy endpoints serialize these back out,
// so the JSON tags mirror the upstream names exactly.

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type Thumbnails struct {
	Default Thumbnail `json:"default,omitempty"`
	Medium  Thumbnail `json:"medium,omitempty"`
	High    Thumbnail `json:"high,omitempty"`
}

type Snippet struct {
	PublishedAt  string     `json:"publishedAt"`
	ChannelID    string     `json:"channelId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Thumbnails   Thumbnails `json:"thumbnails"`
	ChannelTitle string     `json:"channelTitle"`
}

type PageInfo struct {
	TotalResults   int `json:"totalResults"`
	ResultsPerPage int `json:"resultsPerPage"`
}

type SearchItemID struct {
	Kind    string `json:"kind"`
	VideoID string `json:"videoId"`
}

type SearchItem struct {
	Kind    string       `json:"kind"`
	Etag    string       `json:"etag,omitempty"`
	ID      SearchItemID `json:"id"`
	Snippet Snippet      `json:"snippet"`
}

type SearchResponse struct {
	Kind     string       `json:"kind"`
	PageInfo PageInfo     `json:"pageInfo"`
	Items    []SearchItem `json:"items"`
}

type VideoStatistics struct {
	ViewCount    string `json:"viewCount,omitempty"`
	LikeCount    string `json:"likeCount,omitempty"`
	CommentCount string `json:"commentCount,omitempty"`
}

type VideoItem struct {
	Kind       string          `json:"kind"`
	ID         string          `json:"id"`
	Snippet    Snippet         `json:"snippet"`
	Statistics VideoStatistics `json:"statistics"`
}

type VideoListResponse struct {
	Kind     string      `json:"kind"`
	PageInfo PageInfo    `json:"pageInfo"`
	Items    []VideoItem `json:"items"`
}

type ChannelStatistics struct {
	ViewCount       string `json:"viewCount,omitempty"`
	SubscriberCount string `json:"subscriberCount,omitempty"`
	VideoCount      string `json:"videoCount,omitempty"`
}

type ChannelItem struct {
	Kind       string            `json:"kind"`
	ID         string            `json:"id"`
	Snippet    Snippet           `json:"snippet"`
	Statistics ChannelStatistics `json:"statistics"`
}

type ChannelListResponse struct {
	Kind     string        `json:"kind"`
	PageInfo PageInfo      `json:"pageInfo"`
	Items    []ChannelItem `json:"items"`
}
