package youtube

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func maxResultsParam(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("maxResults", strconv.Itoa(DefaultMaxResults)))
	if err != nil || n < 1 || n > 50 {
		return DefaultMaxResults
	}
	return n
}

// SearchHandler validates the query before any outbound call is made.
func (h *Handler) SearchHandler(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	result, err := h.client.Search(c.Request.Context(), q, maxResultsParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search YouTube"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": result.Items})
}

func (h *Handler) VideoHandler(c *gin.Context) {
	result, err := h.client.VideoDetails(c.Request.Context(), c.Param("videoId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch video details"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) ChannelHandler(c *gin.Context) {
	result, err := h.client.ChannelDetails(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch channel details"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) TrendingHandler(c *gin.Context) {
	result, err := h.client.Trending(c.Request.Context(), c.Query("regionCode"), maxResultsParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trending videos"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) ChannelVideosHandler(c *gin.Context) {
	result, err := h.client.ChannelVideos(c.Request.Context(), c.Param("channelId"), maxResultsParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch channel videos"})
		return
	}

	c.JSON(http.StatusOK, result)
}
