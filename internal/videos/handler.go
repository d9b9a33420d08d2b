package videos

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tubemark/tubemark-core/internal/logger"
)

type SaveVideoDTO struct {
	VideoID      string     `json:"videoId" binding:"required"`
	Title        string     `json:"title" binding:"required"`
	ChannelTitle string     `json:"channelTitle"`
	Thumbnail    string     `json:"thumbnail"`
	Description  string     `json:"description"`
	PublishedAt  *time.Time `json:"publishedAt"`
}

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) ListHandler(c *gin.Context) {
	userID := c.GetUint("user_id")

	list, err := h.store.List(userID)
	if err != nil {
		logger.Log.Errorw("list saved videos failed", "user_id", userID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) SaveHandler(c *gin.Context) {
	var body SaveVideoDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "videoId and title are required"})
		return
	}

	userID := c.GetUint("user_id")

	v := SavedVideo{
		UserID:       userID,
		VideoID:      body.VideoID,
		Title:        body.Title,
		ChannelTitle: body.ChannelTitle,
		ThumbnailURL: body.Thumbnail,
		Description:  body.Description,
		PublishedAt:  body.PublishedAt,
	}

	if err := h.store.Create(&v); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "video already saved"})
			return
		}
		logger.Log.Errorw("save video failed", "user_id", userID, "video_id", body.VideoID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Video saved successfully"})
}

func (h *Handler) DeleteHandler(c *gin.Context) {
	userID := c.GetUint("user_id")
	videoID := c.Param("videoId")

	if err := h.store.Delete(userID, videoID); err != nil {
		logger.Log.Errorw("delete saved video failed", "user_id", userID, "video_id", videoID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video deleted successfully"})
}
