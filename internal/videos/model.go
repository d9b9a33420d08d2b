package videos

import (
	"time"

	"github.com/tubemark/tubemark-core/internal/users"
)

// SavedVideo is a user's bookmark of an externally hosted video, with
// enough denormalized metadata to render a card without another
// upstream call. A user can save a given video at most once.
type SavedVideo struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;uniqueIndex:idx_user_video" json:"user_id"`
	User         users.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	VideoID      string     `gorm:"size:64;not null;uniqueIndex:idx_user_video" json:"video_id"`
	Title        string     `gorm:"not null" json:"title"`
	ChannelTitle string     `json:"channel_title"`
	ThumbnailURL string     `json:"thumbnail_url"`
	Description  string     `json:"description,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	CreatedAt    time.Time  `json:"saved_at"`
}
