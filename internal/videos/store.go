package videos

import "gorm.io/gorm"

// Store is the saved-video library for all users, backed by an
// injected gorm handle. Every operation is a single statement scoped
// by the owning user id.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// List returns the user's bookmarks, newest first. The result is
// always a non-nil slice.
func (s *Store) List(userID uint) ([]SavedVideo, error) {
	list := make([]SavedVideo, 0)
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Create inserts a bookmark. Saving a video the user already saved
// returns gorm.ErrDuplicatedKey.
func (s *Store) Create(v *SavedVideo) error {
	return s.db.Create(v).Error
}

// Delete removes the user's bookmark of videoID. Idempotent: deleting
// a bookmark that does not exist is not an error, and the user_id
// scope means one user can never touch another user's rows.
func (s *Store) Delete(userID uint, videoID string) error {
	return s.db.Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&SavedVideo{}).Error
}
