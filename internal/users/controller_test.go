package users_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tubemark/tubemark-core/internal/testutil"
	"github.com/tubemark/tubemark-core/internal/users"
)

func newProfileRouter(t *testing.T, userID uint) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.OpenDB(t, &users.User{})
	h := users.NewHandler(db)

	r := gin.New()
	r.PUT("/users/profile", func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}, h.UpdateProfileHandler)
	return r, db
}

func putProfile(r *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPut, "/users/profile", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateProfile(t *testing.T) {
	r, db := newProfileRouter(t, 1)
	require.NoError(t, db.Create(&users.User{Username: "al", Email: "al@example.com", PasswordHash: "x"}).Error)

	w := putProfile(r, gin.H{"username": "alice", "email": "alice@example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	var u users.User
	require.NoError(t, db.First(&u, 1).Error)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice@example.com", u.Email)
}

func TestUpdateProfileMissingFields(t *testing.T) {
	r, db := newProfileRouter(t, 1)
	require.NoError(t, db.Create(&users.User{Username: "al", Email: "al@example.com", PasswordHash: "x"}).Error)

	assert.Equal(t, http.StatusBadRequest, putProfile(r, gin.H{"username": "alice"}).Code)
	assert.Equal(t, http.StatusBadRequest, putProfile(r, gin.H{"email": "alice@example.com"}).Code)
	assert.Equal(t, http.StatusBadRequest, putProfile(r, gin.H{"username": "alice", "email": ""}).Code)
}

func TestUpdateProfileConflict(t *testing.T) {
	r, db := newProfileRouter(t, 1)
	require.NoError(t, db.Create(&users.User{Username: "al", Email: "al@example.com", PasswordHash: "x"}).Error)
	require.NoError(t, db.Create(&users.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"}).Error)

	w := putProfile(r, gin.H{"username": "bob", "email": "al@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
}
