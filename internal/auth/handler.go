package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tubemark/tubemark-core/internal/logger"
	"github.com/tubemark/tubemark-core/internal/users"
)

type registerDTO struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Handler struct {
	db     *gorm.DB
	tokens *TokenManager
}

func NewHandler(db *gorm.DB, tokens *TokenManager) *Handler {
	return &Handler{db: db, tokens: tokens}
}

func (h *Handler) RegisterHandler(c *gin.Context) {
	var body registerDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashed, err := users.HashPassword(body.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := users.User{
		Username:     body.Username,
		Email:        body.Email,
		PasswordHash: hashed,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "username or email already taken"})
			return
		}
		logger.Log.Errorw("create user failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, users.ToResponse(&user))
}

func (h *Handler) LoginHandler(c *gin.Context) {
	var body loginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var u users.User
	if err := h.db.First(&u, "username = ?", body.Username).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	tok, err := h.tokens.Generate(&u)
	if err != nil {
		logger.Log.Errorw("generate token failed", "user_id", u.ID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tok,
		"user":  users.ToResponse(&u),
	})
}

func (h *Handler) ProfileHandler(c *gin.Context) {
	userID := c.GetUint("user_id")

	var u users.User
	if err := h.db.First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		logger.Log.Errorw("fetch profile failed", "user_id", userID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": users.ToResponse(&u)})
}
