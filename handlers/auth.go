package handlers

import (
	"net/http"

	"pawcare/config"
	"pawcare/models"
	"pawcare/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func issueTokenPair(userID string) (models.TokenPair, error) {
	access, err := utils.GenerateToken(userID, "access", config.AppConfig.AccessTokenTTL)
	if err != nil {
		return models.TokenPair{}, err
	}
	refresh, err := utils.GenerateToken(userID, "refresh", config.AppConfig.RefreshTokenTTL)
	if err != nil {
		return models.TokenPair{}, err
	}
	store.registerRefreshToken(refresh, userID)
	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// LoginHandler exchanges credentials for a token pair.
func LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	user, ok := store.userByEmail(input.Email)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	pair, err := issueTokenPair(user.ID)
	if err != nil {
		utils.GetLogger().Error("Failed to issue tokens", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed, please try again"})
		return
	}
	c.JSON(http.StatusOK, pair)
}

// RefreshHandler rotates a token pair. The presented refresh token must be a
// valid, unexpired refresh JWT that has not been used before.
func RefreshHandler(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, err := utils.ValidateToken(input.RefreshToken)
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	if kind, _ := claims["kind"].(string); kind != "refresh" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	userID, ok := store.consumeRefreshToken(input.RefreshToken)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token revoked or already used"})
		return
	}

	pair, err := issueTokenPair(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to rotate tokens", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "refresh failed, please try again"})
		return
	}
	c.JSON(http.StatusOK, pair)
}

// LogoutHandler revokes all refresh tokens of the authenticated user.
func LogoutHandler(c *gin.Context) {
	userID := c.GetString("userID")
	store.revokeUserTokens(userID)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
