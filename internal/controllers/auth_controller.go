package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yashrajoria/shop-service/internal/middleware"
	"github.com/yashrajoria/shop-service/internal/models"
	"github.com/yashrajoria/shop-service/internal/services"
)

type AuthController struct {
	authService  services.AuthService
	sessionTTL   time.Duration
	secureCookie bool
}

// NewAuthController issues session cookies that live for sessionTTL. Set
// secureCookie in production so the cookie only travels over HTTPS.
func NewAuthController(authService services.AuthService, sessionTTL time.Duration, secureCookie bool) *AuthController {
	return &AuthController{authService: authService, sessionTTL: sessionTTL, secureCookie: secureCookie}
}

// Register handles POST /register.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := ac.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /login.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := ac.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, result.Token, int(ac.sessionTTL.Seconds()), "/", "", ac.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{
		"msg":   "Logged in successfully",
		"token": result.Token,
		"user":  result.User,
	})
}

// Logout handles POST /logout. Requires a session.
func (ac *AuthController) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextSessionToken)
	if err := ac.authService.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", ac.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"msg": "Logged out"})
}

// Me handles GET /me.
func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.AbortUnauthenticated(c)
		return
	}

	user, err := ac.authService.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
