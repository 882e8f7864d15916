package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krasbyt/appliance-service-api/config"
	"github.com/krasbyt/appliance-service-api/middleware"
	"github.com/krasbyt/appliance-service-api/models"
	"github.com/krasbyt/appliance-service-api/services"
)

// LoginRequest is the sign-in form.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginPage handles GET /login - returns the login view model
func LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"flash":   takeFlash(c),
	})
}

// Login handles POST /login - verifies credentials and establishes a
// session cookie bound to the user
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		setFlash(c, "Invalid username or password")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	db := config.GetDB()
	var user models.User
	if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			setFlash(c, "Sign-in is temporarily unavailable")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		setFlash(c, "Invalid username or password")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if !services.CheckPassword(user.PasswordHash, req.Password) {
		setFlash(c, "Invalid username or password")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	token, err := services.GenerateSessionToken(&user)
	if err != nil {
		setFlash(c, "Sign-in is temporarily unavailable")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, int(services.SessionDuration.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout handles GET /logout - invalidates the session cookie
func Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
