package handlers

import (
	"errors"
	"net/http"

	"litoral-prime/internal/auth"
	"litoral-prime/internal/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler owns the session lifecycle routes.
type AuthHandler struct {
	db     *database.GormDB
	tokens *auth.TokenManager
	maxAge int
}

// NewAuthHandler creates a new auth handler. maxAge is the cookie lifetime
// in seconds, matched to the token validity window.
func NewAuthHandler(db *database.GormDB, tokens *auth.TokenManager, maxAge int) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, maxAge: maxAge}
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// LoginSubmit verifies credentials and sets the session cookie. Unknown
// user and wrong password are indistinguishable to the caller.
func (h *AuthHandler) LoginSubmit(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.db.GetAdminByUsername(username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			serverError(c, "LoginSubmit: lookup", err)
			return
		}
		h.rejectLogin(c)
		return
	}
	if !auth.CheckPasswordHash(password, user.HashedPassword) {
		h.rejectLogin(c)
		return
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		serverError(c, "LoginSubmit: issue token", err)
		return
	}

	c.SetCookie(auth.CookieName, token, h.maxAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin")
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) rejectLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"error": "Usuário ou senha inválidos.",
	})
}
